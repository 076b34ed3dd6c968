package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	sentryerrors "github.com/richxcame/mapsclient/pkg/errors"
	"github.com/richxcame/mapsclient/pkg/httpclient"
	"github.com/richxcame/mapsclient/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// request is the part of a family request the commands drive.
type request[R any] interface {
	Validate() error
	Query() (string, error)
	Get(ctx context.Context) (*R, error)
}

// run validates req, then prints its query in dry-run mode or sends it and
// prints the response.
func run[R any](cmd *cobra.Command, a *app, family string, req request[R]) error {
	if err := req.Validate(); err != nil {
		return err
	}
	query, err := req.Query()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.dryRun {
		_, err := fmt.Fprintln(out, query)
		return err
	}

	ctx := httpclient.EnsureCorrelationID(cmd.Context())
	logger.DebugContext(ctx, "sending request", zap.String("family", family), zap.String("query", query))

	start := time.Now()
	resp, err := req.Get(ctx)
	elapsed := time.Since(start)
	sentryerrors.AddBreadcrumbForRequest(family, query, elapsed, err)
	if err != nil {
		if sentryerrors.ShouldReportError(err) {
			if eventID := sentryerrors.CaptureRequestError(ctx, err, family, query); eventID != nil {
				logger.WarnContext(ctx, "request failure reported", zap.String("family", family), zap.String("event_id", string(*eventID)))
			}
		}
		return err
	}
	logger.DebugContext(ctx, "request completed", zap.String("family", family), zap.Duration("duration", elapsed))

	return writeJSON(out, resp)
}

func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
