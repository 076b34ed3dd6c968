package cli

import (
	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/richxcame/mapsclient/pkg/maps/places"
	"github.com/richxcame/mapsclient/pkg/maps/roads"
	"github.com/spf13/cobra"
)

func newPlaceCommand(a *app) *cobra.Command {
	var (
		fields         []string
		language       string
		region         string
		reviewsSort    string
		noTranslations bool
		sessionToken   string
		newSession     bool
	)

	cmd := &cobra.Command{
		Use:     "place PLACE_ID",
		Short:   "Details of a place",
		Example: `  mapsctl place ChIJ3S-JXmauEmsRUcIaWtf4MzE --field name --field rating --field reviews --reviews-sort newest`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := a.transport()
			if err != nil {
				return err
			}

			req := places.New(transport, args[0])
			if len(fields) > 0 {
				parsed, err := parseEach(fields, places.ParseField)
				if err != nil {
					return err
				}
				req.WithFields(parsed...)
			}
			if err := applyLocale[*places.Request](language, region, req); err != nil {
				return err
			}
			if reviewsSort != "" {
				order, err := places.ParseSortOrder(reviewsSort)
				if err != nil {
					return err
				}
				req.WithReviewsSort(order)
			}
			if cmd.Flags().Changed("reviews-no-translations") {
				req.WithReviewsNoTranslations(noTranslations)
			}
			switch {
			case sessionToken != "":
				req.WithSessionToken(sessionToken)
			case newSession:
				req.WithSessionToken(places.NewSessionToken())
			}

			return run[places.Response](cmd, a, places.Endpoint.Family, req)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&fields, "field", nil, "field to return, repeatable (default all)")
	flags.StringVar(&language, "language", "", "response language code")
	flags.StringVar(&region, "region", "", "region bias as a ccTLD code")
	flags.StringVar(&reviewsSort, "reviews-sort", "", "review order (most_relevant, newest)")
	flags.BoolVar(&noTranslations, "reviews-no-translations", false, "return reviews in their original language")
	flags.StringVar(&sessionToken, "session-token", "", "autocomplete session token")
	flags.BoolVar(&newSession, "new-session", false, "attach a freshly generated session token")
	cmd.MarkFlagsMutuallyExclusive("session-token", "new-session")

	return cmd
}

func newSnapCommand(a *app) *cobra.Command {
	var (
		points      []string
		interpolate bool
	)

	cmd := &cobra.Command{
		Use:     "snap",
		Short:   "Snap a GPS trace to the most likely roads",
		Example: `  mapsctl snap --point 60.170880,24.942795 --point 60.170879,24.942796 --interpolate`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parseEach(points, maps.ParseLatLng)
			if err != nil {
				return err
			}

			transport, err := a.transport()
			if err != nil {
				return err
			}

			req := roads.New(transport, path)
			if cmd.Flags().Changed("interpolate") {
				req.WithInterpolation(interpolate)
			}

			return run[roads.Response](cmd, a, roads.Endpoint.Family, req)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&points, "point", nil, `path point as "lat,lng", repeatable`)
	flags.BoolVar(&interpolate, "interpolate", false, "add points that follow the road geometry")

	return cmd
}
