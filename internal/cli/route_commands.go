package cli

import (
	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/richxcame/mapsclient/pkg/maps/directions"
	"github.com/richxcame/mapsclient/pkg/maps/distancematrix"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func bindRouteFlags(flags *pflag.FlagSet, f *routeFlags) {
	flags.StringVar(&f.mode, "mode", "", "travel mode (driving, walking, bicycling, transit)")
	flags.StringVar(&f.arrival, "arrival", "", "arrival time, RFC 3339 or Unix seconds (transit only)")
	flags.StringVar(&f.departure, "departure", "", `departure time, "now", RFC 3339 or Unix seconds`)
	flags.StringSliceVar(&f.avoid, "avoid", nil, "features to avoid (tolls, highways, ferries, indoor)")
	flags.StringSliceVar(&f.transitModes, "transit-mode", nil, "preferred transit vehicles (bus, subway, train, tram, rail)")
	flags.StringVar(&f.transitPreference, "transit-preference", "", "transit route preference (less_walking, fewer_transfers)")
	flags.StringVar(&f.trafficModel, "traffic-model", "", "traffic model (best_guess, pessimistic, optimistic)")
	flags.StringVar(&f.units, "units", "", "unit system (metric, imperial)")
	flags.StringVar(&f.language, "language", "", "response language code")
	flags.StringVar(&f.region, "region", "", "region bias as a ccTLD code")
}

func newDirectionsCommand(a *app) *cobra.Command {
	var (
		route        routeFlags
		origin       string
		destination  string
		waypoints    []string
		optimize     bool
		alternatives bool
	)

	cmd := &cobra.Command{
		Use:   "directions",
		Short: "Route between two locations",
		Long: `Route between two locations. Locations are an address, "lat,lng" or
"place_id:ID"; waypoints may also be "enc:POLYLINE:" and take a "via:" prefix.`,
		Example: `  mapsctl directions --origin "New York" --destination Boston --mode transit --arrival 2024-01-01T09:00:00Z --dry-run`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := a.transport()
			if err != nil {
				return err
			}

			req := directions.New(transport, maps.ParseLocation(origin), maps.ParseLocation(destination))
			if err := applyRouteFlags[*directions.Request](route, req); err != nil {
				return err
			}
			if len(waypoints) > 0 {
				req.WithWaypoints(parseWaypoints(waypoints)...)
			}
			if cmd.Flags().Changed("optimize") {
				req.WithOptimizedWaypoints(optimize)
			}
			if cmd.Flags().Changed("alternatives") {
				req.WithAlternatives(alternatives)
			}

			return run[directions.Response](cmd, a, directions.Endpoint.Family, req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&origin, "origin", "", "start location")
	flags.StringVar(&destination, "destination", "", "end location")
	flags.StringArrayVar(&waypoints, "waypoint", nil, "intermediate waypoint, repeatable")
	flags.BoolVar(&optimize, "optimize", false, "let the service reorder waypoints")
	flags.BoolVar(&alternatives, "alternatives", false, "ask for alternative routes")
	bindRouteFlags(flags, &route)
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}

func newMatrixCommand(a *app) *cobra.Command {
	var (
		route        routeFlags
		origins      []string
		destinations []string
	)

	cmd := &cobra.Command{
		Use:     "matrix",
		Short:   "Travel distance and time for every origin and destination pair",
		Example: `  mapsctl matrix --origin "Vancouver BC" --origin Seattle --destination "San Francisco" --mode bicycling`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := a.transport()
			if err != nil {
				return err
			}

			req := distancematrix.New(transport, parseWaypoints(origins), parseWaypoints(destinations))
			if err := applyRouteFlags[*distancematrix.Request](route, req); err != nil {
				return err
			}

			return run[distancematrix.Response](cmd, a, distancematrix.Endpoint.Family, req)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&origins, "origin", nil, "origin, repeatable")
	flags.StringArrayVar(&destinations, "destination", nil, "destination, repeatable")
	bindRouteFlags(flags, &route)

	return cmd
}
