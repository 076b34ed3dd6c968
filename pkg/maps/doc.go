// Package maps holds the pieces shared by every Google Maps Platform request
// family: the closed value types and their wire codes, the generic request
// core that accumulates, validates and serializes parameters, and the HTTP
// transport that dispatches finished queries.
//
// Request families live in sub-packages (directions, distancematrix, places,
// roads). A request is configured with chained With* calls, checked with
// Validate and only then turned into a query string or dispatched:
//
//	req := directions.New(client, maps.Address("New York"), maps.Address("Boston")).
//		WithTravelMode(maps.TravelModeTransit).
//		WithArrivalTime(arrival)
//	resp, err := req.Execute(ctx)
//
// Requests are plain values owned by one caller; they are not safe for
// concurrent use, but separate requests never share state.
package maps
