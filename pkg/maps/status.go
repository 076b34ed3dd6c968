package maps

// Status is the top-level status of a Maps web service response.
type Status string

const (
	StatusOK                     Status = "OK"
	StatusZeroResults            Status = "ZERO_RESULTS"
	StatusNotFound               Status = "NOT_FOUND"
	StatusInvalidRequest         Status = "INVALID_REQUEST"
	StatusMaxWaypointsExceeded   Status = "MAX_WAYPOINTS_EXCEEDED"
	StatusMaxRouteLengthExceeded Status = "MAX_ROUTE_LENGTH_EXCEEDED"
	StatusMaxElementsExceeded    Status = "MAX_ELEMENTS_EXCEEDED"
	StatusMaxDimensionsExceeded  Status = "MAX_DIMENSIONS_EXCEEDED"
	StatusOverDailyLimit         Status = "OVER_DAILY_LIMIT"
	StatusOverQueryLimit         Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied          Status = "REQUEST_DENIED"
	StatusUnknownError           Status = "UNKNOWN_ERROR"
)

var statuses = NewCodeTable("Status",
	StatusOK, StatusZeroResults, StatusNotFound, StatusInvalidRequest,
	StatusMaxWaypointsExceeded, StatusMaxRouteLengthExceeded, StatusMaxElementsExceeded,
	StatusMaxDimensionsExceeded, StatusOverDailyLimit, StatusOverQueryLimit,
	StatusRequestDenied, StatusUnknownError)

// ParseStatus accepts only the documented statuses. Replies are decoded
// without this check so that a status added upstream still reaches the caller
// through Err.
func ParseStatus(code string) (Status, error) { return statuses.Parse(code) }

// Statuses lists the documented statuses.
func Statuses() []Status { return statuses.All() }

func (s Status) String() string { return string(s) }

// Err converts a response status into an *APIError. OK and ZERO_RESULTS are
// not failures.
func (s Status) Err(family, message string) error {
	switch s {
	case StatusOK, StatusZeroResults:
		return nil
	}
	return &APIError{Family: family, Status: string(s), Message: message}
}
