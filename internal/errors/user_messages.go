package errors

// User-facing messages kept apart from the technical error text.
const (
	MsgInvalidDateRange   = "startDate and endDate must be valid dates"
	MsgInvalidPriceBound  = "minPrice and maxPrice must be numeric"
	MsgListingNotFound    = "The requested listing could not be found"
	MsgInvalidParameters  = "One or more request parameters are invalid"
	MsgServiceUnavailable = "The service is temporarily unavailable, please try again later"
	MsgInternalError      = "An unexpected error occurred"
)
