package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and backend errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrBackendUnavailable = fmt.Errorf("backend unavailable")

	// Catalog consistency errors
	ErrAuthorNotFound   = fmt.Errorf("author not found")
	ErrVideoNotFound    = fmt.Errorf("video not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
