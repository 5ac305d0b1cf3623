package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Inventory errors
	ErrItemNotFound     = errors.New("item not found")
	ErrItemValidation   = errors.New("item validation error")
	ErrUnknownSortKey   = errors.New("unknown sort key")
	ErrEmptyItemSet     = errors.New("item set is empty")
	ErrItemsUnavailable = errors.New("items no longer available")

	// Order errors
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderValidation = errors.New("order validation error")

	// Watchlist errors
	ErrWatchlistEntryNotFound = errors.New("watchlist entry not found")

	// Admin session errors
	ErrInvalidPincode = errors.New("invalid pincode")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
