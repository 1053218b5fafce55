package errs

import "errors"

// Sentinel errors shared between the store and usecase layers
var (
	ErrItemUnavailable = errors.New("item not available")

	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)
