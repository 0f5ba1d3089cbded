package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotificationDenied indicates that notification delivery is not
// authorized by the host environment. This is a skipped state, not a
// failure: reminders stay armed until permission changes.
var ErrNotificationDenied = errors.New("notification permission denied")
