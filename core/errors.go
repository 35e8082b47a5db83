package core

import (
	"errors"
)

// Pipeline failure classes. Each is wrapped with %w by the component that hits it
// so callers can branch with errors.Is.
var (
	// ErrFetch means the thread containing the reacted-to message could not be retrieved
	ErrFetch = errors.New("failed to fetch thread")

	// ErrTranslation means the translation provider rejected or failed the request
	ErrTranslation = errors.New("translation failed")

	// ErrDelivery means the reply could not be posted to Slack
	ErrDelivery = errors.New("failed to deliver reply")
)

// IsFetchError checks if an error originated from retrieving a Slack thread
func IsFetchError(err error) bool {
	return err != nil && errors.Is(err, ErrFetch)
}

// IsTranslationError checks if an error originated from the translation provider
func IsTranslationError(err error) bool {
	return err != nil && errors.Is(err, ErrTranslation)
}

// IsDeliveryError checks if an error originated from posting a reply
func IsDeliveryError(err error) bool {
	return err != nil && errors.Is(err, ErrDelivery)
}
