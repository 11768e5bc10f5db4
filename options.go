package pushsub

import (
	"fmt"

	"github.com/coregx/pushsub/api"
)

// SubscriptionManagerOption is a function that configures a
// SubscriptionManager. Used with the Options Pattern for flexible service
// construction.
//
// Example:
//
//	manager, err := pushsub.NewSubscriptionManager(
//	    pushsub.WithCaller(session),
//	    pushsub.WithLogger(logger),
//	)
type SubscriptionManagerOption func(*SubscriptionManager) error

// WithCaller sets the authenticated session collaborator every remote
// operation goes through. Caller is required and must not be nil.
//
// This is a required option for NewSubscriptionManager.
func WithCaller(caller api.Caller) SubscriptionManagerOption {
	return func(m *SubscriptionManager) error {
		if caller == nil {
			return fmt.Errorf("caller cannot be nil")
		}
		m.caller = caller
		return nil
	}
}

// WithLogger sets the logger instance for the subscription manager.
// Logger is required and must not be nil.
//
// Use NoopLogger for silent operation or implement Logger to integrate
// with your logging system (zap, logrus, etc.).
//
// This is a required option for NewSubscriptionManager.
func WithLogger(logger Logger) SubscriptionManagerOption {
	return func(m *SubscriptionManager) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		m.logger = logger
		return nil
	}
}
