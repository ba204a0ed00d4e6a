package notification

import "context"

// Service delivers operator-facing messages to a fixed destination.
// Delivery is best-effort, callers decide whether a failure is retried.
type Service interface {
	Send(ctx context.Context, text string) error
}
