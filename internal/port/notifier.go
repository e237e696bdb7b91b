package port

import "context"

// Notifier pushes a message to the external channel that alerts the shop owner.
// Implementations report delivery failures; callers decide whether to swallow them.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
