package notify

import "context"

// Notifier delivers a camera state-change notice somewhere.
type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans a notice out to every configured sink; the first error
// wins but never stops the rest.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, title, text); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
