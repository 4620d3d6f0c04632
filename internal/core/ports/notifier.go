package ports

import "context"

// Notifier delivers outbound chat messages: order confirmations to
// customers, new-order announcements to couriers and digests to the admin
// channel.
type Notifier interface {
	// Notify sends a text message to the given chat.
	Notify(ctx context.Context, chatID int64, text string) error
}
