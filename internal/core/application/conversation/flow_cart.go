package conversation

import (
	"context"

	"shopbot/internal/core/application/usecases/commands"
)

// addToCart handles the "cart_add:<product>" option. Single step, the
// session stays idle.
func (m *Manager) addToCart(ctx context.Context, userID int64, productID string) (Reply, error) {
	cmd, err := commands.NewAddToCartCommand(userID, productID)
	if err != nil {
		return menuReply(msgIdle, OptionOrder, OptionProfile, OptionHistory), nil
	}

	if err = m.handlers.AddToCart.Handle(ctx, cmd); err != nil {
		return Reply{}, err
	}

	return textReply(msgAddedToCart), nil
}

// removeFromCart handles the "cart_remove:<product>" option.
func (m *Manager) removeFromCart(ctx context.Context, userID int64, productID string) (Reply, error) {
	cmd, err := commands.NewRemoveFromCartCommand(userID, productID)
	if err != nil {
		return menuReply(msgIdle, OptionOrder, OptionProfile, OptionHistory), nil
	}

	if err = m.handlers.RemoveFromCart.Handle(ctx, cmd); err != nil {
		return Reply{}, err
	}

	return textReply(msgRemovedFromCart), nil
}
