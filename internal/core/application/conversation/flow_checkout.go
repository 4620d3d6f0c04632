package conversation

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/core/application/usecases/commands"
	"shopbot/internal/core/domain/model/order"
)

// startCheckout begins the checkout dialog for one catalog product. The
// quantity is not asked; the order handler draws it from the cart. The
// packaging question is asked only when the product carries a price pair.
func (m *Manager) startCheckout(ctx context.Context, s *session, productID string) (Reply, error) {
	if productID == "" {
		return menuReply(msgIdle, OptionOrder, OptionProfile, OptionHistory), nil
	}

	product, err := m.catalog.GetProduct(ctx, productID)
	if err != nil {
		s.reset()
		return Reply{}, err
	}

	s.scratch.productID = product.ID
	s.scratch.hasPackagingChoice = product.HasPackagingChoice()
	if s.scratch.hasPackagingChoice {
		s.state = StateCheckoutPackaging
		return menuReply(msgAskPackaging, OptionWithContainer, OptionWithoutContainer), nil
	}

	s.scratch.packaging = order.PackagingPlain
	s.state = StateCheckoutAddress
	return textReply(msgAskAddress), nil
}

// advanceCheckout walks packaging, address, delivery time, comment and
// confirmation. Malformed input repeats the current question.
func (m *Manager) advanceCheckout(ctx context.Context, userID int64, s *session, event Event) (Reply, error) {
	switch s.state {
	case StateCheckoutPackaging:
		switch event.Option() {
		case OptionWithContainer:
			s.scratch.packaging = order.PackagingWithContainer
		case OptionWithoutContainer:
			s.scratch.packaging = order.PackagingWithoutContainer
		default:
			return menuReply(msgAskPackaging, OptionWithContainer, OptionWithoutContainer), nil
		}

		s.state = StateCheckoutAddress
		return textReply(msgAskAddress), nil

	case StateCheckoutAddress:
		address, ok := addressFromEvent(event)
		if !ok {
			return textReply(msgAskAddress), nil
		}

		s.scratch.address = address
		s.state = StateCheckoutTime
		return menuReply(msgAskTime, OptionImmediate, OptionDeferred), nil

	case StateCheckoutTime:
		switch event.Option() {
		case OptionImmediate:
			s.scratch.deliveryTime = order.DeliveryImmediate
		case OptionDeferred:
			s.scratch.deliveryTime = order.DeliveryDeferred
		default:
			return menuReply(msgAskTime, OptionImmediate, OptionDeferred), nil
		}

		s.state = StateCheckoutComment
		return menuReply(msgAskComment, OptionSkip), nil

	case StateCheckoutComment:
		switch {
		case event.Kind() == KindOption && event.Option() == OptionSkip:
			s.scratch.comment = ""
		case event.Kind() == KindText:
			s.scratch.comment = strings.TrimSpace(event.Text())
		default:
			return menuReply(msgAskComment, OptionSkip), nil
		}

		s.state = StateCheckoutConfirm
		summary := fmt.Sprintf("Order %s from your cart. Confirm?", s.scratch.productID)
		return menuReply(summary, OptionConfirm), nil

	case StateCheckoutConfirm:
		if event.Kind() != KindOption || event.Option() != OptionConfirm {
			summary := fmt.Sprintf("Order %s from your cart. Confirm?", s.scratch.productID)
			return menuReply(summary, OptionConfirm), nil
		}

		cmd, err := commands.NewCreateOrderCommand(
			userID,
			s.scratch.productID,
			s.scratch.packaging,
			s.scratch.address,
			s.scratch.deliveryTime,
			s.scratch.comment,
			m.now(),
		)
		if err != nil {
			return textReply(msgBadInput), nil
		}

		if err = m.handlers.CreateOrder.Handle(ctx, cmd); err != nil {
			s.reset()
			return Reply{}, err
		}

		s.reset()
		return textReply(msgOrderPlaced), nil

	default:
		s.reset()
		return textReply(msgIdle), nil
	}
}
