package conversation

import (
	"context"
	"strings"

	"shopbot/internal/core/application/usecases/commands"
	"shopbot/internal/core/domain/model/kernel"
)

// advanceRegistration collects name, phone, home address and current
// address, then registers the user. The skip option at the last step reuses
// the home address as the current one.
func (m *Manager) advanceRegistration(ctx context.Context, userID int64, s *session, event Event) (Reply, error) {
	switch s.state {
	case StateRegistrationName:
		name := strings.TrimSpace(event.Text())
		if event.Kind() != KindText || name == "" {
			return textReply(msgAskName), nil
		}

		s.scratch.name = name
		s.state = StateRegistrationPhone
		return textReply(msgAskPhone), nil

	case StateRegistrationPhone:
		phone := strings.TrimSpace(event.Text())
		if event.Kind() != KindText || phone == "" {
			return textReply(msgAskPhone), nil
		}

		s.scratch.phone = phone
		s.state = StateRegistrationAddress
		return textReply(msgAskAddress), nil

	case StateRegistrationAddress:
		address, ok := addressFromEvent(event)
		if !ok {
			return textReply(msgAskAddress), nil
		}

		s.scratch.homeAddress = address
		s.state = StateRegistrationCurrentAddress
		return menuReply(msgAskCurrentAddress, OptionSkip), nil

	case StateRegistrationCurrentAddress:
		current := s.scratch.homeAddress
		if !(event.Kind() == KindOption && event.Option() == OptionSkip) {
			address, ok := addressFromEvent(event)
			if !ok {
				return menuReply(msgAskCurrentAddress, OptionSkip), nil
			}
			current = address
		}

		cmd, err := commands.NewRegisterUserCommand(
			userID, s.scratch.name, s.scratch.phone, s.scratch.homeAddress, current, m.now())
		if err != nil {
			return textReply(msgBadInput), nil
		}

		if err = m.handlers.RegisterUser.Handle(ctx, cmd); err != nil {
			s.reset()
			return Reply{}, err
		}

		s.reset()
		return textReply(msgRegistered), nil

	default:
		s.reset()
		return textReply(msgIdle), nil
	}
}

// addressFromEvent builds an address from either free text or a shared
// location.
func addressFromEvent(event Event) (kernel.Address, bool) {
	switch event.Kind() {
	case KindText:
		text := strings.TrimSpace(event.Text())
		if text == "" {
			return kernel.Address{}, false
		}
		address, err := kernel.NewAddress(nil, text)
		if err != nil {
			return kernel.Address{}, false
		}
		return address, true

	case KindLocation:
		address, err := kernel.NewAddress(event.Location(), "")
		if err != nil {
			return kernel.Address{}, false
		}
		return address, true

	default:
		return kernel.Address{}, false
	}
}
