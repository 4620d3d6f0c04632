package conversation

import (
	"context"
	"strings"

	"shopbot/internal/core/application/usecases/commands"
)

// advanceProfile lets the user pick a profile field and submit its new
// value. Address fields accept text or a shared location.
func (m *Manager) advanceProfile(ctx context.Context, userID int64, s *session, event Event) (Reply, error) {
	switch s.state {
	case StateProfileField:
		switch event.Option() {
		case OptionFieldName, OptionFieldPhone, OptionFieldHomeAddress, OptionFieldCurrentAddress:
			s.scratch.profileField = event.Option()
			s.state = StateProfileValue
			return textReply(msgAskProfileValue), nil
		default:
			return menuReply(msgAskProfileField,
				OptionFieldName, OptionFieldPhone, OptionFieldHomeAddress, OptionFieldCurrentAddress), nil
		}

	case StateProfileValue:
		cmd, ok := m.profileCommand(userID, s, event)
		if !ok {
			return textReply(msgAskProfileValue), nil
		}

		if err := m.handlers.UpdateProfile.Handle(ctx, cmd); err != nil {
			s.reset()
			return Reply{}, err
		}

		s.reset()
		return textReply(msgProfileUpdated), nil

	default:
		s.reset()
		return textReply(msgIdle), nil
	}
}

func (m *Manager) profileCommand(userID int64, s *session, event Event) (commands.UpdateProfileCommand, bool) {
	switch s.scratch.profileField {
	case OptionFieldName:
		value := strings.TrimSpace(event.Text())
		if event.Kind() != KindText || value == "" {
			return commands.UpdateProfileCommand{}, false
		}
		cmd, err := commands.NewUpdateProfileCommand(userID, &value, nil, nil, nil)
		return cmd, err == nil

	case OptionFieldPhone:
		value := strings.TrimSpace(event.Text())
		if event.Kind() != KindText || value == "" {
			return commands.UpdateProfileCommand{}, false
		}
		cmd, err := commands.NewUpdateProfileCommand(userID, nil, &value, nil, nil)
		return cmd, err == nil

	case OptionFieldHomeAddress:
		address, ok := addressFromEvent(event)
		if !ok {
			return commands.UpdateProfileCommand{}, false
		}
		cmd, err := commands.NewUpdateProfileCommand(userID, nil, nil, &address, nil)
		return cmd, err == nil

	case OptionFieldCurrentAddress:
		address, ok := addressFromEvent(event)
		if !ok {
			return commands.UpdateProfileCommand{}, false
		}
		cmd, err := commands.NewUpdateProfileCommand(userID, nil, nil, nil, &address)
		return cmd, err == nil

	default:
		return commands.UpdateProfileCommand{}, false
	}
}
