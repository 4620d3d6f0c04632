package conversation

import (
	"strings"

	"shopbot/internal/core/domain/model/kernel"
)

// BackToken is the reserved input that cancels the current flow from any
// state. It is matched case-insensitively against both text and option
// events.
const BackToken = "back"

// Kind discriminates incoming chat events.
type Kind int

const (
	// KindText is free-form text typed by the user.
	KindText Kind = iota + 1

	// KindLocation is a structured geo point shared by the user.
	KindLocation

	// KindOption is a choice from a menu the bot offered.
	KindOption

	// KindCancel is an explicit cancellation signal from the transport.
	KindCancel
)

// Event is a discriminated chat input. Exactly one payload matches the
// kind.
type Event struct {
	kind     Kind
	text     string
	option   string
	location *kernel.GeoPoint
}

// NewTextEvent creates a free-text event.
func NewTextEvent(text string) Event {
	return Event{kind: KindText, text: text}
}

// NewLocationEvent creates a structured location event.
func NewLocationEvent(location kernel.GeoPoint) Event {
	return Event{kind: KindLocation, location: &location}
}

// NewOptionEvent creates a menu-choice event.
func NewOptionEvent(option string) Event {
	return Event{kind: KindOption, option: option}
}

// NewCancelEvent creates an explicit cancellation event.
func NewCancelEvent() Event {
	return Event{kind: KindCancel}
}

// Kind returns the event discriminator.
func (e Event) Kind() Kind {
	return e.kind
}

// Text returns the free-text payload.
func (e Event) Text() string {
	return e.text
}

// Option returns the chosen option payload.
func (e Event) Option() string {
	return e.option
}

// Location returns the location payload, nil for other kinds.
func (e Event) Location() *kernel.GeoPoint {
	return e.location
}

// IsCancel reports whether the event is a cancellation: an explicit cancel,
// or the reserved back token sent as text or option.
func (e Event) IsCancel() bool {
	switch e.kind {
	case KindCancel:
		return true
	case KindText:
		return strings.EqualFold(strings.TrimSpace(e.text), BackToken)
	case KindOption:
		return strings.EqualFold(e.option, BackToken)
	default:
		return false
	}
}
