package conversation

// Reply is the structured outbound answer of one dialog step: a text to
// show and an optional choice menu. Rendering is up to the transport.
type Reply struct {
	Text    string
	Options []string
}

func textReply(text string) Reply {
	return Reply{Text: text}
}

func menuReply(text string, options ...string) Reply {
	return Reply{Text: text, Options: options}
}

// Option tokens understood at idle state and inside flows. Flow-starting
// tokens carry their argument after a colon, e.g. "order:flowers-7".
const (
	OptionRegister       = "register"
	OptionOrder          = "order"
	OptionAddToCart      = "cart_add"
	OptionRemoveFromCart = "cart_remove"
	OptionProfile        = "profile"
	OptionHistory        = "history"
	OptionRate           = "rate"
	OptionStats          = "stats"

	OptionConfirm = "confirm"
	OptionSkip    = "skip"

	OptionWithContainer    = "with_container"
	OptionWithoutContainer = "without_container"
	OptionImmediate        = "immediate"
	OptionDeferred         = "deferred"

	OptionFieldName           = "name"
	OptionFieldPhone          = "phone"
	OptionFieldHomeAddress    = "home_address"
	OptionFieldCurrentAddress = "current_address"
)

const (
	msgIdle              = "Choose an action."
	msgCancelled         = "Cancelled. Back to the main menu."
	msgAskName           = "What is your name?"
	msgAskPhone          = "Your contact phone?"
	msgAskAddress        = "Send your delivery address as text or share a location."
	msgAskCurrentAddress = "Where are you right now? Send an address, share a location, or skip to reuse your home address."
	msgRegistered        = "Registration complete. Welcome!"
	msgAddedToCart       = "Added to your cart."
	msgRemovedFromCart   = "Removed from your cart."
	msgAskPackaging      = "With or without a container?"
	msgAskTime           = "Deliver as soon as possible, or later today?"
	msgAskComment        = "Any comment for the courier? Send text or skip."
	msgBadInput          = "That input does not fit here, please try again."
	msgOrderPlaced       = "Your order is placed. A courier will pick it up soon."
	msgAskProfileField   = "Which profile field do you want to change?"
	msgAskProfileValue   = "Send the new value."
	msgProfileUpdated    = "Profile updated."
	msgAskRating         = "Rate your delivery from 1 to 5."
	msgBadRating         = "Please send a number from 1 to 5."
	msgRated             = "Thank you for your feedback!"
	msgNoOrders          = "You have no orders yet."
	msgAskStartDay       = "First day of the report? Use 2006-01-02 form."
	msgAskEndDay         = "Last day of the report?"
	msgBadDay            = "Please send a day in 2006-01-02 form."
	msgNoDeliveries      = "No deliveries in that period."
)
