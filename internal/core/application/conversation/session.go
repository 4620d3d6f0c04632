package conversation

import (
	"sync"
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
)

// State identifies the current step of a user's dialog.
type State int

const (
	// StateIdle means no flow is in progress; options start flows.
	StateIdle State = iota

	// Registration flow.
	StateRegistrationName
	StateRegistrationPhone
	StateRegistrationAddress
	StateRegistrationCurrentAddress

	// Checkout flow.
	StateCheckoutPackaging
	StateCheckoutAddress
	StateCheckoutTime
	StateCheckoutComment
	StateCheckoutConfirm

	// Profile edit flow.
	StateProfileField
	StateProfileValue

	// Rating flow.
	StateRatingValue

	// Courier stats flow.
	StateStatsFrom
	StateStatsTo
)

// scratch holds the fields collected so far by the flow in progress. It is
// discarded wholesale on completion or cancellation; nothing in it is
// durable.
type scratch struct {
	// registration
	name        string
	phone       string
	homeAddress kernel.Address

	// checkout
	productID          string
	hasPackagingChoice bool
	packaging          order.Packaging
	address            kernel.Address
	deliveryTime       order.DeliveryTime
	comment            string

	// profile edit
	profileField string

	// rating
	orderID string

	// courier stats
	statsFrom time.Time
}

// session is one user's dialog state. The mutex serializes event
// processing for this user only.
type session struct {
	mu      sync.Mutex
	state   State
	scratch scratch
}

func (s *session) reset() {
	s.state = StateIdle
	s.scratch = scratch{}
}
