package conversation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"shopbot/internal/core/application/usecases/commands"
	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/ports"
)

// Handler interfaces over the command and query handlers a dialog can
// invoke at its terminal states. Narrow interfaces keep the manager
// testable without a database.
type (
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) error
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	AddToCartHandler interface {
		Handle(ctx context.Context, cmd commands.AddToCartCommand) error
	}

	RemoveFromCartHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveFromCartCommand) error
	}

	UpdateProfileHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProfileCommand) error
	}

	RateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RateOrderCommand) error
	}

	UserOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUserOrdersQuery) ([]queries.GetUserOrdersQueryResponse, error)
	}

	CourierStatsHandler interface {
		Handle(ctx context.Context, query queries.GetCourierStatsQuery) ([]queries.GetCourierStatsQueryResponse, error)
	}
)

// Handlers bundles the downstream operations the dialogs invoke.
type Handlers struct {
	RegisterUser   RegisterUserHandler
	CreateOrder    CreateOrderHandler
	AddToCart      AddToCartHandler
	RemoveFromCart RemoveFromCartHandler
	UpdateProfile  UpdateProfileHandler
	RateOrder      RateOrderHandler
	UserOrders     UserOrdersHandler
	CourierStats   CourierStatsHandler
}

// Manager routes chat events through per-user dialog state machines.
//
// Concurrency contract: events of one user are serialized by the session
// mutex; different users advance independently. The sessions map itself is
// guarded separately and only long enough to look up or create a session.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*session

	handlers Handlers
	catalog  ports.Catalog
	now      func() time.Time
	logger   *slog.Logger
}

// NewManager creates a conversation manager.
func NewManager(handlers Handlers, catalog ports.Catalog, now func() time.Time, logger *slog.Logger) *Manager {
	if now == nil {
		now = time.Now
	}

	return &Manager{
		sessions: make(map[int64]*session),
		handlers: handlers,
		catalog:  catalog,
		now:      now,
		logger:   logger.With("component", "conversation"),
	}
}

// Advance processes one chat event for the given user and returns the
// structured reply.
//
// Validation problems (malformed numbers, unexpected input kinds) never
// surface as errors: the state stays put and the reply re-prompts. Errors
// returned here are conflicts, not-found conditions and persistence
// failures, for the transport to render.
func (m *Manager) Advance(ctx context.Context, userID int64, event Event) (Reply, error) {
	s := m.session(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if event.IsCancel() {
		s.reset()
		return textReply(msgCancelled), nil
	}

	switch s.state {
	case StateIdle:
		return m.routeIdle(ctx, userID, s, event)

	case StateRegistrationName, StateRegistrationPhone,
		StateRegistrationAddress, StateRegistrationCurrentAddress:
		return m.advanceRegistration(ctx, userID, s, event)

	case StateCheckoutPackaging, StateCheckoutAddress,
		StateCheckoutTime, StateCheckoutComment, StateCheckoutConfirm:
		return m.advanceCheckout(ctx, userID, s, event)

	case StateProfileField, StateProfileValue:
		return m.advanceProfile(ctx, userID, s, event)

	case StateRatingValue:
		return m.advanceRating(ctx, userID, s, event)

	case StateStatsFrom, StateStatsTo:
		return m.advanceStats(ctx, userID, s, event)

	default:
		s.reset()
		return textReply(msgIdle), nil
	}
}

// State reports the user's current dialog state. Mostly useful for the
// transport to decide between menus.
func (m *Manager) State(userID int64) State {
	s := m.session(userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (m *Manager) session(userID int64) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &session{state: StateIdle}
		m.sessions[userID] = s
	}
	return s
}

// routeIdle dispatches flow-starting options. Anything else re-prompts the
// main menu.
func (m *Manager) routeIdle(ctx context.Context, userID int64, s *session, event Event) (Reply, error) {
	if event.Kind() != KindOption {
		return menuReply(msgIdle, OptionOrder, OptionProfile, OptionHistory), nil
	}

	token, arg := splitOption(event.Option())

	switch token {
	case OptionRegister:
		s.state = StateRegistrationName
		return textReply(msgAskName), nil

	case OptionOrder:
		return m.startCheckout(ctx, s, arg)

	case OptionAddToCart:
		return m.addToCart(ctx, userID, arg)

	case OptionRemoveFromCart:
		return m.removeFromCart(ctx, userID, arg)

	case OptionProfile:
		s.state = StateProfileField
		return menuReply(msgAskProfileField,
			OptionFieldName, OptionFieldPhone, OptionFieldHomeAddress, OptionFieldCurrentAddress), nil

	case OptionHistory:
		return m.listOrders(ctx, userID)

	case OptionStats:
		s.state = StateStatsFrom
		return textReply(msgAskStartDay), nil

	case OptionRate:
		if arg == "" {
			return menuReply(msgIdle, OptionOrder, OptionProfile, OptionHistory), nil
		}
		s.state = StateRatingValue
		s.scratch.orderID = arg
		return textReply(msgAskRating), nil

	default:
		return menuReply(msgIdle, OptionOrder, OptionProfile, OptionHistory), nil
	}
}

// splitOption separates a flow token from its argument: "order:flowers-7"
// becomes ("order", "flowers-7").
func splitOption(option string) (string, string) {
	token, arg, _ := strings.Cut(option, ":")
	return token, arg
}
