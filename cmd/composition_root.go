package cmd

import (
	"log/slog"

	httpin "shopbot/internal/adapters/in/http"
	"shopbot/internal/adapters/out/kafka"
	"shopbot/internal/adapters/out/notifier"
	"shopbot/internal/adapters/out/postgres"
	"shopbot/internal/adapters/out/postgres/catalogrepo"
	"shopbot/internal/core/application/conversation"
	"shopbot/internal/core/application/usecases/commands"
	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/ports"
	"shopbot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.Catalog
	publisher  ports.OrderEventPublisher
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalog(gormDB),
		publisher:  publisher,
		notifier:   notifier.NewHTTPNotifier(config.NotifierURL),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateRemoveFromCartCommandHandler() commands.RemoveFromCartCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveFromCartCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UserOrderUoWFactory = FuncUserOrderUoWFactory(func() commands.UserOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f, c.catalog, c.publisher, c.notifier, c.config.DispatchChatID, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.publisher, c.logger, c.config.CommissionRate)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCourierCommandHandler() commands.AddCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCourierCommandHandler() commands.RemoveCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDispatchQueueQueryHandler() queries.GetDispatchQueueQueryHandler {
	return queries.NewGetDispatchQueueQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetCourierStatsQueryHandler() queries.GetCourierStatsQueryHandler {
	return queries.NewGetCourierStatsQueryHandler(c.uowFactory.Create().OrderRepository(), c.config.CommissionRate)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierRatingQueryHandler() queries.GetCourierRatingQueryHandler {
	return queries.NewGetCourierRatingQueryHandler(c.gormDB)
}

// CreateConversationManager wires the chat dialog engine to the command and
// query handlers it drives.
func (c *CompositionRoot) CreateConversationManager() *conversation.Manager {
	registerUser := c.CreateRegisterUserCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	addToCart := c.CreateAddToCartCommandHandler()
	removeFromCart := c.CreateRemoveFromCartCommandHandler()
	updateProfile := c.CreateUpdateProfileCommandHandler()
	rateOrder := c.CreateRateOrderCommandHandler()
	userOrders := c.CreateGetUserOrdersQueryHandler()
	courierStats := c.CreateGetCourierStatsQueryHandler()

	return conversation.NewManager(conversation.Handlers{
		RegisterUser:   &registerUser,
		CreateOrder:    &createOrder,
		AddToCart:      &addToCart,
		RemoveFromCart: &removeFromCart,
		UpdateProfile:  &updateProfile,
		RateOrder:      &rateOrder,
		UserOrders:     userOrders,
		CourierStats:   courierStats,
	}, c.catalog, nil, c.logger)
}

// CreateHTTPServer assembles the webhook and API surface.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateConversationManager(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAddCourierCommandHandler(),
		c.CreateRemoveCourierCommandHandler(),
		c.CreateGetDispatchQueueQueryHandler(),
		c.CreateGetCourierStatsQueryHandler(),
		c.CreateGetAllCouriersQueryHandler(),
		c.CreateGetCourierRatingQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDispatchQueueQueryHandler(),
		c.CreateGetCourierStatsQueryHandler(),
		c.notifier,
		c.config.DispatchChatID,
		c.config.AdminChatID,
		c.logger,
	)
}

// NewSaramaPublisher connects the Kafka order event publisher described by
// the config.
func NewSaramaPublisher(config Config, logger *slog.Logger) (*kafka.SaramaOrderEventPublisher, error) {
	return kafka.NewSaramaOrderEventPublisher(
		[]string{config.KafkaHost},
		config.KafkaOrderChangedTopic,
		logger,
	)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserOrderUoWFactory func() commands.UserOrderUoW

func (f FuncUserOrderUoWFactory) Create() commands.UserOrderUoW {
	return f()
}

type FuncOrderCourierUoWFactory func() commands.OrderCourierUoW

func (f FuncOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}
