package cmd

import (
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires repositories, handlers and adapters from the process
// configuration. Everything hangs off the shared gorm.DB and, when configured,
// the shared redis client.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *redis.Client
}

// NewCompositionRoot creates the application object graph. redisClient may be
// nil, in which case assignment runs without the lock fence.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
	}
}

// CreateHTTPServer assembles the echo server with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterRiderCommandHandler(),
		c.CreateAssignRiderCommandHandler(),
		c.CreateResolveDeliveryCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateSetRiderAvailabilityCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateFindRiderQueryHandler(),
		c.CreateGetAllRidersQueryHandler(),
		c.CreateAuthenticateRiderQueryHandler(),
		c.CreateGetPendingDeliveriesQueryHandler(),
		c.CreateGetStoreNotificationsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRegisterRiderCommandHandler() commands.RegisterRiderCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})

	var lock commands.AssignmentLock
	if c.redisClient != nil {
		lock = redisout.NewAssignmentLock(c.redisClient)
	}

	policy := services.NewAssignmentPolicy(c.config.GateAssignmentOnAvailability)
	return commands.NewAssignRiderCommandHandler(f, policy, lock)
}

func (c *CompositionRoot) CreateResolveDeliveryCommandHandler() commands.ResolveDeliveryCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRiderAvailabilityCommandHandler() commands.SetRiderAvailabilityCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateFindRiderQueryHandler() queries.FindRiderQueryHandler {
	return queries.NewFindRiderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRidersQueryHandler() queries.GetAllRidersQueryHandler {
	return queries.NewGetAllRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateRiderQueryHandler() queries.AuthenticateRiderQueryHandler {
	return queries.NewAuthenticateRiderQueryHandler(c.gormDB, services.NewPlaintextVerifier())
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreNotificationsQueryHandler() queries.GetStoreNotificationsQueryHandler {
	return queries.NewGetStoreNotificationsQueryHandler(c.gormDB)
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncResolutionUoWFactory func() commands.ResolutionUoW

func (f FuncResolutionUoWFactory) Create() commands.ResolutionUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}
