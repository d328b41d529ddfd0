package cmd

import (
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/storage"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       services.AuthorizationGate
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       services.NewAuthorizationGate(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.gate)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateDeliverContentCommandHandler() commands.DeliverContentCommandHandler {
	return commands.NewDeliverContentCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateAddFeedbackCommandHandler() commands.AddFeedbackCommandHandler {
	return commands.NewAddFeedbackCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOverdueOrdersQueryHandler() queries.OverdueOrdersQueryHandler {
	return queries.NewOverdueOrdersQueryHandler(c.gormDB)
}

// CreateFileStore picks the upload backend: Supabase storage when configured,
// otherwise the local filesystem.
func (c *CompositionRoot) CreateFileStore() (ports.FileStore, error) {
	if c.config.SupabaseURL != "" {
		return storage.NewSupabaseFileStore(c.config.SupabaseURL, c.config.SupabaseKey, c.config.StorageBucket), nil
	}
	return storage.NewLocalFileStore(c.config.LocalStorageDir)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}
