package cmd

import (
	"log/slog"
	"time"

	"comanda/internal/adapters/out/postgres"
	"comanda/internal/adapters/out/postgres/catalogrepo"
	"comanda/internal/adapters/out/postgres/tenantconfig"
	"comanda/internal/adapters/out/rediscache"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/ports"
	"comanda/internal/jobs"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const policyCacheTTL = time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.CatalogReader
	tenantCfg  ports.TenantConfigReader
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var tenantCfg ports.TenantConfigReader = tenantconfig.NewGormTenantConfigReader(gormDB)
	if redisClient != nil {
		tenantCfg = rediscache.NewPolicyCache(redisClient, tenantCfg, policyCacheTTL)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogrepo.NewGormCatalogReader(gormDB),
		tenantCfg:  tenantCfg,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog, c.tenantCfg)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditOrderCommandHandler(f, c.catalog, c.tenantCfg)
}

func (c *CompositionRoot) CreateChangeTablesCommandHandler() commands.ChangeTablesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateMergeOrdersCommandHandler() commands.MergeOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMergeOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockIngredientsQueryHandler() queries.GetLowStockIngredientsQueryHandler {
	return queries.NewGetLowStockIngredientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTenantsQueryHandler() queries.ListTenantsQueryHandler {
	return queries.NewListTenantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListTenantsQueryHandler(),
		c.CreateGetLowStockIngredientsQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
