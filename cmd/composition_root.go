package cmd

import (
	"fmt"
	"log/slog"

	httpin "wastecollection/internal/adapters/in/http"
	"wastecollection/internal/adapters/out/postgres"
	"wastecollection/internal/core/application/usecases/commands"
	"wastecollection/internal/core/application/usecases/queries"
	"wastecollection/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// OpenDatabase connects to the configured store.
func OpenDatabase(cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		return postgres.OpenPostgres(cfg.PostgresDSN(), logger)
	case DriverSQLite:
		return postgres.OpenSQLite(cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func (c *CompositionRoot) DB() *gorm.DB {
	return c.gormDB
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	return commands.NewCreateRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateAcceptRequestCommandHandler() commands.AcceptRequestCommandHandler {
	return commands.NewAcceptRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRequestCommandHandler() commands.CompleteRequestCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteRequestCommandHandler(f, nil)
}

func (c *CompositionRoot) registryUoWFactory() commands.RegistryUoWFactory {
	return FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterSiteCommandHandler() commands.RegisterSiteCommandHandler {
	return commands.NewRegisterSiteCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCollectorCommandHandler() commands.RegisterCollectorCommandHandler {
	return commands.NewRegisterCollectorCommandHandler(c.registryUoWFactory())
}

func (c *CompositionRoot) CreateOverviewReportQueryHandler() queries.GetOverviewReportQueryHandler {
	return queries.NewGetOverviewReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateWasteTypeReportQueryHandler() queries.GetWasteTypeReportQueryHandler {
	return queries.NewGetWasteTypeReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSiteReportQueryHandler() queries.GetSiteReportQueryHandler {
	return queries.NewGetSiteReportQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case exposed by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateRequest:     c.CreateCreateRequestCommandHandler(),
		AcceptRequest:     c.CreateAcceptRequestCommandHandler(),
		CompleteRequest:   c.CreateCompleteRequestCommandHandler(),
		RegisterSite:      c.CreateRegisterSiteCommandHandler(),
		RegisterCollector: c.CreateRegisterCollectorCommandHandler(),

		ListRequestsBySite:     queries.NewListRequestsBySiteQueryHandler(c.gormDB),
		ListRequestsByStatus:   queries.NewListRequestsByStatusQueryHandler(c.gormDB),
		ListCertificatesBySite: queries.NewListCertificatesBySiteQueryHandler(c.gormDB),
		OverviewReport:         c.CreateOverviewReportQueryHandler(),
		WasteTypeReport:        c.CreateWasteTypeReportQueryHandler(),
		SiteReport:             c.CreateSiteReportQueryHandler(),
		ListSites:              queries.NewListSitesQueryHandler(c.gormDB),
		ListCollectors:         queries.NewListCollectorsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewListUncertifiedCompletionsQueryHandler(c.gormDB),
		c.cfg.AuditSchedule,
		c.logger,
	)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}
