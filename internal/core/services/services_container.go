package services

import (
	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The catalog supplies both the product to inventory account mapping and the selling prices.
func NewServiceContainer(uow portsrepo.UnitOfWork, ch *chart.Chart, catalog *chart.Catalog) *portssvc.ServiceContainer {
	if catalog == nil {
		catalog = chart.DefaultCatalog()
	}
	return &portssvc.ServiceContainer{
		Bookkeeping: NewBookkeepingService(uow, ch,
			WithProductMapping(catalog),
			WithPriceList(catalog),
		),
		Reporting: NewReportingService(uow, ch),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BookkeepingSvcFacade = (*bookkeepingService)(nil)
	_ portssvc.ReportingSvc         = (*reportingService)(nil)
)
