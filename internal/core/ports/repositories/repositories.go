package repositories

// RepositoryProvider holds the repositories of one unit of work.
type RepositoryProvider struct {
	InventoryRepo InventoryRepositoryFacade
	PurchaseRepo  PurchaseRepositoryFacade
	SaleRepo      SaleRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	LedgerRepo    LedgerRepositoryFacade
}
