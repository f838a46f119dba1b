package pgsql

import (
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider binds every repository to db, which is a pool or an open transaction.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InventoryRepo: newPgxInventoryRepository(db),
		PurchaseRepo:  newPgxPurchaseRepository(db),
		SaleRepo:      newPgxSaleRepository(db),
		JournalRepo:   newPgxJournalRepository(db),
		LedgerRepo:    newPgxLedgerRepository(db),
	}
}
