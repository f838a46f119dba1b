package memory

import (
	"context"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/livestock_ledger/internal/core/ports/repositories"
)

var (
	_ portsrepo.PurchaseRepositoryFacade = (*repos)(nil)
	_ portsrepo.SaleRepositoryFacade     = (*repos)(nil)
)

func (r *repos) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	for _, p := range r.st.purchases {
		if p.PurchaseID == purchaseID {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("purchase " + purchaseID)
}

func (r *repos) FindPurchaseByGroupID(ctx context.Context, groupID string) (*domain.PurchaseRecord, error) {
	for _, p := range r.st.purchases {
		if p.TransactionGroupID == groupID {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("purchase for transaction " + groupID)
}

func (r *repos) ListPurchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	return append([]domain.PurchaseRecord{}, r.st.purchases...), nil
}

func (r *repos) SavePurchase(ctx context.Context, rec domain.PurchaseRecord) error {
	if err := r.writable("save purchase"); err != nil {
		return err
	}
	for _, p := range r.st.purchases {
		if p.PurchaseID == rec.PurchaseID {
			return apperrors.NewAppError(409, "purchase "+rec.PurchaseID, apperrors.ErrDuplicate)
		}
	}
	r.st.purchases = append(r.st.purchases, rec)
	return nil
}

func (r *repos) DeletePurchase(ctx context.Context, purchaseID string) error {
	if err := r.writable("delete purchase"); err != nil {
		return err
	}
	for i, p := range r.st.purchases {
		if p.PurchaseID == purchaseID {
			r.st.purchases = append(r.st.purchases[:i:i], r.st.purchases[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("purchase " + purchaseID)
}

func (r *repos) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	for _, s := range r.st.sales {
		if s.SaleID == saleID {
			return &s, nil
		}
	}
	return nil, apperrors.NewNotFoundError("sale " + saleID)
}

func (r *repos) FindSaleByGroupID(ctx context.Context, groupID string) (*domain.SaleRecord, error) {
	for _, s := range r.st.sales {
		if s.TransactionGroupID == groupID {
			return &s, nil
		}
	}
	return nil, apperrors.NewNotFoundError("sale for transaction " + groupID)
}

func (r *repos) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	return append([]domain.SaleRecord{}, r.st.sales...), nil
}

func (r *repos) SaveSale(ctx context.Context, rec domain.SaleRecord) error {
	if err := r.writable("save sale"); err != nil {
		return err
	}
	for _, s := range r.st.sales {
		if s.SaleID == rec.SaleID {
			return apperrors.NewAppError(409, "sale "+rec.SaleID, apperrors.ErrDuplicate)
		}
	}
	r.st.sales = append(r.st.sales, rec)
	return nil
}

func (r *repos) DeleteSale(ctx context.Context, saleID string) error {
	if err := r.writable("delete sale"); err != nil {
		return err
	}
	for i, s := range r.st.sales {
		if s.SaleID == saleID {
			r.st.sales = append(r.st.sales[:i:i], r.st.sales[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError("sale " + saleID)
}
