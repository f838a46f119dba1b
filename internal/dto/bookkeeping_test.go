package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/SscSPs/livestock_ledger/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePurchaseRequest_ToDomain(t *testing.T) {
	price := decimal.NewFromInt(25_000_000)
	req := dto.CreatePurchaseRequest{
		ProductName:   "Kerbau Dewasa Jantan",
		Quantity:      3,
		UnitPrice:     &price,
		PaymentMethod: "CREDIT",
		Date:          "2024-03-01",
	}

	got, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.Credit, got.PaymentMethod)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.Date)
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(25_000_000)))

	req.Date = ""
	got, err = req.ToDomain()
	require.NoError(t, err)
	assert.True(t, got.Date.IsZero())

	req.Date = "01/03/2024"
	_, err = req.ToDomain()
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	req.Date = ""
	req.UnitPrice = nil
	_, err = req.ToDomain()
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCreatePurchaseRequest_ZeroPriceIsAllowed(t *testing.T) {
	zero := decimal.Zero
	req := dto.CreatePurchaseRequest{ProductName: "Anak Kerbau Jantan", Quantity: 1, UnitPrice: &zero, PaymentMethod: "CASH"}

	got, err := req.ToDomain()
	require.NoError(t, err)
	assert.True(t, got.UnitPrice.IsZero())
}

func TestCreateSaleRequest_OptionalPrice(t *testing.T) {
	req := dto.CreateSaleRequest{ProductName: "Anak Kerbau Betina", Quantity: 1, PaymentMethod: "CASH"}
	got, err := req.ToDomain()
	require.NoError(t, err)
	assert.Nil(t, got.UnitPrice)

	price := decimal.NewFromInt(11_500_000)
	req.UnitPrice = &price
	got, err = req.ToDomain()
	require.NoError(t, err)
	require.NotNil(t, got.UnitPrice)
	assert.True(t, got.UnitPrice.Equal(price))
}

func TestCommitSalesRequest_ToDomain(t *testing.T) {
	req := dto.CommitSalesRequest{Sales: []dto.CreateSaleRequest{
		{ProductName: "Kerbau Remaja Jantan", Quantity: 2, PaymentMethod: "CASH"},
		{ProductName: "kerbau remaja jantan", Quantity: 1, PaymentMethod: "CREDIT"},
	}}
	batch, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Len())
	assert.Equal(t, map[string]int64{"kerbau remaja jantan": 3}, batch.QuantityByProduct())

	req.Sales[1].Date = "yesterday"
	_, err = req.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "sale 2")
}

func TestManualEntryRequest_DefaultsToGeneral(t *testing.T) {
	req := dto.ManualEntryRequest{
		Description: "Setoran modal",
		Debits:      []dto.AmountLineRequest{{AccountCode: "1-10000", Amount: decimal.NewFromInt(100)}},
		Credits:     []dto.AmountLineRequest{{AccountCode: "3-30000", Amount: decimal.NewFromInt(100)}},
	}
	got, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.KindGeneral, got.Kind)
	require.Len(t, got.Debits, 1)
	assert.Equal(t, "1-10000", got.Debits[0].AccountCode)

	req.Kind = "ADJUSTING"
	got, err = req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.KindAdjusting, got.Kind)
}

func TestRegisterValidations_AccountCode(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidations(v))

	tests := []struct {
		code  string
		valid bool
	}{
		{"1-10000", true},
		{"6-60700", true},
		{"110000", false},
		{"1-1000", false},
		{"A-10000", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := v.Struct(dto.AmountLineRequest{AccountCode: tt.code, Amount: decimal.NewFromInt(1)})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToListInventoryResponse(t *testing.T) {
	resp := dto.ToListInventoryResponse([]domain.InventoryItem{
		{ProductKey: "a", TotalValue: decimal.NewFromInt(10)},
		{ProductKey: "b", TotalValue: decimal.NewFromInt(15)},
	})
	assert.True(t, resp.TotalValue.Equal(decimal.NewFromInt(25)))
	assert.Len(t, resp.Items, 2)
}
