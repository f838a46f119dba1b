package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/chart"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := chart.Default()
	tests := []struct {
		code string
		want domain.Category
	}{
		{"1-10000", domain.Asset},
		{"1-23100", domain.Asset},
		{"2-31000", domain.Liability},
		{"3-40000", domain.Equity},
		{"4-40000", domain.Revenue},
		{"5-50000", domain.COGS},
		{"6-60700", domain.Expense},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := c.Classify(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := c.Classify("9-99999")
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
}

func TestAccountsWithPrefix(t *testing.T) {
	c := chart.Default()

	assert.Len(t, c.AccountsWithPrefix("4"), 1)
	assert.Len(t, c.AccountsWithPrefix("6"), 8)
	assert.Len(t, c.AccountsWithPrefix("1-1"), 8)

	fixed := c.AccountsWithPrefix("1-2")
	require.Len(t, fixed, 6)
	assert.Equal(t, "1-20000", fixed[0].Code)

	var contra int
	for _, a := range fixed {
		if chart.IsAccumulatedDepreciation(a) {
			contra++
		}
	}
	assert.Equal(t, 3, contra)
	assert.Len(t, c.All(), 30)
}

func TestNew_RejectsBadCodes(t *testing.T) {
	_, err := chart.New([]domain.Account{{Code: "110000", Name: "Kas"}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = chart.New([]domain.Account{{Code: "1-10000", Name: "Kas"}, {Code: "1-10000", Name: "Kas"}})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	for _, code := range []string{"0-10000", "7-70000", "9-90000"} {
		_, err = chart.New([]domain.Account{{Code: code, Name: "Lain-lain"}})
		assert.ErrorIs(t, err, apperrors.ErrValidation, code)
	}
}

func TestDefaultCatalog_InventoryAccount(t *testing.T) {
	cat := chart.DefaultCatalog()
	tests := []struct {
		product string
		want    string
	}{
		{"Kerbau Dewasa Jantan", "1-12000"},
		{"kerbau DEWASA betina", "1-12100"},
		{"Kerbau Remaja Jantan", "1-12200"},
		{"Kerbau Remaja Betina", "1-12300"},
		{"Anak Kerbau Jantan", "1-12400"},
		{"Anak Kerbau Betina", "1-12500"},
		{"Kerbau Bule", "1-12000"},
	}
	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.InventoryAccount(tt.product))
		})
	}
	require.NoError(t, cat.Validate(chart.Default()))
}

func TestDefaultCatalog_SellingPrice(t *testing.T) {
	cat := chart.DefaultCatalog()

	price, ok := cat.SellingPrice("Kerbau Remaja Betina")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(17_000_000).Equal(price))

	_, ok = cat.SellingPrice("Sapi Limosin")
	assert.False(t, ok)
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `default_account: 1-12100
products:
  - keyword: Murrah
    account: 1-12200
    selling_price: "25000000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := chart.LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "1-12200", cat.InventoryAccount("kerbau murrah"))
	assert.Equal(t, "1-12100", cat.InventoryAccount("kerbau lumpur"))

	price, ok := cat.SellingPrice("Kerbau Murrah")
	require.True(t, ok)
	assert.Equal(t, "25000000", price.String())

	bad := chart.NewCatalog("1-12000", []chart.CatalogEntry{{Keyword: "x", Account: "1-99999"}})
	assert.ErrorIs(t, bad.Validate(chart.Default()), apperrors.ErrUnknownAccount)

	def, err := chart.LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, def.Entries(), 6)
}
