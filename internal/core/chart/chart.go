// Package chart holds the fixed chart of accounts and the product catalog that
// maps livestock products to inventory accounts and selling prices.
package chart

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/SscSPs/livestock_ledger/internal/core/domain"
)

// Well-known account codes used by the journal builder and the statement compiler.
const (
	CashAccount             = "1-10000"
	ReceivableAccount       = "1-11000"
	DefaultInventoryAccount = "1-12000"
	PayableAccount          = "2-10000"
	CapitalAccount          = "3-30000"
	DrawingsAccount         = "3-40000"
	RevenueAccount          = "4-40000"
	COGSAccount             = "5-50000"
)

var codePattern = regexp.MustCompile(`^\d-\d{5}$`)

// ValidCode reports whether code has the d-ddddd shape.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

var defaultAccounts = []domain.Account{
	{Code: "1-10000", Name: "Kas"},
	{Code: "1-11000", Name: "Piutang Usaha"},
	{Code: "1-12000", Name: "Persediaan Kerbau Dewasa Jantan"},
	{Code: "1-12100", Name: "Persediaan Kerbau Dewasa Betina"},
	{Code: "1-12200", Name: "Persediaan Kerbau Remaja Jantan"},
	{Code: "1-12300", Name: "Persediaan Kerbau Remaja Betina"},
	{Code: "1-12400", Name: "Persediaan Anak Kerbau Jantan"},
	{Code: "1-12500", Name: "Persediaan Anak Kerbau Betina"},
	{Code: "1-20000", Name: "Kendaraan"},
	{Code: "1-21000", Name: "Kandang"},
	{Code: "1-22000", Name: "Peralatan"},
	{Code: "1-23000", Name: "Akumulasi Penyusutan Kendaraan"},
	{Code: "1-23100", Name: "Akumulasi Penyusutan Kandang"},
	{Code: "1-23200", Name: "Akumulasi Penyusutan Peralatan"},
	{Code: "2-10000", Name: "Utang Usaha"},
	{Code: "2-20000", Name: "Utang Bank"},
	{Code: "2-30000", Name: "Pendapatan Diterima di Muka"},
	{Code: "2-31000", Name: "Utang Gaji"},
	{Code: "3-30000", Name: "Modal"},
	{Code: "3-40000", Name: "Prive"},
	{Code: "4-40000", Name: "Pendapatan"},
	{Code: "5-50000", Name: "Harga Pokok Penjualan"},
	{Code: "6-60000", Name: "Beban Pakan"},
	{Code: "6-60100", Name: "Beban Listrik dan Air"},
	{Code: "6-60200", Name: "Beban Gaji"},
	{Code: "6-60300", Name: "Beban Lain-lain"},
	{Code: "6-60400", Name: "Beban Penyusutan Kendaraan"},
	{Code: "6-60500", Name: "Beban Penyusutan Kandang"},
	{Code: "6-60600", Name: "Beban Penyusutan Peralatan"},
	{Code: "6-60700", Name: "Beban Perlengkapan"},
}

// Chart is an immutable registry of accounts keyed by code.
type Chart struct {
	byCode map[string]domain.Account
	codes  []string
}

// New builds a chart from accounts, deriving each category from the code's first digit.
func New(accounts []domain.Account) (*Chart, error) {
	c := &Chart{byCode: make(map[string]domain.Account, len(accounts))}
	for _, a := range accounts {
		if !ValidCode(a.Code) {
			return nil, fmt.Errorf("%w: account code %q must look like 1-10000", apperrors.ErrValidation, a.Code)
		}
		if _, dup := c.byCode[a.Code]; dup {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, a.Code)
		}
		cat, ok := domain.CategoryForDigit(a.Code[0])
		if !ok {
			return nil, fmt.Errorf("%w: account code %q must start with a digit from 1 to 6", apperrors.ErrValidation, a.Code)
		}
		a.Category = cat
		c.byCode[a.Code] = a
		c.codes = append(c.codes, a.Code)
	}
	sort.Strings(c.codes)
	return c, nil
}

// Default returns the chart used by the livestock business.
func Default() *Chart {
	c, err := New(defaultAccounts)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the account for code.
func (c *Chart) Lookup(code string) (domain.Account, error) {
	a, ok := c.byCode[code]
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, code)
	}
	return a, nil
}

// Classify returns the category of code.
func (c *Chart) Classify(code string) (domain.Category, error) {
	a, err := c.Lookup(code)
	if err != nil {
		return "", err
	}
	return a.Category, nil
}

// Has reports whether code is in the chart.
func (c *Chart) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// AccountsWithPrefix returns the accounts whose code starts with prefix, ordered by code.
// A single digit selects a whole category; longer prefixes such as "1-2" select sub-groups.
func (c *Chart) AccountsWithPrefix(prefix string) []domain.Account {
	var out []domain.Account
	for _, code := range c.codes {
		if strings.HasPrefix(code, prefix) {
			out = append(out, c.byCode[code])
		}
	}
	return out
}

// All returns every account ordered by code.
func (c *Chart) All() []domain.Account {
	return c.AccountsWithPrefix("")
}

var depreciationKeywords = []string{"akumulasi", "penyusutan", "depreciation", "accumulation"}

// IsAccumulatedDepreciation reports whether a fixed-asset account is a contra account,
// matched on its name.
func IsAccumulatedDepreciation(a domain.Account) bool {
	name := strings.ToLower(a.Name)
	for _, kw := range depreciationKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
