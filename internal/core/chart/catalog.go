package chart

import (
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/livestock_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ProductAccountMapping resolves the inventory account a product is carried in.
type ProductAccountMapping interface {
	InventoryAccount(productName string) string
}

// PriceList supplies the fixed selling price of a product.
type PriceList interface {
	SellingPrice(productName string) (decimal.Decimal, bool)
}

// CatalogEntry ties a product-name keyword to an inventory account and selling price.
type CatalogEntry struct {
	Keyword      string
	Account      string
	SellingPrice decimal.Decimal
}

type catalogEntryFile struct {
	Keyword      string `yaml:"keyword"`
	Account      string `yaml:"account"`
	SellingPrice string `yaml:"selling_price"`
}

type catalogFile struct {
	DefaultAccount string             `yaml:"default_account"`
	Products       []catalogEntryFile `yaml:"products"`
}

// Catalog matches product names case-insensitively against keywords; the first
// entry whose keyword is contained in the name wins.
type Catalog struct {
	entries        []CatalogEntry
	defaultAccount string
}

// Catalog satisfies both lookups used when posting trades.
var (
	_ ProductAccountMapping = (*Catalog)(nil)
	_ PriceList             = (*Catalog)(nil)
)

// NewCatalog builds a catalog. Entries are matched in the given order.
func NewCatalog(defaultAccount string, entries []CatalogEntry) *Catalog {
	out := make([]CatalogEntry, len(entries))
	for i, e := range entries {
		e.Keyword = strings.ToLower(strings.TrimSpace(e.Keyword))
		out[i] = e
	}
	return &Catalog{entries: out, defaultAccount: defaultAccount}
}

// DefaultCatalog covers the six buffalo categories. More specific keywords come
// first so that "anak kerbau betina" does not fall into an adult bucket.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultInventoryAccount, []CatalogEntry{
		{Keyword: "anak kerbau betina", Account: "1-12500", SellingPrice: decimal.NewFromInt(12_000_000)},
		{Keyword: "anak kerbau jantan", Account: "1-12400", SellingPrice: decimal.NewFromInt(15_000_000)},
		{Keyword: "remaja betina", Account: "1-12300", SellingPrice: decimal.NewFromInt(17_000_000)},
		{Keyword: "remaja jantan", Account: "1-12200", SellingPrice: decimal.NewFromInt(20_000_000)},
		{Keyword: "dewasa betina", Account: "1-12100", SellingPrice: decimal.NewFromInt(27_000_000)},
		{Keyword: "dewasa jantan", Account: "1-12000", SellingPrice: decimal.NewFromInt(30_000_000)},
	})
}

func (c *Catalog) match(productName string) (CatalogEntry, bool) {
	name := strings.ToLower(productName)
	for _, e := range c.entries {
		if e.Keyword != "" && strings.Contains(name, e.Keyword) {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// InventoryAccount returns the account of the first matching entry, or the default account.
func (c *Catalog) InventoryAccount(productName string) string {
	if e, ok := c.match(productName); ok {
		return e.Account
	}
	return c.defaultAccount
}

// SellingPrice returns the listed price of the first matching entry.
func (c *Catalog) SellingPrice(productName string) (decimal.Decimal, bool) {
	e, ok := c.match(productName)
	if !ok || !e.SellingPrice.IsPositive() {
		return decimal.Zero, false
	}
	return e.SellingPrice, true
}

// Entries returns the catalog entries in match order.
func (c *Catalog) Entries() []CatalogEntry {
	return append([]CatalogEntry(nil), c.entries...)
}

// Validate checks every account referenced by the catalog against the chart.
func (c *Catalog) Validate(ch *Chart) error {
	if _, err := ch.Lookup(c.defaultAccount); err != nil {
		return fmt.Errorf("catalog default account: %w", err)
	}
	for _, e := range c.entries {
		if _, err := ch.Lookup(e.Account); err != nil {
			return fmt.Errorf("catalog keyword %q: %w", e.Keyword, err)
		}
	}
	return nil
}

// ParseCatalog decodes a YAML catalog:
//
//	default_account: 1-12000
//	products:
//	  - keyword: anak kerbau betina
//	    account: 1-12500
//	    selling_price: "12000000"
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %v", apperrors.ErrValidation, err)
	}
	if f.DefaultAccount == "" {
		f.DefaultAccount = DefaultInventoryAccount
	}
	entries := make([]CatalogEntry, 0, len(f.Products))
	for _, p := range f.Products {
		e := CatalogEntry{Keyword: p.Keyword, Account: p.Account}
		if p.SellingPrice != "" {
			price, err := decimal.NewFromString(p.SellingPrice)
			if err != nil {
				return nil, fmt.Errorf("%w: selling price of %q: %v", apperrors.ErrValidation, p.Keyword, err)
			}
			e.SellingPrice = price
		}
		entries = append(entries, e)
	}
	return NewCatalog(f.DefaultAccount, entries), nil
}

// LoadCatalog reads a YAML catalog file. An empty path yields the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}
