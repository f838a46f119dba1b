package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one posting to an account. Balance is the running total of
// debit minus credit over the account's entries in Seq order.
type LedgerEntry struct {
	EntryID            string          `json:"entryID"`
	Seq                int64           `json:"seq"`
	TransactionGroupID string          `json:"transactionGroupID"`
	AccountCode        string          `json:"accountCode"`
	Date               time.Time       `json:"date"`
	Description        string          `json:"description"`
	Debit              decimal.Decimal `json:"debit"`
	Credit             decimal.Decimal `json:"credit"`
	Balance            decimal.Decimal `json:"balance"`
}

// AccountLedger is the general ledger page of a single account.
type AccountLedger struct {
	Account        Account         `json:"account"`
	Entries        []LedgerEntry   `json:"entries"`
	EndingBalance  decimal.Decimal `json:"endingBalance"`
	DisplayBalance decimal.Decimal `json:"displayBalance"`
}
