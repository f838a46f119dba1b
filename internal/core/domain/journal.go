package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind is the business event a journal transaction was built from.
type EntryKind string

const (
	KindPurchase  EntryKind = "PURCHASE"
	KindSale      EntryKind = "SALE"
	KindGeneral   EntryKind = "GENERAL"
	KindAdjusting EntryKind = "ADJUSTING"
)

// AdjustmentMarker prefixes the description of adjusting entries.
const AdjustmentMarker = "[ADJUSTMENT]"

// JournalLine is one debit or credit of a transaction. Date and Description are
// only set on the first line (LineNo 1) of a group.
type JournalLine struct {
	LineID             string          `json:"lineID"`
	TransactionGroupID string          `json:"transactionGroupID"`
	LineNo             int             `json:"lineNo"`
	Seq                int64           `json:"seq"`
	Kind               EntryKind       `json:"kind"`
	Date               *time.Time      `json:"date,omitempty"`
	Description        string          `json:"description,omitempty"`
	AccountCode        string          `json:"accountCode"`
	Debit              decimal.Decimal `json:"debit"`
	Credit             decimal.Decimal `json:"credit"`
}

// AmountLine is an (account, amount) pair for manual entries.
type AmountLine struct {
	AccountCode string
	Amount      decimal.Decimal
}

// ManualEntry is a general or adjusting journal entry keyed in by hand.
type ManualEntry struct {
	Date        time.Time
	Description string
	Kind        EntryKind
	Debits      []AmountLine
	Credits     []AmountLine
}

// JournalTransaction groups the lines sharing one transaction group id.
type JournalTransaction struct {
	TransactionGroupID string          `json:"transactionGroupID"`
	Kind               EntryKind       `json:"kind"`
	Date               time.Time       `json:"date"`
	Description        string          `json:"description"`
	Lines              []JournalLine   `json:"lines"`
	TotalDebit         decimal.Decimal `json:"totalDebit"`
	TotalCredit        decimal.Decimal `json:"totalCredit"`
}

// GroupJournalLines folds lines into transactions, preserving the order in which
// each group first appears. The header comes from the first line of each group.
func GroupJournalLines(lines []JournalLine) []JournalTransaction {
	index := make(map[string]int)
	var out []JournalTransaction
	for _, l := range lines {
		i, ok := index[l.TransactionGroupID]
		if !ok {
			i = len(out)
			index[l.TransactionGroupID] = i
			out = append(out, JournalTransaction{
				TransactionGroupID: l.TransactionGroupID,
				Kind:               l.Kind,
				TotalDebit:         decimal.Zero,
				TotalCredit:        decimal.Zero,
			})
		}
		tx := &out[i]
		if l.LineNo == 1 {
			if l.Date != nil {
				tx.Date = *l.Date
			}
			tx.Description = l.Description
		}
		tx.Lines = append(tx.Lines, l)
		tx.TotalDebit = tx.TotalDebit.Add(l.Debit)
		tx.TotalCredit = tx.TotalCredit.Add(l.Credit)
	}
	return out
}
