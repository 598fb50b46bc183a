package state

import (
	"sort"
	"strings"
	"time"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// DefaultCategory is used for transactions entered without a category.
const DefaultCategory = "Other"

// Summary totals the ledger.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
	Count   int     `json:"count"`
}

// CategoryTotal is the sum of one category's transactions.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Transactions returns the ledger in entry order.
func (a *Aggregator) Transactions() ([]*model.Transaction, error) {
	return a.ledger.List()
}

// SetTransactions replaces the whole ledger.
func (a *Aggregator) SetTransactions(txns []model.Transaction) error {
	return a.ledger.Replace(pointers(txns))
}

// AddTransaction records an income or expense entry. The amount must be
// positive and the description non-blank; a blank category becomes "Other".
// Adding from the income or expense modal closes it.
func (a *Aggregator) AddTransaction(t model.Transaction) (*model.Transaction, error) {
	t.Description = strings.TrimSpace(validate.StripControlChars(t.Description))
	if err := validate.NonEmpty("description", t.Description); err != nil {
		return nil, err
	}
	if t.Amount <= 0 {
		return nil, errors.NewUserErrorFor(errors.ErrInvalidAmount,
			"Amount must be positive", "Enter an amount above zero")
	}
	if t.Type != model.TransactionIncome && t.Type != model.TransactionExpense {
		return nil, errors.NewUserErrorWithField("type", string(t.Type),
			"Unknown transaction type", "Use income or expense")
	}
	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	t.ID = ""

	stored, err := a.ledger.Append(&t)
	if err != nil {
		return nil, errors.WithContext(err, "add transaction")
	}
	if t.Type == model.TransactionIncome {
		a.closeModal(ModalIncome)
	} else {
		a.closeModal(ModalExpense)
	}
	return stored, nil
}

// DeleteTransaction removes a ledger entry, clearing the selection if it
// pointed at it.
func (a *Aggregator) DeleteTransaction(id string) error {
	if err := a.ledger.Remove(id); err != nil {
		return errors.WithContextf(err, "delete transaction %s", id)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.selected != nil && a.selected.ID == id {
		a.selected = nil
		if a.modal.Kind == ModalTransactionDetail {
			a.modal = ActiveModal{}
		}
	}
	return nil
}

// SelectedTransaction returns the selected transaction, nil when none.
func (a *Aggregator) SelectedTransaction() *model.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.selected == nil {
		return nil
	}
	t := *a.selected
	return &t
}

// SetSelectedTransaction replaces the selected transaction; nil clears it.
func (a *Aggregator) SetSelectedTransaction(t *model.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if t == nil {
		a.selected = nil
		return
	}
	cp := *t
	a.selected = &cp
}

// ShowTransaction selects the ledger entry with the given id and opens the
// transaction detail modal.
func (a *Aggregator) ShowTransaction(id string) error {
	t, err := a.ledger.Get(id)
	if err != nil {
		return errors.WithContextf(err, "transaction %s", id)
	}
	a.setModal(ActiveModal{Kind: ModalTransactionDetail, EntityID: id})
	a.SetSelectedTransaction(t)
	return nil
}

// Summary totals income, expenses and the resulting balance.
func (a *Aggregator) Summary() (Summary, error) {
	txns, err := a.ledger.List()
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	for _, t := range txns {
		switch t.Type {
		case model.TransactionIncome:
			s.Income += t.Amount
		case model.TransactionExpense:
			s.Expense += t.Amount
		}
		s.Balance += t.Signed()
	}
	s.Count = len(txns)
	return s, nil
}

// ByCategory totals transactions of the given type per category, largest
// first.
func (a *Aggregator) ByCategory(typ model.TransactionType) ([]CategoryTotal, error) {
	txns, err := a.ledger.List()
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64)
	for _, t := range txns {
		if t.Type == typ {
			totals[t.Category] += t.Amount
		}
	}
	out := make([]CategoryTotal, 0, len(totals))
	for c, v := range totals {
		out = append(out, CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// Recent returns up to n transactions, newest first.
func (a *Aggregator) Recent(n int) ([]*model.Transaction, error) {
	txns, err := a.ledger.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	if n >= 0 && len(txns) > n {
		txns = txns[:n]
	}
	return txns, nil
}

// sampleLedger returns the demo entries shown on a fresh dashboard.
func sampleLedger(now time.Time) []*model.Transaction {
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	entries := []model.Transaction{
		{Description: "Salary", Amount: 4200, Category: "Salary", Type: model.TransactionIncome, Date: day(14)},
		{Description: "Rent", Amount: 1450, Category: "Housing", Type: model.TransactionExpense, Date: day(13)},
		{Description: "Freelance project", Amount: 850, Category: "Freelance", Type: model.TransactionIncome, Date: day(9)},
		{Description: "Electricity bill", Amount: 92.15, Category: "Utilities", Type: model.TransactionExpense, Date: day(7)},
		{Description: "Groceries", Amount: 186.40, Category: "Food", Type: model.TransactionExpense, Date: day(4)},
		{Description: "Gym membership", Amount: 45, Category: "Health", Type: model.TransactionExpense, Date: day(2)},
		{Description: "Coffee beans", Amount: 18.75, Category: "Food", Type: model.TransactionExpense, Date: day(1)},
	}
	out := make([]*model.Transaction, len(entries))
	for i := range entries {
		t := entries[i]
		t.CreatedAt = t.Date
		out[i] = &t
	}
	return out
}
