package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/model"
)

func TestSampleLedger(t *testing.T) {
	a := newTestAggregator(t, Options{SeedLedger: true})

	s, err := a.Summary()
	require.NoError(t, err)
	assert.Equal(t, 7, s.Count)
	assert.InDelta(t, 5050.0, s.Income, 0.001)
	assert.InDelta(t, 1792.30, s.Expense, 0.001)
	assert.InDelta(t, s.Income-s.Expense, s.Balance, 0.001)

	recent, err := a.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Coffee beans", recent[0].Description)
	assert.Equal(t, "Gym membership", recent[1].Description)

	cats, err := a.ByCategory(model.TransactionExpense)
	require.NoError(t, err)
	require.NotEmpty(t, cats)
	assert.Equal(t, "Housing", cats[0].Category)
}

func TestAddTransaction(t *testing.T) {
	a := newTestAggregator(t, Options{})
	a.OpenModal(ModalExpense)

	_, err := a.AddTransaction(model.Transaction{Description: "x", Amount: 0, Type: model.TransactionExpense})
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
	assert.True(t, a.Flags().ExpenseModal, "failed add keeps the modal open")

	_, err = a.AddTransaction(model.Transaction{Description: " ", Amount: 5, Type: model.TransactionExpense})
	assert.Error(t, err)
	_, err = a.AddTransaction(model.Transaction{Description: "x", Amount: 5, Type: "transfer"})
	assert.Error(t, err)

	txn, err := a.AddTransaction(model.Transaction{Description: "Lunch", Amount: 12.5, Type: model.TransactionExpense})
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, txn.Category)
	assert.False(t, txn.Date.IsZero())
	assert.False(t, a.IsAnyModalOpen())
}

func TestSelectedTransaction(t *testing.T) {
	a := newTestAggregator(t, Options{})
	txn, err := a.AddTransaction(model.Transaction{Description: "Book", Amount: 20, Type: model.TransactionExpense})
	require.NoError(t, err)

	require.NoError(t, a.ShowTransaction(txn.ID))
	assert.True(t, a.Flags().TransactionDetail)
	sel := a.SelectedTransaction()
	require.NotNil(t, sel)
	assert.Equal(t, txn.ID, sel.ID)

	sel.Description = "mutated"
	assert.Equal(t, "Book", a.SelectedTransaction().Description)

	a.CloseModal()
	assert.Nil(t, a.SelectedTransaction())

	a.SetSelectedTransaction(txn)
	require.NoError(t, a.DeleteTransaction(txn.ID))
	assert.Nil(t, a.SelectedTransaction())

	assert.ErrorIs(t, a.ShowTransaction("missing"), errors.ErrNotFound)
}
