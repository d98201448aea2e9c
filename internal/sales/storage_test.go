package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SetAndRead(t *testing.T) {
	storage := NewLocalStorage()

	all, err := storage.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	ledger := sampleLedger()
	require.NoError(t, storage.Set(ledger))

	sale, err := storage.Read("3")
	require.NoError(t, err)
	assert.Equal(t, "Ana", sale.Seller)

	_, err = storage.Read("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err = storage.GetAll()
	require.NoError(t, err)
	require.Len(t, all, len(ledger))
	for i := range ledger {
		assert.Equal(t, ledger[i].Number, all[i].Number, "order must be preserved")
	}
}

func TestLocalStorage_DuplicateNumberFirstWins(t *testing.T) {
	storage := NewLocalStorage()
	require.NoError(t, storage.Set([]Sale{
		newSale("1", "Ana", "D", "P", "1", StatusCompleted, july(1)),
		newSale("1", "Bia", "D", "P", "1", StatusCompleted, july(1)),
	}))

	sale, err := storage.Read("1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", sale.Seller)
}

func TestLocalStorage_IsolatedFromCallers(t *testing.T) {
	storage := NewLocalStorage()
	ledger := sampleLedger()
	require.NoError(t, storage.Set(ledger))

	ledger[0].Seller = "changed after Set"
	all, err := storage.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "Ana", all[0].Seller)

	all[0].Seller = "changed after GetAll"
	again, err := storage.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "Ana", again[0].Seller)
}

func TestLocalStorage_SetReplaces(t *testing.T) {
	storage := NewLocalStorage()
	require.NoError(t, storage.Set(sampleLedger()))
	require.NoError(t, storage.Set(nil))

	all, err := storage.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = storage.Read("1")
	assert.ErrorIs(t, err, ErrNotFound)
}
