package sales

import (
	"errors"
	"slices"
	"sync"
)

// ErrNotFound is returned when a sale with the given number is not found.
var ErrNotFound = errors.New("sale not found")

// Storage is the main interface for our ledger storage layer.
type Storage interface {
	Set(ledger []Sale) error
	Read(number string) (Sale, error)
	GetAll() ([]Sale, error)
}

// LocalStorage keeps the loaded ledger in memory, in source order.
type LocalStorage struct {
	mu     sync.RWMutex
	ledger []Sale
	index  map[string]int
}

// NewLocalStorage instantiates a new LocalStorage holding an empty ledger.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		ledger: []Sale{},
		index:  map[string]int{},
	}
}

// Set replaces the stored ledger. The slice is copied.
func (l *LocalStorage) Set(ledger []Sale) error {
	stored := slices.Clone(ledger)
	index := make(map[string]int, len(stored))
	for i, s := range stored {
		// numbers are assumed unique; the first row wins if they are not
		if _, ok := index[s.Number]; !ok {
			index[s.Number] = i
		}
	}

	l.mu.Lock()
	l.ledger = stored
	l.index = index
	l.mu.Unlock()
	return nil
}

// Read retrieves a sale by its number.
// Returns ErrNotFound if the sale is not found.
func (l *LocalStorage) Read(number string) (Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[number]
	if !ok {
		return Sale{}, ErrNotFound
	}
	return l.ledger[i], nil
}

// GetAll returns a copy of the whole ledger in source order.
func (l *LocalStorage) GetAll() ([]Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.ledger), nil
}
