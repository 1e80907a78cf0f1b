package source

import (
	"context"
	"time"

	"github.com/finance-tracker/backend/models"
	"github.com/patrickmn/go-cache"
)

const transactionsKey = "transactions"

// Cached keeps the result of the wrapped source for ttl.
// Errors are not cached.
type Cached struct {
	next  Source
	cache *cache.Cache
}

func NewCached(next Source, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	if v, found := c.cache.Get(transactionsKey); found {
		return clone(v.([]models.Transaction)), nil
	}

	transactions, err := c.next.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(transactionsKey, clone(transactions))
	return transactions, nil
}

// Flush drops the cached result.
func (c *Cached) Flush() {
	c.cache.Flush()
}

func clone(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	return out
}
