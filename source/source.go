package source

import (
	"context"
	"fmt"

	"github.com/finance-tracker/backend/models"
)

const KindMock = "mock"

// Source produces the transactions served by the API.
type Source interface {
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
}

// New returns the source registered under kind.
func New(kind string) (Source, error) {
	switch kind {
	case KindMock, "":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown transaction source %q", kind)
	}
}
