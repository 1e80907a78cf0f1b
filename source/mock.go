package source

import (
	"context"
	"time"

	"github.com/finance-tracker/backend/models"
)

// Mock serves a fixed list of transactions until a Plaid integration exists.
type Mock struct{}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetTransactions(_ context.Context) ([]models.Transaction, error) {
	return []models.Transaction{
		{ID: "1", Amount: 20.0, Date: day(2025, time.August, 24), Category: "Food", Description: "Lunch"},
		{ID: "2", Amount: 50.0, Date: day(2025, time.August, 23), Category: "Transport", Description: "Taxi"},
		{ID: "3", Amount: 100.0, Date: day(2025, time.August, 22), Category: "Shopping", Description: "Clothes"},
	}, nil
}

func day(year int, month time.Month, d int) models.Date {
	return models.NewDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}
