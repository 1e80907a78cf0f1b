package models

type Transaction struct {
	ID          string  `json:"id" example:"1"`
	Amount      float64 `json:"amount" example:"20"`
	Date        Date    `json:"date" swaggertype:"string" example:"2025-08-24T00:00:00"`
	Category    string  `json:"category" example:"Food"`
	Description string  `json:"description" example:"Lunch"`
}
