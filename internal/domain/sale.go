package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord representa uma venda registrada no livro-razão. O
// identificador e o timestamp são atribuídos no momento do registro e
// nunca mudam depois disso.
type SaleRecord struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}
