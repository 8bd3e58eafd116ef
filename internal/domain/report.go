package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotal agrega as vendas de um único dia
type DailyTotal struct {
	Day      time.Time
	Quantity int
	Total    decimal.Decimal
}

// SalesReport é o resumo das vendas agrupadas por dia, na ordem em que
// cada dia aparece no livro-razão
type SalesReport struct {
	ID           string
	GeneratedAt  time.Time
	TotalRecords int
	Days         []*DailyTotal
}
