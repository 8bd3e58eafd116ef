package utils

import (
	"time"
)

// ParseDate converte uma data no formato AAAA-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// FormatDay formata apenas a parte de data de um timestamp
func FormatDay(date time.Time) string {
	return date.Format(time.DateOnly)
}

// EqualDate verifica se duas datas representam o mesmo dia,
// ignorando o horário
func EqualDate(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}
