package utils

import (
	"fmt"
	"time"
)

// ParseDate aceita "2006-01-02" ou RFC3339 e devolve apenas o dia civil, em UTC.
// String vazia devolve nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	incomingDate, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		incomingDate, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("data inválida %q: use o formato AAAA-MM-DD", dateStr)
		}
	}

	date := DateOnly(incomingDate)
	return &date, nil
}

// DateOnly descarta o horário mantendo o dia civil informado
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
