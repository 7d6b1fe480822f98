package utils

import "github.com/shopspring/decimal"

const moneyPlaces = 2

// RoundMoney arredonda para a precisão da coluna amount (NUMERIC(12,2))
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// DecimalOrZero trata SUM/AVG nulos como zero
func DecimalOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
