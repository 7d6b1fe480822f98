package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingLetter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Nome sem a letra A", input: "Bruno", expected: "A"},
		{name: "Primeira ausente depois de A", input: "Ana", expected: "B"},
		{name: "Maiúsculas e acentos são ignorados corretamente", input: "ÁBC", expected: "A"},
		{name: "Pangrama devolve hífen", input: "The quick brown fox jumps over the lazy dog", expected: "-"},
		{name: "Nome vazio devolve A", input: "", expected: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MissingLetter(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		wantErr  bool
	}{
		{name: "Vazio devolve nil", input: "", expected: nil},
		{name: "Formato de data simples", input: "2024-01-02", expected: timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))},
		{name: "RFC3339 descarta o horário", input: "2024-01-02T15:04:05Z", expected: timePtr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))},
		{name: "Formato inválido", input: "02/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDecimalOrZero(t *testing.T) {
	assert.True(t, DecimalOrZero(decimal.NullDecimal{}).IsZero())
	assert.Equal(t, "12.5", DecimalOrZero(decimal.NewNullDecimal(decimal.RequireFromString("12.5"))).String())
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "333.33", RoundMoney(decimal.RequireFromString("333.3333333333")).String())
	assert.Equal(t, "350", RoundMoney(decimal.RequireFromString("350.0000000000")).String())
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))

	tests := []struct {
		email string
		valid bool
	}{
		{"ana@example.com", true},
		{"ana.souza+loja@example.com.br", true},
		{"ana", false},
		{"ana@localhost", false},
		{"Ana <ana@example.com>", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}
