package utils

import (
	"net/mail"
	"strings"
)

// NormalizeEmail deixa o email em minúsculas e sem espaços
func NormalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

// IsValidEmail aceita apenas o endereço puro (sem nome de exibição)
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}
