package utils

import (
	"strings"
	"unicode"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// MissingLetter devolve, em maiúscula, a primeira letra do alfabeto que não aparece no nome.
// Considera apenas a-z; devolve "-" quando o nome contém todas.
func MissingLetter(name string) string {
	seen := make(map[rune]struct{}, len(alphabet))
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			seen[r] = struct{}{}
		}
	}

	for _, letter := range alphabet {
		if _, ok := seen[letter]; !ok {
			return strings.ToUpper(string(letter))
		}
	}

	return "-"
}
