package helper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText: trim + NFC (acentos digitados como combinação viram um só code point).
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// NormalizeTextPtr devolve nil para nil ou string vazia após normalizar.
func NormalizeTextPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := NormalizeText(*p)
	if s == "" {
		return nil
	}
	return &s
}

// SameStringPtr compara dois *string opcionais (nil só é igual a nil).
func SameStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
