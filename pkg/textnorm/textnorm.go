// Package textnorm limpia texto de formularios antes de persistirlo.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean recorta espacios y normaliza a NFC, de modo que "José" compuesto y
// descompuesto se almacenen igual.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanPtr como Clean; nil o vacío tras limpiar devuelve nil.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := Clean(*s)
	if c == "" {
		return nil
	}
	return &c
}

// Email recorta y pasa a minúsculas; el email es el identificador de login.
func Email(s string) string {
	return strings.ToLower(Clean(s))
}

// Blank indica si s está vacío o solo tiene espacios.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
