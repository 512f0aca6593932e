package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizador descompone, elimina diacríticos y recompone (NFD → quitar Mn → NFC).
var normalizador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNombre devuelve la clave canónica de un nombre: minúsculas, sin
// acentos y sin espacios sobrantes. "José  Pérez" y "jose perez" colisionan.
func NormalizarNombre(nombre string) string {
	sinAcentos, _, err := transform.String(normalizador, nombre)
	if err != nil {
		sinAcentos = nombre
	}
	return strings.Join(strings.Fields(strings.ToLower(sinAcentos)), " ")
}
