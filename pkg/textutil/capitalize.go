// Package textutil utilidades de normalización de texto para nombres
// de productos, laboratorios y personas.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	mayusculas = cases.Upper(language.Spanish)
	minusculas = cases.Lower(language.Spanish)
)

// CapitalizarPalabras convierte cada palabra a mayúscula inicial con el resto
// en minúsculas ("ácido ACETILSALICÍLICO" -> "Ácido Acetilsalicílico"). Solo se
// capitaliza cuando la palabra empieza con letra: presentaciones como "100mg"
// o "500ml" quedan en minúsculas.
func CapitalizarPalabras(s string) string {
	palabras := strings.Fields(s)
	for i, palabra := range palabras {
		palabra = minusculas.String(palabra)
		if r, tam := utf8.DecodeRuneInString(palabra); unicode.IsLetter(r) {
			palabra = mayusculas.String(palabra[:tam]) + palabra[tam:]
		}
		palabras[i] = palabra
	}
	return strings.Join(palabras, " ")
}
