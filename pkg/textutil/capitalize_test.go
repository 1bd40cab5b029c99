package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casamedica/distribucion-api/pkg/textutil"
)

func TestCapitalizarPalabras(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"paracetamol", "Paracetamol"},
		{"ácido acetilsalicílico", "Ácido Acetilsalicílico"},
		{"LABORATORIOS PISA", "Laboratorios Pisa"},
		{"ácido acetilsalicílico 100mg", "Ácido Acetilsalicílico 100mg"},
		{"ibuprofeno 500MG", "Ibuprofeno 500mg"},
		{"  jarabe para la tos  ", "Jarabe Para La Tos"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, textutil.CapitalizarPalabras(c.in), "entrada: %q", c.in)
	}
}
