package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_NormalizaNFC(t *testing.T) {
	descompuesto := "Jose\u0301"
	compuesto := "Jos\u00e9"

	assert.Equal(t, compuesto, Clean("  "+descompuesto+" "))
}

func TestCleanPtr(t *testing.T) {
	assert.Nil(t, CleanPtr(nil))

	blank := "   "
	assert.Nil(t, CleanPtr(&blank))

	v := " Bogotá "
	got := CleanPtr(&v)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Bogotá", *got)
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "ana@correo.com", Email("  Ana@Correo.COM "))
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(""))
	assert.True(t, Blank(" \t"))
	assert.False(t, Blank("x"))
}
