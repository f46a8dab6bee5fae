package password_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mascotas-api/pkg/password"
)

func TestHash_NoDeterministaYVerificable(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	d1, err := h.Hash("secreto123")
	require.NoError(t, err)
	d2, err := h.Hash("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, "secreto123", d1, "el digest nunca es el texto plano")
	assert.NotEqual(t, d1, d2, "la sal hace que cada digest sea distinto")
	assert.True(t, h.Verify("secreto123", d1))
	assert.True(t, h.Verify("secreto123", d2))
}

func TestHash_CodificaCosto(t *testing.T) {
	h := password.NewHasher(5)
	d, err := h.Hash("x")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(d))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestVerify_ContrasenaIncorrecta(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)
	d, err := h.Hash("correcta")
	require.NoError(t, err)

	assert.False(t, h.Verify("incorrecta", d))
	assert.False(t, h.Verify("", d))
}

func TestVerify_DigestMalformadoFallaCerrado(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "texto-plano", "$2a$10$corto", strings.Repeat("$", 60)} {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify("texto-plano", digest), "digest %q", digest)
		})
	}
}

func TestHash_DemasiadoLarga(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", password.MaxLength+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, password.ErrTooLong))

	_, err = h.Hash(strings.Repeat("a", password.MaxLength))
	assert.NoError(t, err)
}

func TestNewHasher_AjustaCosto(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, password.NewHasher(1).Cost())
	assert.Equal(t, bcrypt.MaxCost, password.NewHasher(99).Cost())
	assert.Equal(t, password.DefaultCost, password.NewHasher(password.DefaultCost).Cost())
}
