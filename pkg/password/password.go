// Package password implementa el servicio de credenciales: hash adaptativo con bcrypt
// y verificación que falla cerrada ante digests malformados.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost factor de trabajo usado por el servidor original.
const DefaultCost = 10

// MaxLength bcrypt solo considera los primeros 72 bytes.
const MaxLength = 72

// ErrTooLong la contraseña supera MaxLength bytes.
var ErrTooLong = fmt.Errorf("la contraseña no puede superar %d bytes", MaxLength)

// Hasher genera y verifica digests bcrypt con un costo fijo.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher. Costos fuera de [bcrypt.MinCost, bcrypt.MaxCost] se ajustan al límite.
func NewHasher(cost int) *Hasher {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Cost devuelve el factor de trabajo efectivo.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash devuelve un digest con sal aleatoria; dos llamadas con la misma entrada producen digests distintos.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", ErrTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify indica si plaintext generó digest. Cualquier error (digest vacío o malformado) se trata como no coincidencia.
func (h *Hasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
