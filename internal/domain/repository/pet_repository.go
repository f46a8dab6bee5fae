package repository

import (
	"context"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

// PetRepository define el puerto de persistencia para Pet.
type PetRepository interface {
	// Create inserta la mascota y devuelve el identificador asignado.
	Create(ctx context.Context, pet *entity.Pet) (int64, error)
}
