package ports

import (
	"context"

	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

// StoreFunc trabajo ejecutado con una conexión tomada del pool. Los repositorios
// solo son válidos durante la llamada.
type StoreFunc func(ctx context.Context, users repository.UserRepository, pets repository.PetRepository) error

// StoreRunner define el puerto de adquisición acotada de conexiones.
// Cualquier adaptador (PostgreSQL, memoria, fake de tests) debe:
//   - tomar una conexión antes de llamar fn y devolverla en toda salida, incluso ante pánico;
//   - devolver domain.ErrUnavailable si no puede conceder la conexión a tiempo.
type StoreRunner interface {
	Run(ctx context.Context, fn StoreFunc) error
}
