package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo implementación de PetRepository sobre PostgreSQL.
type PetRepo struct {
	q Querier
}

// NewPetRepository construye el adaptador. Pasar conexión, pool o tx (Querier).
func NewPetRepository(q Querier) *PetRepo {
	return &PetRepo{q: q}
}

// Create inserta la mascota y devuelve id_mascota.
func (r *PetRepo) Create(ctx context.Context, p *entity.Pet) (int64, error) {
	query := `
		INSERT INTO mascotas (nombre, especie, raza, edad, peso, id_usuario, foto)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_mascota`
	var id int64
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Especie, p.Raza, int32(p.Edad), p.Peso, p.IDUsuario, p.Foto,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert mascota: %w", err)
	}
	p.ID = id
	return id, nil
}
