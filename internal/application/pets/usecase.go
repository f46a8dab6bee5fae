package pets

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
)

// PetUseCase alta de mascotas.
type PetUseCase struct {
	store ports.StoreRunner
}

// NewPetUseCase construye el caso de uso.
func NewPetUseCase(store ports.StoreRunner) *PetUseCase {
	return &PetUseCase{store: store}
}

// Create valida presencia y tipo de los campos, inserta y devuelve el id asignado.
// No verifica que id_usuario exista.
func (uc *PetUseCase) Create(ctx context.Context, in dto.CreatePetRequest) (int64, error) {
	if textnorm.Blank(in.Nombre) || textnorm.Blank(in.Especie) || textnorm.Blank(in.Raza) ||
		in.Edad == nil || in.Peso == nil || textnorm.Blank(in.IDUsuario.String()) {
		return 0, domain.ErrMissingFields
	}
	// Cero es válido (cachorros, pesos redondeados); negativos no.
	if *in.Edad < 0 {
		return 0, fmt.Errorf("%w: edad no puede ser negativa", domain.ErrInvalidInput)
	}
	// La columna edad es INTEGER.
	if *in.Edad > math.MaxInt32 {
		return 0, fmt.Errorf("%w: edad fuera de rango", domain.ErrInvalidInput)
	}
	if in.Peso.IsNegative() {
		return 0, fmt.Errorf("%w: peso no puede ser negativo", domain.ErrInvalidInput)
	}

	pet := &entity.Pet{
		Nombre:    textnorm.Clean(in.Nombre),
		Especie:   textnorm.Clean(in.Especie),
		Raza:      textnorm.Clean(in.Raza),
		Edad:      *in.Edad,
		Peso:      *in.Peso,
		IDUsuario: textnorm.Clean(in.IDUsuario.String()),
		Foto:      textnorm.CleanPtr(in.Foto),
	}

	var id int64
	err := uc.store.Run(ctx, func(ctx context.Context, _ repository.UserRepository, pets repository.PetRepository) error {
		newID, err := pets.Create(ctx, pet)
		if err != nil {
			return err
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
