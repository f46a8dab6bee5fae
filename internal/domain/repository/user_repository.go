package repository

import (
	"context"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create inserta el usuario; devuelve domain.ErrAlreadyRegistered si viola unicidad de email o documento.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmailOrDocument(ctx context.Context, email, idUsuario string) (bool, error)
}
