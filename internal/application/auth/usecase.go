package auth

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
	"github.com/jhoicas/mascotas-api/pkg/password"
	"github.com/jhoicas/mascotas-api/pkg/textnorm"
)

const dateLayout = "2006-01-02"

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	store  ports.StoreRunner
	hasher ports.PasswordHasher

	decoyOnce sync.Once
	decoy     string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store ports.StoreRunner, hasher ports.PasswordHasher) *AuthUseCase {
	return &AuthUseCase{store: store, hasher: hasher}
}

// Login verifica email/contraseña y devuelve el usuario sin credencial.
// Email inexistente y contraseña incorrecta devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	if textnorm.Blank(in.Email) || in.Contrasena == "" {
		return nil, domain.ErrMissingFields
	}
	email := textnorm.Email(in.Email)

	var user *entity.User
	err := uc.store.Run(ctx, func(ctx context.Context, users repository.UserRepository, _ repository.PetRepository) error {
		u, err := users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Igualar el costo del camino "email desconocido" al de "contraseña incorrecta".
		uc.hasher.Verify(in.Contrasena, uc.decoyDigest())
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Contrasena, user.Contrasena) {
		return nil, domain.ErrInvalidCredentials
	}
	return toUserResponse(user), nil
}

// RegisterUser valida, comprueba unicidad de email/documento, hashea la contraseña y persiste.
// Devuelve el documento registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (string, error) {
	if textnorm.Blank(in.Email) || in.Contrasena == "" || textnorm.Blank(in.IDUsuario.String()) ||
		textnorm.Blank(in.Nombre) || textnorm.Blank(in.Apellido) {
		return "", domain.ErrMissingFields
	}

	user, err := newUser(in)
	if err != nil {
		return "", err
	}

	err = uc.store.Run(ctx, func(ctx context.Context, users repository.UserRepository, _ repository.PetRepository) error {
		exists, err := users.ExistsByEmailOrDocument(ctx, user.Email, user.IDUsuario)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyRegistered
		}
		digest, err := uc.hasher.Hash(in.Contrasena)
		if err != nil {
			if errors.Is(err, password.ErrTooLong) {
				return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
			}
			return err
		}
		user.Contrasena = digest
		return users.Create(ctx, user)
	})
	if err != nil {
		return "", err
	}
	return user.IDUsuario, nil
}

// newUser construye la entidad con valores por defecto y texto normalizado.
// Solo valida la longitud de la contraseña; el hash se calcula dentro de Run.
func newUser(in dto.RegisterRequest) (*entity.User, error) {
	if len(in.Contrasena) > password.MaxLength {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, password.ErrTooLong)
	}
	user := &entity.User{
		IDUsuario: textnorm.Clean(in.IDUsuario.String()),
		TipoDoc:   textnorm.CleanPtr(in.TipoDoc),
		Nombre:    textnorm.Clean(in.Nombre),
		Apellido:  textnorm.Clean(in.Apellido),
		Ciudad:    textnorm.CleanPtr(in.Ciudad),
		Direccion: textnorm.CleanPtr(in.Direccion),
		Email:     textnorm.Email(in.Email),
		IDTipo:    entity.TipoUsuarioTutor,
		IDRol:     entity.RolPropietario,
	}
	if in.Telefono != nil {
		tel := in.Telefono.String()
		user.Telefono = textnorm.CleanPtr(&tel)
	}
	if in.FechaNacimiento != nil && !textnorm.Blank(*in.FechaNacimiento) {
		t, err := time.Parse(dateLayout, textnorm.Clean(*in.FechaNacimiento))
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_nacimiento debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		user.FechaNacimiento = &t
	}
	if in.IDTipo != nil {
		if *in.IDTipo <= 0 || *in.IDTipo > math.MaxInt32 {
			return nil, fmt.Errorf("%w: id_tipo fuera de rango", domain.ErrInvalidInput)
		}
		user.IDTipo = entity.TipoUsuario(*in.IDTipo)
	}
	if in.IDRol != nil {
		if *in.IDRol <= 0 || *in.IDRol > math.MaxInt32 {
			return nil, fmt.Errorf("%w: id_rol fuera de rango", domain.ErrInvalidInput)
		}
		user.IDRol = entity.Rol(*in.IDRol)
	}
	return user, nil
}

// decoyDigest digest de una contraseña aleatoria, calculado una sola vez.
func (uc *AuthUseCase) decoyDigest() string {
	uc.decoyOnce.Do(func() {
		d, err := uc.hasher.Hash(uuid.NewString())
		if err == nil {
			uc.decoy = d
		}
	})
	return uc.decoy
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		IDUsuario: u.IDUsuario,
		TipoDoc:   u.TipoDoc,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Ciudad:    u.Ciudad,
		Direccion: u.Direccion,
		Telefono:  u.Telefono,
		Email:     u.Email,
		IDTipo:    int(u.IDTipo),
		IDRol:     int(u.IDRol),
	}
	if u.FechaNacimiento != nil {
		f := u.FechaNacimiento.Format(dateLayout)
		out.FechaNacimiento = &f
	}
	return out
}
