package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (conexión, pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. La unicidad la garantizan las constraints de la tabla.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO usuarios (
			tipo_doc, id_usuario, nombre, apellido, ciudad,
			direccion, telefono, fecha_nacimiento, email,
			contrasena, id_tipo, id_rol
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		u.TipoDoc, u.IDUsuario, u.Nombre, u.Apellido, u.Ciudad,
		u.Direccion, u.Telefono, u.FechaNacimiento, u.Email,
		u.Contrasena, int32(u.IDTipo), int32(u.IDRol),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByEmail obtiene un usuario por email; (nil, nil) si no existe.
// Si hubiera duplicados, la primera fila es la que cuenta.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id_usuario, tipo_doc, nombre, apellido, ciudad, direccion, telefono,
		       fecha_nacimiento, email, contrasena, id_tipo, id_rol
		FROM usuarios WHERE email = $1 LIMIT 1`
	var (
		u         entity.User
		tipo, rol int32
	)
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.IDUsuario, &u.TipoDoc, &u.Nombre, &u.Apellido, &u.Ciudad, &u.Direccion, &u.Telefono,
		&u.FechaNacimiento, &u.Email, &u.Contrasena, &tipo, &rol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	u.IDTipo = entity.TipoUsuario(tipo)
	u.IDRol = entity.Rol(rol)
	return &u, nil
}

// ExistsByEmailOrDocument indica si ya hay un usuario con ese email o ese documento.
func (r *UserRepo) ExistsByEmailOrDocument(ctx context.Context, email, idUsuario string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1 OR id_usuario = $2)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, email, idUsuario).Scan(&exists); err != nil {
		return false, fmt.Errorf("check usuario existente: %w", err)
	}
	return exists, nil
}
