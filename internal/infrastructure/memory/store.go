// Package memory almacén en proceso con el mismo contrato que PostgreSQL (DB_DRIVER=memory).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

var _ ports.StoreRunner = (*Store)(nil)

// Store guarda usuarios y mascotas en mapas. Aplica la misma unicidad que las
// constraints de la tabla usuarios.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string // email -> id_usuario
	pets    []entity.Pet
	nextPet int64
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		byID:    make(map[string]entity.User),
		byEmail: make(map[string]string),
		nextPet: 1,
	}
}

// Run ejecuta fn con repos sobre el almacén. Respeta la cancelación del contexto.
func (s *Store) Run(ctx context.Context, fn ports.StoreFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, userRepo{s}, petRepo{s})
}

// CountUsers número de usuarios almacenados.
func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// CountPets número de mascotas almacenadas.
func (s *Store) CountPets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pets)
}

// User devuelve una copia del usuario con ese documento.
func (s *Store) User(idUsuario string) (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[idUsuario]
	return u, ok
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byID[u.IDUsuario]; ok {
		return domain.ErrAlreadyRegistered
	}
	if _, ok := r.s.byEmail[u.Email]; ok {
		return domain.ErrAlreadyRegistered
	}
	r.s.byID[u.IDUsuario] = *u
	r.s.byEmail[u.Email] = u.IDUsuario
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := r.s.byID[id]
	return &u, nil
}

func (r userRepo) ExistsByEmailOrDocument(_ context.Context, email, idUsuario string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.byEmail[email]; ok {
		return true, nil
	}
	_, ok := r.s.byID[idUsuario]
	return ok, nil
}

type petRepo struct{ s *Store }

func (r petRepo) Create(_ context.Context, p *entity.Pet) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextPet
	r.s.nextPet++
	r.s.pets = append(r.s.pets, *p)
	return p.ID, nil
}

var (
	_ repository.UserRepository = userRepo{}
	_ repository.PetRepository  = petRepo{}
)
