package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/domain/repository"
)

func TestStore_UnicidadDeUsuarios(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.Run(ctx, func(ctx context.Context, users repository.UserRepository, _ repository.PetRepository) error {
		require.NoError(t, users.Create(ctx, &entity.User{IDUsuario: "1", Email: "a@x.com"}))

		assert.ErrorIs(t, users.Create(ctx, &entity.User{IDUsuario: "2", Email: "a@x.com"}), domain.ErrAlreadyRegistered)
		assert.ErrorIs(t, users.Create(ctx, &entity.User{IDUsuario: "1", Email: "b@x.com"}), domain.ErrAlreadyRegistered)

		exists, err := users.ExistsByEmailOrDocument(ctx, "otro@x.com", "1")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = users.ExistsByEmailOrDocument(ctx, "otro@x.com", "9")
		require.NoError(t, err)
		assert.False(t, exists)

		u, err := users.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "1", u.IDUsuario)

		u, err = users.FindByEmail(ctx, "nadie@x.com")
		assert.NoError(t, err)
		assert.Nil(t, u)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.CountUsers())
}

func TestStore_IDsDeMascotasIncrementales(t *testing.T) {
	s := NewStore()

	var ids []int64
	for i := 0; i < 3; i++ {
		err := s.Run(context.Background(), func(ctx context.Context, _ repository.UserRepository, pets repository.PetRepository) error {
			id, err := pets.Create(ctx, &entity.Pet{Nombre: "Rex", Peso: decimal.NewFromInt(1)})
			ids = append(ids, id)
			return err
		})
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, 3, s.CountPets())
}

func TestStore_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewStore().Run(ctx, func(context.Context, repository.UserRepository, repository.PetRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
