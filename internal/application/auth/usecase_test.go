package auth_test

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mascotas-api/internal/application/auth"
	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/internal/domain/entity"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/memory"
	"github.com/jhoicas/mascotas-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// countingRunner cuenta cuántas veces se pide una conexión.
type countingRunner struct {
	inner ports.StoreRunner
	calls int
}

func (c *countingRunner) Run(ctx context.Context, fn ports.StoreFunc) error {
	c.calls++
	return c.inner.Run(ctx, fn)
}

func newUseCase() (*auth.AuthUseCase, *memory.Store, *countingRunner) {
	store := memory.NewStore()
	runner := &countingRunner{inner: store}
	return auth.NewAuthUseCase(runner, password.NewHasher(bcrypt.MinCost)), store, runner
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		IDUsuario:  "1020304050",
		Nombre:     "Ana",
		Apellido:   "Pérez",
		Email:      "ana@correo.com",
		Contrasena: "secreto123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_AplicaValoresPorDefectoYHashea(t *testing.T) {
	uc, store, _ := newUseCase()

	id, err := uc.RegisterUser(context.Background(), validRegister())
	require.NoError(t, err)
	assert.Equal(t, "1020304050", id)

	u, ok := store.User(id)
	require.True(t, ok)
	assert.Equal(t, entity.TipoUsuarioTutor, u.IDTipo)
	assert.Equal(t, entity.RolPropietario, u.IDRol)
	assert.NotEqual(t, "secreto123", u.Contrasena, "nunca se guarda la contraseña en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte("secreto123")))
}

func TestRegisterUser_CamposOpcionales(t *testing.T) {
	uc, store, _ := newUseCase()

	in := validRegister()
	tipoDoc, fecha, ciudad := "CC", "1990-05-17", "  Medellín "
	tipo, rol := 2, 1
	tel := dto.FlexString("3001234567")
	in.TipoDoc, in.FechaNacimiento, in.Ciudad, in.Telefono = &tipoDoc, &fecha, &ciudad, &tel
	in.IDTipo, in.IDRol = &tipo, &rol
	in.Email = "  Ana@Correo.COM "

	_, err := uc.RegisterUser(context.Background(), in)
	require.NoError(t, err)

	u, ok := store.User("1020304050")
	require.True(t, ok)
	assert.Equal(t, "ana@correo.com", u.Email)
	assert.Equal(t, "Medellín", *u.Ciudad)
	assert.Equal(t, "3001234567", *u.Telefono)
	assert.Equal(t, "1990-05-17", u.FechaNacimiento.Format("2006-01-02"))
	assert.Equal(t, entity.TipoUsuario(2), u.IDTipo)
	assert.Equal(t, entity.Rol(1), u.IDRol)
}

func TestRegisterUser_CamposObligatorios(t *testing.T) {
	mutations := map[string]func(*dto.RegisterRequest){
		"sin email":      func(r *dto.RegisterRequest) { r.Email = "" },
		"sin contrasena": func(r *dto.RegisterRequest) { r.Contrasena = "" },
		"sin documento":  func(r *dto.RegisterRequest) { r.IDUsuario = "" },
		"sin nombre":     func(r *dto.RegisterRequest) { r.Nombre = "   " },
		"sin apellido":   func(r *dto.RegisterRequest) { r.Apellido = "" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			uc, store, runner := newUseCase()
			in := validRegister()
			mutate(&in)

			_, err := uc.RegisterUser(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			assert.Zero(t, runner.calls, "la validación no toca el almacén")
			assert.Zero(t, store.CountUsers())
		})
	}
}

func TestRegisterUser_EntradaInvalida(t *testing.T) {
	uc, store, runner := newUseCase()

	in := validRegister()
	fecha := "17/05/1990"
	in.FechaNacimiento = &fecha
	_, err := uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRegister()
	cero := 0
	in.IDRol = &cero
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Fuera del rango de INTEGER.
	in = validRegister()
	grande := math.MaxInt32 + 4
	in.IDTipo = &grande
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRegister()
	in.IDRol = &grande
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validRegister()
	in.Contrasena = strings.Repeat("a", password.MaxLength+1)
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, password.ErrTooLong)

	assert.Zero(t, runner.calls)
	assert.Zero(t, store.CountUsers())
}

func TestRegisterUser_Duplicados(t *testing.T) {
	uc, store, _ := newUseCase()
	_, err := uc.RegisterUser(context.Background(), validRegister())
	require.NoError(t, err)

	mismoEmail := validRegister()
	mismoEmail.IDUsuario = "999"
	_, err = uc.RegisterUser(context.Background(), mismoEmail)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	mismoDocumento := validRegister()
	mismoDocumento.Email = "otra@correo.com"
	_, err = uc.RegisterUser(context.Background(), mismoDocumento)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	assert.Equal(t, 1, store.CountUsers(), "no se crea una segunda fila")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RegistroYLoginCorrecto(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.RegisterUser(context.Background(), validRegister())
	require.NoError(t, err)

	user, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ANA@correo.com", Contrasena: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "1020304050", user.IDUsuario)
	assert.Equal(t, 1, user.IDTipo)
	assert.Equal(t, 3, user.IDRol)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "contrasena")
	assert.NotContains(t, string(raw), "$2a$")
}

func TestLogin_FallosUniformes(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.RegisterUser(context.Background(), validRegister())
	require.NoError(t, err)

	_, errWrong := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@correo.com", Contrasena: "otra"})
	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@correo.com", Contrasena: "secreto123"})

	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestLogin_CamposObligatorios(t *testing.T) {
	uc, _, runner := newUseCase()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "", Contrasena: "x"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	assert.Zero(t, runner.calls)
}

func TestRegisterUser_ContrasenaLargaNoConsultaElAlmacen(t *testing.T) {
	uc, store, runner := newUseCase()
	_, err := uc.RegisterUser(context.Background(), validRegister())
	require.NoError(t, err)
	callsBefore := runner.calls

	// Email ya registrado: la longitud se rechaza antes de comprobar duplicados.
	in := validRegister()
	in.Contrasena = strings.Repeat("a", password.MaxLength+1)
	_, err = uc.RegisterUser(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrAlreadyRegistered)
	assert.Equal(t, callsBefore, runner.calls)
	assert.Equal(t, 1, store.CountUsers())
}
