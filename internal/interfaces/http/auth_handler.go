package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/application/auth"
	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/pkg/logger"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	log          *logger.Logger
	exposeErrors bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger, exposeErrors bool) *AuthHandler {
	return &AuthHandler{uc: uc, log: log.Named("auth"), exposeErrors: exposeErrors}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "email, contrasena"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.FailureResponse
// @Failure      401   {object}  dto.FailureResponse
// @Failure      500   {object}  dto.FailureResponse
// @Failure      503   {object}  dto.FailureResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{Message: msgInvalidBody})
	}
	user, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{Message: msgLoginRequired})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.FailureResponse{Message: msgInvalidCredentials})
		case errors.Is(err, domain.ErrUnavailable):
			h.log.Warn().Err(err).Str("op", "login").Msg("almacén saturado")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.FailureResponse{Message: msgUnavailable})
		}
		h.log.Error().Err(err).Str("op", "login").Msg("error en login")
		out := dto.FailureResponse{Message: msgLoginFailed}
		if h.exposeErrors {
			out.Error = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	return c.JSON(dto.LoginResponse{Success: true, Message: msgLoginOK, User: *user})
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterRequest  true  "id_usuario, nombre, apellido, email, contrasena (+ opcionales)"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.FailureResponse
// @Failure      409   {object}  dto.FailureResponse
// @Failure      500   {object}  dto.FailureResponse
// @Failure      503   {object}  dto.FailureResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{Message: msgInvalidBody})
	}
	userID, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{Message: msgRegisterRequired})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{Message: err.Error()})
		case errors.Is(err, domain.ErrAlreadyRegistered):
			return c.Status(fiber.StatusConflict).JSON(dto.FailureResponse{Message: msgAlreadyRegistered})
		case errors.Is(err, domain.ErrUnavailable):
			h.log.Warn().Err(err).Str("op", "register").Msg("almacén saturado")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.FailureResponse{Message: msgUnavailable})
		}
		code := storeErrorCode(err)
		h.log.Error().Err(err).Str("op", "register").Str("code", code).Msg("error en registro")
		out := dto.FailureResponse{Message: msgRegisterFailed}
		if h.exposeErrors {
			out.Error = err.Error()
			out.Code = code
		}
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{Success: true, Message: msgRegisterOK, UserID: userID})
}
