package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/application/dto"
	"github.com/jhoicas/mascotas-api/internal/application/pets"
	"github.com/jhoicas/mascotas-api/internal/domain"
	"github.com/jhoicas/mascotas-api/pkg/logger"
)

// PetHandler maneja el alta de mascotas.
type PetHandler struct {
	uc           *pets.PetUseCase
	log          *logger.Logger
	exposeErrors bool
}

// NewPetHandler construye el handler.
func NewPetHandler(uc *pets.PetUseCase, log *logger.Logger, exposeErrors bool) *PetHandler {
	return &PetHandler{uc: uc, log: log.Named("pets"), exposeErrors: exposeErrors}
}

// Create godoc
// @Summary      Crear mascota
// @Tags         pets
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePetRequest  true  "Datos de la mascota"
// @Success      201   {object}  dto.CreatePetResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.MessageResponse
// @Failure      503   {object}  dto.MessageResponse
// @Router       /create [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: msgInvalidBody})
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: msgPetRequired})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
		case errors.Is(err, domain.ErrUnavailable):
			h.log.Warn().Err(err).Str("op", "create_pet").Msg("almacén saturado")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.MessageResponse{Message: msgUnavailable})
		}
		h.log.Error().Err(err).Str("op", "create_pet").Str("code", storeErrorCode(err)).Msg("error al insertar mascota")
		out := dto.MessageResponse{Message: msgPetFailed}
		if h.exposeErrors {
			out.Error = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	h.log.Debug().Int64("id_mascota", id).Msg("mascota creada")
	return c.Status(fiber.StatusCreated).JSON(dto.CreatePetResponse{Success: true, Message: msgPetOK, InsertID: id})
}
