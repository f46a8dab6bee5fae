package dto

import "github.com/shopspring/decimal"

// CreatePetRequest entrada para crear una mascota. Edad y Peso son punteros para
// distinguir "no enviado" de cero.
type CreatePetRequest struct {
	Nombre    string           `json:"nombre" validate:"required"`
	Especie   string           `json:"especie" validate:"required"`
	Raza      string           `json:"raza" validate:"required"`
	Edad      *int             `json:"edad" validate:"required"`
	Peso      *decimal.Decimal `json:"peso" validate:"required"`
	IDUsuario FlexString       `json:"id_usuario" validate:"required"`
	Foto      *string          `json:"foto"`
}

// CreatePetResponse salida de creación con el identificador asignado.
type CreatePetResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}
