package entity

import "github.com/shopspring/decimal"

// Pet representa una mascota (tabla mascotas). ID lo asigna el almacén al insertar.
type Pet struct {
	ID        int64
	Nombre    string
	Especie   string
	Raza      string
	Edad      int             // años
	Peso      decimal.Decimal // kg
	IDUsuario string          // dueño; referencia sin verificación de existencia
	Foto      *string
}
