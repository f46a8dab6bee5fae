package entity

import "time"

// TipoUsuario clasifica la cuenta (id_tipo).
type TipoUsuario int

// Rol nivel de acceso almacenado con el usuario (id_rol). No se aplica autorización con él.
type Rol int

// Valores asignados cuando el registro no los indica.
const (
	TipoUsuarioTutor TipoUsuario = 1 // invitado / tutor
	RolPropietario   Rol         = 3 // propietario de mascotas
)

// User representa un usuario registrado (tabla usuarios).
// IDUsuario es el documento de identidad suministrado por el cliente.
type User struct {
	IDUsuario       string
	TipoDoc         *string
	Nombre          string
	Apellido        string
	Ciudad          *string
	Direccion       *string
	Telefono        *string
	FechaNacimiento *time.Time
	Email           string
	Contrasena      string `json:"-"` // digest bcrypt; nunca texto plano ni serializado
	IDTipo          TipoUsuario
	IDRol           Rol
}
