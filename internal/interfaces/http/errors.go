package http

import "errors"

// Mensajes de respuesta. El de credenciales es el mismo para email desconocido y contraseña incorrecta.
const (
	msgInvalidBody        = "Cuerpo de la petición inválido"
	msgUnavailable        = "Servicio no disponible, intente más tarde"
	msgLoginRequired      = "Email y contraseña son requeridos"
	msgInvalidCredentials = "Credenciales incorrectas"
	msgLoginOK            = "Inicio de sesión exitoso"
	msgLoginFailed        = "Error en el servidor"
	msgRegisterRequired   = "Campos obligatorios faltantes"
	msgAlreadyRegistered  = "El email o documento ya están registrados"
	msgRegisterOK         = "Usuario creado con éxito"
	msgRegisterFailed     = "Error al crear el usuario"
	msgPetRequired        = "Todos los campos son obligatorios"
	msgPetOK              = "Mascota creada correctamente"
	msgPetFailed          = "Error al crear la mascota"
)

// storeErrorCode devuelve el código que expone el almacén (SQLSTATE en PostgreSQL), o "".
func storeErrorCode(err error) string {
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) {
		return coded.SQLState()
	}
	return ""
}
