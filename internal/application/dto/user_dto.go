package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// RegisterRequest entrada para registro. Contrasena llega en texto y se hashea en el caso de uso.
type RegisterRequest struct {
	TipoDoc         *string     `json:"tipo_doc"`
	IDUsuario       FlexString  `json:"id_usuario" validate:"required"`
	Nombre          string      `json:"nombre" validate:"required"`
	Apellido        string      `json:"apellido" validate:"required"`
	Ciudad          *string     `json:"ciudad"`
	Direccion       *string     `json:"direccion"`
	Telefono        *FlexString `json:"telefono"`
	FechaNacimiento *string     `json:"fecha_nacimiento"` // YYYY-MM-DD
	Email           string      `json:"email" validate:"required"`
	Contrasena      string      `json:"contrasena" validate:"required"`
	IDTipo          *int        `json:"id_tipo"` // por defecto entity.TipoUsuarioTutor
	IDRol           *int        `json:"id_rol"`  // por defecto entity.RolPropietario
}

// UserResponse salida de un usuario (sin contraseña ni digest).
type UserResponse struct {
	IDUsuario       string  `json:"id_usuario"`
	TipoDoc         *string `json:"tipo_doc"`
	Nombre          string  `json:"nombre"`
	Apellido        string  `json:"apellido"`
	Ciudad          *string `json:"ciudad"`
	Direccion       *string `json:"direccion"`
	Telefono        *string `json:"telefono"`
	FechaNacimiento *string `json:"fecha_nacimiento"`
	Email           string  `json:"email"`
	IDTipo          int     `json:"id_tipo"`
	IDRol           int     `json:"id_rol"`
}

// LoginResponse salida de un login correcto.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// RegisterResponse confirmación de registro: solo el documento suministrado.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
