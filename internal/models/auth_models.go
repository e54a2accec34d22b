package models

// Roles as issued by the users service inside the access token.
const (
	RolCliente = "cliente"
	RolAdmin   = "admin"
)

// Identity is the user identity derived from decoding the access token.
// It is a display hint only: every privileged call forwards the raw token and
// the owning service verifies it, so nothing here is an authorization decision.
type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"sub"`
	Rol    string `json:"rol"`
	Nombre string `json:"nombre,omitempty"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Rol == RolAdmin
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest mirrors the users service registration payload.
type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Token is the users service login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UsuarioPublico is the public user record returned on registration.
type UsuarioPublico struct {
	ID     int64  `json:"id_usuario"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// PersonaDNI is the national-registry lookup result used to prefill the
// registration form.
type PersonaDNI struct {
	FirstName      string `json:"first_name"`
	FirstLastName  string `json:"first_last_name"`
	SecondLastName string `json:"second_last_name"`
	FullName       string `json:"full_name,omitempty"`
	DocumentNumber string `json:"document_number,omitempty"`
}
