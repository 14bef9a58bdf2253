package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada caso de uso retorna
// uno de estos sentinelas para condiciones de negocio esperadas; los handlers
// HTTP los traducen a código de estado + ErrorResponse.
var (
	ErrCompanyNotFound   = errors.New("la empresa no existe")
	ErrCompanyInactive   = errors.New("la cuenta de la empresa no está activa")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUserAlreadyExists = errors.New("el usuario ya existe en esta empresa")

	ErrInvalidToken = errors.New("token de invitación inválido")
	ErrExpiredToken = errors.New("la invitación ha expirado")

	ErrOwnerLimitReached = errors.New("se alcanzó el máximo de propietarios por empresa")
	ErrInvalidRole       = errors.New("rol inválido")

	ErrMissingCredentials = errors.New("email y password son requeridos")
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	ErrOwnerAlreadyExists = errors.New("este email ya registró una empresa")
	ErrCompanyEmailExists = errors.New("el email de la empresa ya está registrado")
	ErrLicenseNotFound    = errors.New("licencia inválida")
	ErrNoLicenseAvailable = errors.New("no hay licencia por defecto disponible")
	ErrWeakPassword       = errors.New("el password no cumple la política de seguridad")

	ErrDeliveryFailed = errors.New("no se pudo enviar la invitación")
)
