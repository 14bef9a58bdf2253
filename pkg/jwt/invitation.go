package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// KindInvitation discriminador del tipo de token. Los tokens de invitación
// comparten el secreto HS256 con los de sesión; el claim kind evita que un
// token de otra clase pase la verificación de invitaciones.
const KindInvitation = "invitation"

// InvitationTTL vigencia fija de una invitación desde su emisión.
const InvitationTTL = 24 * time.Hour

// Errores de verificación de tokens de invitación.
var (
	ErrTokenExpired = errors.New("jwt: token expirado")
	ErrTokenInvalid = errors.New("jwt: token inválido")
)

// InvitationPayload datos firmados dentro de un token de invitación.
// Nunca se persiste como fila: el token es el único portador del estado
// "pendiente". CompanyName es un snapshot del nombre al momento de emitir.
type InvitationPayload struct {
	Email       string
	CompanyID   string
	CompanyName string
	InvitedBy   string
}

// InvitationClaims claims JWT de una invitación.
type InvitationClaims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	InvitedBy   string `json:"invited_by"`
	Kind        string `json:"kind"`
}

// GenerateInvitation firma un token de invitación con vigencia de 24 horas.
func GenerateInvitation(secret string, payload InvitationPayload) (string, error) {
	if secret == "" {
		return "", errors.New("jwt: secret vacío")
	}
	now := time.Now()
	claims := InvitationClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(InvitationTTL)),
		},
		Email:       payload.Email,
		CompanyID:   payload.CompanyID,
		CompanyName: payload.CompanyName,
		InvitedBy:   payload.InvitedBy,
		Kind:        KindInvitation,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseInvitation verifica firma, expiración y discriminador kind.
// Distingue expiración (ErrTokenExpired) de cualquier otro fallo
// (ErrTokenInvalid): firma incorrecta, estructura malformada o kind distinto
// de "invitation".
func ParseInvitation(secret, tokenString string) (*InvitationPayload, error) {
	if secret == "" {
		return nil, ErrTokenInvalid
	}
	token, err := jwt.ParseWithClaims(tokenString, &InvitationClaims{}, keyFunc(secret))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*InvitationClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Kind != KindInvitation {
		return nil, ErrTokenInvalid
	}
	return &InvitationPayload{
		Email:       claims.Email,
		CompanyID:   claims.CompanyID,
		CompanyName: claims.CompanyName,
		InvitedBy:   claims.InvitedBy,
	}, nil
}
