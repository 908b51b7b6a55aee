package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenData campos propios de la aplicación dentro del token.
// RootUserID identifica al tenant dueño de los datos; para un root user
// coincide con UserID. CompanyID y TenantID son alcance adicional.
type TokenData struct {
	UserID     string
	RootUserID string
	CompanyID  string
	TenantID   string
	Role       string // root_user, admin, member, super_admin
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	RootUserID string `json:"root_user_id"`
	CompanyID  string `json:"company_id"`
	TenantID   string `json:"tenant_id"`
	Role       string `json:"role"`
}

// Generate genera un token JWT firmado con los datos del tenant.
func Generate(secret string, data TokenData, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   data.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     data.UserID,
		RootUserID: data.RootUserID,
		CompanyID:  data.CompanyID,
		TenantID:   data.TenantID,
		Role:       data.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los datos del tenant.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (TokenData, error) {
	if secret == "" {
		return TokenData{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return TokenData{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return TokenData{}, fmt.Errorf("claims inválidos")
	}
	return TokenData{
		UserID:     claims.UserID,
		RootUserID: claims.RootUserID,
		CompanyID:  claims.CompanyID,
		TenantID:   claims.TenantID,
		Role:       claims.Role,
	}, nil
}
