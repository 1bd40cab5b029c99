package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// TipoUsuario distingue cliente, médico, representante e interno; Rol solo aplica
// a internos (administrador, almacenista, ejecutivo) para decisiones RBAC sin ir a la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"id_usuario"`
	TipoUsuario string `json:"tipo_usuario"` // "cliente" | "medico" | "representante" | "interno"
	Rol         string `json:"rol,omitempty"`
}

// Generate genera un token JWT firmado que incluye userID, tipoUsuario y rol.
func Generate(secret, userID, tipoUsuario, rol, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      userID,
		TipoUsuario: tipoUsuario,
		Rol:         rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve userID, tipoUsuario y rol.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID, tipoUsuario, rol string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.TipoUsuario, claims.Rol, nil
}
