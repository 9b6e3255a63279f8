package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o operador que acessa as rotas administrativas
type Claims struct {
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
