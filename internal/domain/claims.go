package domain

import "github.com/golang-jwt/jwt/v5"

// Claims carrega a identidade do operador autenticado nas rotas
// administrativas. A autorização por tenant é responsabilidade da camada
// chamadora; aqui só existe o operador do painel.
type Claims struct {
	Email string
	jwt.RegisteredClaims
}
