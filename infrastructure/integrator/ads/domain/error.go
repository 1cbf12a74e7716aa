package adsdomain

import "fmt"

// ErrorResponse representa o envelope de erro da plataforma de anúncios.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da plataforma.
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	TraceID      string `json:"fbtrace_id,omitempty"`
}

// Códigos transitórios de rate limit: retentáveis com backoff exponencial.
var transientCodes = map[int]struct{}{
	4:   {}, // application request limit
	17:  {}, // user request limit
	32:  {}, // page request limit
	613: {}, // custom rate limit
}

// IsTokenExpired verifica se o erro é de credencial expirada ou revogada.
// O código 190 representa token expirado; os subcódigos 460, 463 e 467
// cobrem sessões invalidadas.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsTransient verifica se o erro é de rate limit e vale retentar.
func (e *ErrorResponse) IsTransient() bool {
	_, ok := transientCodes[e.Error.Code]
	return ok
}

// TokenExpiredError é a falha tipada de credencial inválida. Nunca é
// retentada: o chamador precisa direcionar o tenant para reautenticação.
type TokenExpiredError struct {
	Code    int
	Subcode int
	Message string
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("token da plataforma de anúncios expirado (code=%d subcode=%d): %s", e.Code, e.Subcode, e.Message)
}

// NewTokenExpiredError constrói a falha tipada a partir do envelope de erro.
func NewTokenExpiredError(resp *ErrorResponse) *TokenExpiredError {
	return &TokenExpiredError{
		Code:    resp.Error.Code,
		Subcode: resp.Error.ErrorSubcode,
		Message: resp.Error.Message,
	}
}
