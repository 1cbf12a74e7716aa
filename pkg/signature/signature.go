// Package signature valida a autenticidade e o frescor de webhooks de chat.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// MaxClockSkew é a janela de frescor aceita entre o timestamp assinado e o
// relógio local. Requisições fora da janela são rejeitadas como replay.
const MaxClockSkew = 300 * time.Second

const signatureVersion = "v0"

var (
	ErrMissingSignature = errors.New("signature: cabeçalho de assinatura ausente")
	ErrMissingTimestamp = errors.New("signature: cabeçalho de timestamp ausente")
	ErrStaleTimestamp   = errors.New("signature: timestamp fora da janela de frescor")
	ErrMismatch         = errors.New("signature: assinatura não confere")
)

// Verifier recalcula o HMAC-SHA256 sobre `v0:timestamp:body` e compara com a
// assinatura recebida em tempo constante.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// NewVerifierWithClock permite injetar o relógio em testes.
func NewVerifierWithClock(secret string, now func() time.Time) *Verifier {
	v := NewVerifier(secret)
	v.now = now
	return v
}

// Verify rejeita a requisição quando algum cabeçalho está ausente, quando o
// timestamp está fora da janela de 300s ou quando o HMAC não confere.
// Qualquer falha aqui é rejeição dura: nunca há retry.
func (v *Verifier) Verify(body []byte, providedSignature, providedTimestamp string) error {
	if providedSignature == "" {
		return ErrMissingSignature
	}
	if providedTimestamp == "" {
		return ErrMissingTimestamp
	}

	ts, err := strconv.ParseInt(providedTimestamp, 10, 64)
	if err != nil {
		return errors.Wrap(ErrStaleTimestamp, "timestamp não numérico")
	}

	skew := v.now().Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > MaxClockSkew {
		return ErrStaleTimestamp
	}

	if !hmac.Equal([]byte(v.Sign(body, providedTimestamp)), []byte(providedSignature)) {
		return ErrMismatch
	}

	return nil
}

// Sign calcula a assinatura esperada para um corpo e timestamp. Exposto para
// testes e para clientes internos de verificação.
func (v *Verifier) Sign(body []byte, timestamp string) string {
	base := fmt.Sprintf("%s:%s:%s", signatureVersion, timestamp, body)

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(base))

	return signatureVersion + "=" + hex.EncodeToString(mac.Sum(nil))
}
