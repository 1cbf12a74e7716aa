package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Tabo-ecom/Grandline-antigravity-sub003/pkg/metrics"
)

// Marcador de formato do envelope de criptografia. Valores sem esse prefixo
// são tratados como texto puro e devolvidos sem alteração.
const envelopePrefix = "enc:v1:"

// Vault criptografa e descriptografa segredos em repouso usando AES-256-GCM.
// Quando nenhuma chave está configurada o Vault opera em modo degradado:
// Encrypt e Decrypt devolvem o valor sem alteração.
type Vault struct {
	key []byte
}

// New cria um Vault a partir de uma chave hexadecimal de 256 bits. Uma chave
// vazia habilita o modo degradado (texto puro) e registra um aviso na
// inicialização para que o modo nunca passe despercebido.
func New(hexKey string) (*Vault, error) {
	if hexKey == "" {
		logrus.Warn("vault: nenhuma chave de criptografia configurada, segredos serão armazenados em texto puro")
		metrics.VaultEncryptionDisabled.Set(1)
		return &Vault{}, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errInvalidKey(err)
	}
	if len(key) != 32 {
		return nil, errInvalidKeySize(len(key))
	}

	metrics.VaultEncryptionDisabled.Set(0)
	return &Vault{key: key}, nil
}

// Enabled indica se a criptografia está ativa.
func (v *Vault) Enabled() bool {
	return len(v.key) > 0
}

// Encrypt produz um envelope `enc:v1:<nonce>:<ciphertext+tag>` com nonce
// aleatório por chamada. Sem chave configurada devolve o texto original.
func (v *Vault) Encrypt(plaintext string) string {
	if !v.Enabled() || plaintext == "" {
		return plaintext
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		logrus.WithError(err).Error("vault: erro ao inicializar cifra, mantendo valor em texto puro")
		return plaintext
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		logrus.WithError(err).Error("vault: erro ao inicializar GCM, mantendo valor em texto puro")
		return plaintext
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		logrus.WithError(err).Error("vault: erro ao gerar nonce, mantendo valor em texto puro")
		return plaintext
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return envelopePrefix +
		base64.StdEncoding.EncodeToString(nonce) + ":" +
		base64.StdEncoding.EncodeToString(sealed)
}

// Decrypt reverte um envelope produzido por Encrypt. Valores sem o marcador
// de formato são devolvidos sem alteração (compatibilidade com registros
// anteriores à criptografia). Falhas criptográficas também degradam para o
// valor original: quem chama precisa validar o formato do segredo decifrado.
func (v *Vault) Decrypt(value string) string {
	if !strings.HasPrefix(value, envelopePrefix) {
		return value
	}

	if !v.Enabled() {
		logrus.Warn("vault: envelope criptografado encontrado sem chave configurada")
		return value
	}

	parts := strings.SplitN(strings.TrimPrefix(value, envelopePrefix), ":", 2)
	if len(parts) != 2 {
		logrus.Warn("vault: envelope truncado, devolvendo valor armazenado")
		return value
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		logrus.WithError(err).Warn("vault: nonce inválido, devolvendo valor armazenado")
		return value
	}

	sealed, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		logrus.WithError(err).Warn("vault: ciphertext inválido, devolvendo valor armazenado")
		return value
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return value
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return value
	}

	if len(nonce) != gcm.NonceSize() {
		logrus.Warn("vault: tamanho de nonce inesperado, devolvendo valor armazenado")
		return value
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		logrus.Warn("vault: falha ao decifrar envelope (chave errada ou dado corrompido), devolvendo valor armazenado")
		return value
	}

	return string(plaintext)
}

// EncryptFields aplica Encrypt somente aos campos da lista explícita.
// Campos fora da lista nunca são tocados: adicionar um segredo novo exige
// atualizar a lista de quem chama.
func (v *Vault) EncryptFields(obj map[string]string, fields []string) {
	for _, field := range fields {
		if value, ok := obj[field]; ok && value != "" {
			obj[field] = v.Encrypt(value)
		}
	}
}

// DecryptFields aplica Decrypt somente aos campos da lista explícita.
func (v *Vault) DecryptFields(obj map[string]string, fields []string) {
	for _, field := range fields {
		if value, ok := obj[field]; ok && value != "" {
			obj[field] = v.Decrypt(value)
		}
	}
}
