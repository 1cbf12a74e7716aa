package vault

import "github.com/pkg/errors"

func errInvalidKey(cause error) error {
	return errors.Wrap(cause, "vault: chave de criptografia não é hexadecimal válido")
}

func errInvalidKeySize(got int) error {
	return errors.Errorf("vault: chave de criptografia precisa ter 32 bytes, recebeu %d", got)
}
