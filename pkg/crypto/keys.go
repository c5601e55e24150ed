package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gtank/cryptopasta"
)

// Keys holds the pair of secrets used to seal ledger blobs at rest:
// one for encryption, one for the HMAC signature.
type Keys struct {
	Encryption string
	Signature  string
}

// NewRandomKeys generates a fresh key pair.
func NewRandomKeys() (*Keys, error) {
	enc, err := randomKey()
	if err != nil {
		return nil, err
	}
	sig, err := randomKey()
	return &Keys{Encryption: enc, Signature: sig}, err
}

func randomKey() (string, error) {
	key := &[33]byte{} // slightly longer than we need to be safe
	_, err := io.ReadFull(rand.Reader, key[:])
	return base64.RawURLEncoding.EncodeToString(key[:]), err
}

// Seal encrypts the given plaintext and appends an HMAC signature,
// returning a single printable string.
func (k *Keys) Seal(plaintext []byte) (string, error) {
	rawkey, err := toKey(k.Encryption)
	if err != nil {
		return "", err
	}
	rawsig, err := toKey(k.Signature)
	if err != nil {
		return "", err
	}

	cyphertext, err := cryptopasta.Encrypt(plaintext, rawkey)
	if err != nil {
		return "", err
	}
	signature := cryptopasta.GenerateHMAC(cyphertext, rawsig)

	return fmt.Sprintf(
		"%s.%s",
		base64.RawURLEncoding.EncodeToString(cyphertext),
		base64.RawURLEncoding.EncodeToString(signature),
	), nil
}

// Open is the inverse of Seal: it checks the HMAC and decrypts,
// failing if the blob was tampered with or sealed under other keys.
func (k *Keys) Open(sealed string) ([]byte, error) {
	rawkey, err := toKey(k.Encryption)
	if err != nil {
		return nil, err
	}
	rawsig, err := toKey(k.Signature)
	if err != nil {
		return nil, err
	}

	bits := strings.SplitN(sealed, ".", 2)
	if len(bits) != 2 {
		return nil, fmt.Errorf("sealed blob invalid")
	}

	cypher, err := base64.RawURLEncoding.DecodeString(bits[0])
	if err != nil {
		return nil, err
	}
	signature, err := base64.RawURLEncoding.DecodeString(bits[1])
	if err != nil {
		return nil, err
	}

	if !cryptopasta.CheckHMAC(cypher, signature, rawsig) {
		return nil, fmt.Errorf("signature validation failed")
	}
	return cryptopasta.Decrypt(cypher, rawkey)
}

// toKey transforms a string of at least len 32 into *[32]byte, as needed
// by the cryptopasta library.
func toKey(s string) (*[32]byte, error) {
	if len(s) < 32 {
		return nil, fmt.Errorf("key too short for encryption/signing operation, want at least 32 chars")
	}
	data := &[32]byte{}
	copy(data[:], []byte(s))
	return data, nil
}
