package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSealOpen(t *testing.T) {
	keys, err := NewRandomKeys()
	assert.Nil(t, err)

	sealed, err := keys.Seal([]byte("hello"))
	assert.Nil(t, err)
	assert.NotContains(t, sealed, "hello")

	opened, err := keys.Open(sealed)
	assert.Nil(t, err)
	assert.Equal(t, "hello", string(opened))
}

func TestOpenRejectsTampering(t *testing.T) {
	keys, err := NewRandomKeys()
	assert.Nil(t, err)

	sealed, err := keys.Seal([]byte("hello"))
	assert.Nil(t, err)

	// flip a character in the cyphertext half
	bits := strings.SplitN(sealed, ".", 2)
	flipped := "A" + bits[0][1:]
	if flipped == bits[0] {
		flipped = "B" + bits[0][1:]
	}

	_, err = keys.Open(flipped + "." + bits[1])
	assert.NotNil(t, err)
}

func TestOpenRejectsWrongKeys(t *testing.T) {
	keys, _ := NewRandomKeys()
	other, _ := NewRandomKeys()

	sealed, err := keys.Seal([]byte("hello"))
	assert.Nil(t, err)

	_, err = other.Open(sealed)
	assert.NotNil(t, err)
}

func TestShortKeysRejected(t *testing.T) {
	keys := &Keys{Encryption: "short", Signature: "also-short"}

	_, err := keys.Seal([]byte("hello"))
	assert.NotNil(t, err)
}
