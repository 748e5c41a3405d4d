package security

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	// ErrNotEncrypted means the input failed the base64/alignment pre-check:
	// it was never a ciphertext for this cipher.
	ErrNotEncrypted = errors.New("value is not encrypted")
	// ErrDecryptionFailed means the input decoded as ciphertext but could not
	// be decrypted, typically a wrong key or corrupt data.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// FieldCipher encrypts individual string fields with AES-CBC and a fixed
// key/IV loaded at startup. Confidentiality only: there is no authentication
// tag, and rotating the key invalidates every previously encrypted field.
type FieldCipher struct {
	block cipher.Block
	iv    []byte
}

func NewFieldCipher(key, iv []byte) (*FieldCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create AES cipher: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	return &FieldCipher{block: block, iv: iv}, nil
}

// Encrypt returns the base64 AES-CBC ciphertext of a UTF-8 string.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	encrypted := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(encrypted, padded)
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// Decrypt is the inverse of Encrypt. Inputs that fail the LooksEncrypted
// pre-check report ErrNotEncrypted; aligned ciphertext that does not decrypt
// under the configured key reports ErrDecryptionFailed.
func (c *FieldCipher) Decrypt(ciphertext string) (string, error) {
	raw, ok := decodeCiphertext(ciphertext)
	if !ok {
		return "", ErrNotEncrypted
	}

	decrypted := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(decrypted, raw)

	plaintext, err := pkcs7Unpad(decrypted, aes.BlockSize)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// LooksEncrypted reports whether value parses as base64 of non-empty,
// block-aligned bytes. It is a boundary check for records arriving from
// untyped storage, not proof the value was produced by this cipher.
func (c *FieldCipher) LooksEncrypted(value string) bool {
	_, ok := decodeCiphertext(value)
	return ok
}

func decodeCiphertext(value string) ([]byte, bool) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, false
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return nil, false
	}
	return raw, true
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, errors.New("invalid padding byte")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.New("inconsistent padding")
		}
	}
	return data[:len(data)-padding], nil
}
