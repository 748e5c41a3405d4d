package security

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const rsaKeySize = 2048

// Signer signs and verifies canonical byte payloads with RSA SHA-256
// PKCS#1 v1.5. Key material is loaded once and never mutated, so a single
// Signer is safe for concurrent use.
type Signer struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ephemeral  bool
	logger     *logrus.Logger
}

// NewSigner loads a PEM keypair, or generates an ephemeral one when both PEM
// strings are empty. Ephemeral keys do not survive restarts: previously issued
// signatures stop verifying, so this mode is for non-production use only.
func NewSigner(privatePEM, publicPEM string, logger *logrus.Logger) (*Signer, error) {
	if privatePEM == "" && publicPEM == "" {
		key, err := rsa.GenerateKey(rand.Reader, rsaKeySize)
		if err != nil {
			return nil, fmt.Errorf("generate ephemeral keypair: %w", err)
		}
		logger.Warn("No RSA keys configured, generated ephemeral keypair; signatures will not survive restarts")
		return &Signer{
			privateKey: key,
			publicKey:  &key.PublicKey,
			ephemeral:  true,
			logger:     logger,
		}, nil
	}

	privateKey, err := parsePrivateKey(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parse RSA private key: %w", err)
	}
	publicKey, err := parsePublicKey(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parse RSA public key: %w", err)
	}

	return &Signer{
		privateKey: privateKey,
		publicKey:  publicKey,
		logger:     logger,
	}, nil
}

// Ephemeral reports whether the keypair was generated at startup rather than
// loaded from configuration.
func (s *Signer) Ephemeral() bool {
	return s.ephemeral
}

// Sign returns the base64 PKCS#1 v1.5 signature over data.
func (s *Signer) Sign(data []byte) (string, error) {
	digest := sha256.Sum256(data)
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign data: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify reports whether signature is a valid base64 PKCS#1 v1.5 signature
// over data. Malformed base64, wrong-size input and cryptographic mismatch
// all report false.
func (s *Signer) Verify(data []byte, signature string) bool {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		s.logger.WithError(err).Debug("Signature is not valid base64")
		return false
	}

	digest := sha256.Sum256(data)
	if err := rsa.VerifyPKCS1v15(s.publicKey, crypto.SHA256, digest[:], raw); err != nil {
		return false
	}
	return true
}

func parsePrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("not a PKCS#1 or PKCS#8 key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("PKCS#8 key is not RSA")
	}
	return key, nil
}

func parsePublicKey(pemStr string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("not a PKCS#1 or PKIX key: %w", err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("PKIX key is not RSA")
	}
	return key, nil
}
