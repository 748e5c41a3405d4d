package security

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEphemeralSigner(t *testing.T) *Signer {
	t.Helper()
	logger, _ := test.NewNullLogger()
	signer, err := NewSigner("", "", logger)
	require.NoError(t, err)
	return signer
}

func generatePEMPair(t *testing.T) (string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, rsaKeySize)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})

	return string(privPEM), string(pubPEM)
}

func TestSigner_Ephemeral_SignVerifyRoundTrip(t *testing.T) {
	signer := newEphemeralSigner(t)
	assert.True(t, signer.Ephemeral())

	payload := []byte(`{"updatedTime":"2022/08/04 04:25:00","rates":[]}`)
	signature, err := signer.Sign(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, signature)

	assert.True(t, signer.Verify(payload, signature))
}

func TestSigner_Verify_TamperedPayload(t *testing.T) {
	signer := newEphemeralSigner(t)

	payload := []byte(`{"updatedTime":"2022/08/04 04:25:00","rates":[]}`)
	signature, err := signer.Sign(payload)
	require.NoError(t, err)

	tampered := []byte(`{"updatedTime":"2022/08/04 04:25:01","rates":[]}`)
	assert.False(t, signer.Verify(tampered, signature))
}

func TestSigner_Verify_MalformedSignature(t *testing.T) {
	signer := newEphemeralSigner(t)
	payload := []byte("payload")

	assert.False(t, signer.Verify(payload, "not base64 at all !!!"))
	assert.False(t, signer.Verify(payload, ""))
	assert.False(t, signer.Verify(payload, "YWJj")) // valid base64, wrong size
}

func TestSigner_ConfiguredKeys(t *testing.T) {
	privPEM, pubPEM := generatePEMPair(t)
	logger, _ := test.NewNullLogger()

	signer, err := NewSigner(privPEM, pubPEM, logger)
	require.NoError(t, err)
	assert.False(t, signer.Ephemeral())

	payload := []byte("configured key payload")
	signature, err := signer.Sign(payload)
	require.NoError(t, err)
	assert.True(t, signer.Verify(payload, signature))

	// a second signer loaded from the same PEM verifies the same signature
	other, err := NewSigner(privPEM, pubPEM, logger)
	require.NoError(t, err)
	assert.True(t, other.Verify(payload, signature))
}

func TestSigner_SignatureNotPortableAcrossKeypairs(t *testing.T) {
	first := newEphemeralSigner(t)
	second := newEphemeralSigner(t)

	payload := []byte("payload")
	signature, err := first.Sign(payload)
	require.NoError(t, err)

	assert.False(t, second.Verify(payload, signature))
}

func TestNewSigner_BadPEM(t *testing.T) {
	logger, _ := test.NewNullLogger()

	_, err := NewSigner("garbage", "garbage", logger)
	assert.Error(t, err)

	privPEM, _ := generatePEMPair(t)
	_, err = NewSigner(privPEM, "-----BEGIN PUBLIC KEY-----\nZ2FyYmFnZQ==\n-----END PUBLIC KEY-----", logger)
	assert.Error(t, err)
}
