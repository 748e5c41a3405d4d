package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"rates-service/internal/apperr"
	"rates-service/internal/entity"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSecureUsecase struct {
	mock.Mock
}

func (m *mockSecureUsecase) GetDecryptedCurrency(ctx context.Context, id string) (*entity.PlainCurrency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlainCurrency), args.Error(1)
}

func (m *mockSecureUsecase) CreateEncryptedCurrency(ctx context.Context, code, chineseName string) (*entity.EncryptedCurrency, error) {
	args := m.Called(ctx, code, chineseName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EncryptedCurrency), args.Error(1)
}

func (m *mockSecureUsecase) UpdateEncryptedCurrency(ctx context.Context, id, code, chineseName string) error {
	args := m.Called(ctx, id, code, chineseName)
	return args.Error(0)
}

func setupSecureHandler() (*SecureCurrencyHandler, *mockSecureUsecase) {
	mockUsecase := new(mockSecureUsecase)
	logger, _ := test.NewNullLogger()
	return NewSecureCurrencyHandler(mockUsecase, logger), mockUsecase
}

func TestGetDecryptedCurrency_OK(t *testing.T) {
	handler, mockUsecase := setupSecureHandler()

	mockUsecase.On("GetDecryptedCurrency", mock.Anything, "abc-123").
		Return(&entity.PlainCurrency{ID: "abc-123", Code: "USD", ChineseName: "美元"}, nil)

	c, w := testContext(t, http.MethodGet, "/api/secure/currencies/abc-123", nil)
	c.Params = append(c.Params, paramID("abc-123"))
	handler.GetDecryptedCurrency(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "美元")
}

func TestGetDecryptedCurrency_NotEncryptedMapped(t *testing.T) {
	handler, mockUsecase := setupSecureHandler()

	mockUsecase.On("GetDecryptedCurrency", mock.Anything, "abc-123").
		Return(nil, apperr.New(http.StatusBadRequest, "資料未加密"))

	c, w := testContext(t, http.MethodGet, "/api/secure/currencies/abc-123", nil)
	c.Params = append(c.Params, paramID("abc-123"))
	handler.GetDecryptedCurrency(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "資料未加密", response.Message)
}

func TestGetDecryptedCurrency_DecryptionFailedMapped(t *testing.T) {
	handler, mockUsecase := setupSecureHandler()

	mockUsecase.On("GetDecryptedCurrency", mock.Anything, "abc-123").
		Return(nil, apperr.New(http.StatusBadRequest, "解密失敗"))

	c, w := testContext(t, http.MethodGet, "/api/secure/currencies/abc-123", nil)
	c.Params = append(c.Params, paramID("abc-123"))
	handler.GetDecryptedCurrency(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "解密失敗", response.Message)
}

func TestCreateEncryptedCurrency_Created(t *testing.T) {
	handler, mockUsecase := setupSecureHandler()

	mockUsecase.On("CreateEncryptedCurrency", mock.Anything, "USD", "美元").
		Return(&entity.EncryptedCurrency{ID: "abc-123", Code: "b64cipher=="}, nil)

	body, err := json.Marshal(CurrencyRequest{Code: "USD", ChineseName: "美元"})
	require.NoError(t, err)

	c, w := testContext(t, http.MethodPost, "/api/secure/currencies", body)
	handler.CreateEncryptedCurrency(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/currencies/abc-123", w.Header().Get("Location"))
}

func TestUpdateEncryptedCurrency_Accepted(t *testing.T) {
	handler, mockUsecase := setupSecureHandler()

	mockUsecase.On("UpdateEncryptedCurrency", mock.Anything, "abc-123", "USD", "美金").Return(nil)

	body, err := json.Marshal(CurrencyRequest{Code: "USD", ChineseName: "美金"})
	require.NoError(t, err)

	c, w := testContext(t, http.MethodPut, "/api/secure/currencies/abc-123", body)
	c.Params = append(c.Params, paramID("abc-123"))
	handler.UpdateEncryptedCurrency(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}
