package usecase

import (
	"context"
	"net/http"
	"testing"

	"rates-service/internal/apperr"
	"rates-service/internal/entity"
	"rates-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCurrencyManager struct {
	mock.Mock
}

func (m *mockCurrencyManager) ListCurrencies(ctx context.Context) ([]service.CurrencyInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CurrencyInfo), args.Error(1)
}

func (m *mockCurrencyManager) GetOneCurrency(ctx context.Context, id string) (*service.CurrencyInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CurrencyInfo), args.Error(1)
}

func (m *mockCurrencyManager) GetRawCurrency(ctx context.Context, id string) (*entity.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Currency), args.Error(1)
}

func (m *mockCurrencyManager) CreateCurrency(ctx context.Context, currency entity.Currency) (*entity.Currency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Currency), args.Error(1)
}

func (m *mockCurrencyManager) UpdateCurrency(ctx context.Context, id string, currency entity.Currency) error {
	args := m.Called(ctx, id, currency)
	return args.Error(0)
}

func (m *mockCurrencyManager) DeleteCurrency(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSecureManager struct {
	mock.Mock
}

func (m *mockSecureManager) GetOneDecrypted(ctx context.Context, id string) (*entity.PlainCurrency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlainCurrency), args.Error(1)
}

func (m *mockSecureManager) CreateEncrypted(ctx context.Context, currency entity.PlainCurrency) (*entity.EncryptedCurrency, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EncryptedCurrency), args.Error(1)
}

func (m *mockSecureManager) UpdateEncrypted(ctx context.Context, id string, currency entity.PlainCurrency) error {
	args := m.Called(ctx, id, currency)
	return args.Error(0)
}

func setupCurrencyUsecase() (*CurrencyInteractor, *mockCurrencyManager, *mockSecureManager) {
	mockManager := new(mockCurrencyManager)
	mockSecure := new(mockSecureManager)
	logger, _ := test.NewNullLogger()
	return NewCurrencyUsecase(mockManager, mockSecure, logger), mockManager, mockSecure
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestCreateCurrency_NormalizesCode(t *testing.T) {
	ctx := context.Background()
	uc, mockManager, _ := setupCurrencyUsecase()

	mockManager.On("CreateCurrency", ctx, entity.Currency{Code: "USD", ChineseName: "美元"}).
		Return(&entity.Currency{ID: "1", Code: "USD", ChineseName: "美元"}, nil)

	created, err := uc.CreateCurrency(ctx, " usd ", "美元")
	require.NoError(t, err)
	assert.Equal(t, "USD", created.Code)

	mockManager.AssertExpectations(t)
}

func TestCreateCurrency_RejectsBadCode(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setupCurrencyUsecase()

	_, err := uc.CreateCurrency(ctx, "US", "美元")
	assertBadRequest(t, err)

	_, err = uc.CreateCurrency(ctx, "USDT", "泰達幣")
	assertBadRequest(t, err)

	_, err = uc.CreateCurrency(ctx, "U5D", "美元")
	assertBadRequest(t, err)
}

func TestGetCurrency_RejectsBadID(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setupCurrencyUsecase()

	_, err := uc.GetCurrency(ctx, "not-a-uuid")
	assertBadRequest(t, err)
}

func TestUpdateCurrency_ValidIDAndCode(t *testing.T) {
	ctx := context.Background()
	uc, mockManager, _ := setupCurrencyUsecase()

	id := uuid.NewString()
	mockManager.On("UpdateCurrency", ctx, id, entity.Currency{Code: "GBP", ChineseName: "英鎊"}).Return(nil)

	err := uc.UpdateCurrency(ctx, id, "gbp", "英鎊")
	assert.NoError(t, err)

	mockManager.AssertExpectations(t)
}

func TestDeleteCurrency_RejectsBadID(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setupCurrencyUsecase()

	err := uc.DeleteCurrency(ctx, "42")
	assertBadRequest(t, err)
}

func TestCreateEncryptedCurrency_Delegates(t *testing.T) {
	ctx := context.Background()
	uc, _, mockSecure := setupCurrencyUsecase()

	expected := &entity.EncryptedCurrency{ID: "1", Code: "ciphertext"}
	mockSecure.On("CreateEncrypted", ctx, entity.PlainCurrency{Code: "USD", ChineseName: "美元"}).
		Return(expected, nil)

	created, err := uc.CreateEncryptedCurrency(ctx, "usd", "美元")
	require.NoError(t, err)
	assert.Equal(t, expected, created)
}

func TestGetDecryptedCurrency_RejectsBadID(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setupCurrencyUsecase()

	_, err := uc.GetDecryptedCurrency(ctx, "nope")
	assertBadRequest(t, err)
}
