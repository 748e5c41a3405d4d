package handler

import (
	"fmt"
	"net/http"

	"rates-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SecureCurrencyHandler exposes the encrypted-at-rest variant of the
// directory: reads decrypt, writes encrypt.
type SecureCurrencyHandler struct {
	usecase usecase.SecureCurrencyUsecase
	logger  *logrus.Logger
}

func NewSecureCurrencyHandler(usecase usecase.SecureCurrencyUsecase, logger *logrus.Logger) *SecureCurrencyHandler {
	return &SecureCurrencyHandler{
		usecase: usecase,
		logger:  logger,
	}
}

func (h *SecureCurrencyHandler) GetDecryptedCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	currency, err := h.usecase.GetDecryptedCurrency(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ApiResponse{Success: true, Message: loc.Get("GetSuccess"), Data: currency})
}

func (h *SecureCurrencyHandler) CreateEncryptedCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid currency body"})
		return
	}

	created, err := h.usecase.CreateEncryptedCurrency(c.Request.Context(), req.Code, req.ChineseName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/currencies/%s", created.ID))
	c.JSON(http.StatusCreated, ApiResponse{Success: true, Message: loc.Get("CreateSuccess"), Data: created})
}

func (h *SecureCurrencyHandler) UpdateEncryptedCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid currency body"})
		return
	}

	if err := h.usecase.UpdateEncryptedCurrency(c.Request.Context(), c.Param("id"), req.Code, req.ChineseName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, ApiResponse{Success: true, Message: loc.Get("UpdateSuccess")})
}
