package handler

import (
	"fmt"
	"net/http"

	"rates-service/internal/usecase"
	"rates-service/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CurrencyHandler struct {
	usecase usecase.CurrencyUsecase
	logger  *logrus.Logger
}

func NewCurrencyHandler(usecase usecase.CurrencyUsecase, logger *logrus.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		usecase: usecase,
		logger:  logger,
	}
}

func requestLocalizer(c *gin.Context) *i18n.Localizer {
	return i18n.ForAcceptLanguage(c.GetHeader("Accept-Language"))
}

func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	loc := requestLocalizer(c)

	currencies, err := h.usecase.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ApiResponse{Success: true, Message: loc.Get("GetSuccess"), Data: currencies})
}

func (h *CurrencyHandler) GetCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	currency, err := h.usecase.GetCurrency(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ApiResponse{Success: true, Message: loc.Get("GetSuccess"), Data: currency})
}

func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid currency body"})
		return
	}

	created, err := h.usecase.CreateCurrency(c.Request.Context(), req.Code, req.ChineseName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/currencies/%s", created.ID))
	c.JSON(http.StatusCreated, ApiResponse{Success: true, Message: loc.Get("CreateSuccess"), Data: created})
}

func (h *CurrencyHandler) UpdateCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{Success: false, Message: "invalid currency body"})
		return
	}

	if err := h.usecase.UpdateCurrency(c.Request.Context(), c.Param("id"), req.Code, req.ChineseName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, ApiResponse{Success: true, Message: loc.Get("UpdateSuccess")})
}

func (h *CurrencyHandler) DeleteCurrency(c *gin.Context) {
	loc := requestLocalizer(c)

	if err := h.usecase.DeleteCurrency(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ApiResponse{Success: true, Message: loc.Get("DeleteSuccess")})
}
