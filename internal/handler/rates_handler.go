package handler

import (
	"net/http"

	"rates-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RatesHandler struct {
	usecase usecase.RatesUsecase
	logger  *logrus.Logger
}

func NewRatesHandler(usecase usecase.RatesUsecase, logger *logrus.Logger) *RatesHandler {
	return &RatesHandler{
		usecase: usecase,
		logger:  logger,
	}
}

func (h *RatesHandler) GetRates(c *gin.Context) {
	rates, err := h.usecase.GetRates(c.Request.Context(), requestLocalizer(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *RatesHandler) GetSignedRates(c *gin.Context) {
	signed, err := h.usecase.GetSignedRates(c.Request.Context(), requestLocalizer(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, signed)
}

func (h *RatesHandler) VerifyRates(c *gin.Context) {
	var req VerifyRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verify request body"})
		return
	}

	if err := h.usecase.VerifyRates(req.Data, req.Signature, requestLocalizer(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}
