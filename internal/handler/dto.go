package handler

import "rates-service/internal/entity"

// ApiResponse is the envelope used by the currency endpoints; the rates
// endpoints return their payloads bare.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type CurrencyRequest struct {
	Code        string `json:"code" binding:"required"`
	ChineseName string `json:"chinese_name" binding:"required"`
}

type VerifyRatesRequest struct {
	Data      entity.RatesResponse `json:"data" binding:"required"`
	Signature string               `json:"signature" binding:"required"`
}
