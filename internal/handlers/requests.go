package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator to implement Echo's
// Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ContractListRequest holds the query parameters for the contract list
// partial. The backend's own defaults apply when fields are zero.
type ContractListRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=active expired pending terminated"`
	Skip   int    `query:"skip" validate:"min=0"`
	Limit  int    `query:"limit" validate:"min=0,max=500"`
}

// ForecastRequest holds the query parameters for the renewal forecast
// partial.
type ForecastRequest struct {
	Months int `query:"months" validate:"omitempty,min=1,max=24"`
}
