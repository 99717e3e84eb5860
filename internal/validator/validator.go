// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finanzas/internal/models"
	"finanzas/internal/period"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("override_kind", validateOverrideKind)
		_ = v.RegisterValidation("payment_method", validatePaymentMethod)
		_ = v.RegisterValidation("fund_type", validateFundType)
		_ = v.RegisterValidation("year_month", validateYearMonth)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateOverrideKind(fl validator.FieldLevel) bool {
	return models.OverrideKind(fl.Field().String()).Valid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch models.PaymentMethod(fl.Field().String()) {
	case models.PaymentMethodCash, models.PaymentMethodCard:
		return true
	}
	return false
}

func validateFundType(fl validator.FieldLevel) bool {
	switch models.FundType(fl.Field().String()) {
	case models.FundTypeSalary, models.FundTypeExtra:
		return true
	}
	return false
}

// validateYearMonth accepts "YYYY-MM".
func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := period.ParseMonthKey(fl.Field().String())
	return err == nil
}
