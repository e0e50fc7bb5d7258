package router

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// RegisterValidations installs custom binding rules on gin's validator engine.
// Safe to call more than once.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("money_positive", validateMoneyPositive)
}

func validateMoneyPositive(fl validator.FieldLevel) bool {
	money, ok := fl.Field().Interface().(valueobject.Money)
	if !ok {
		return false
	}
	return money.IsPositive()
}
