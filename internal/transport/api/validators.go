package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

const currencyCodeLength = 3

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateCurrency код валюты ISO 4217: три заглавные латинские буквы.
func validateCurrency(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok || len(str) != currencyCodeLength {
		return false
	}
	for _, r := range str {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
