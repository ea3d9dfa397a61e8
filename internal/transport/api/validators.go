package api

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxPayoutBytes = 255

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

// validatePayout реквизиты для вывода: непустая строка без управляющих символов.
func validatePayout(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if strings.TrimSpace(str) == "" || len(str) > maxPayoutBytes {
		return false
	}
	return strings.IndexFunc(str, unicode.IsControl) < 0
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("payout", validatePayout); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}

var validatorsOnce sync.Once

func mustRegisterValidators() {
	validatorsOnce.Do(func() {
		if err := registerValidators(); err != nil {
			panic(err)
		}
	})
}
