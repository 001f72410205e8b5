package dto

import "github.com/go-playground/validator/v10"

// validate es el validador compartido para todos los DTOs de entrada.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validar aplica las reglas `validate` declaradas en el struct.
func Validar(s interface{}) error {
	return validate.Struct(s)
}
