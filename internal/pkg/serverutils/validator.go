package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request that failed struct validation so the
// error middleware can answer 400 instead of 500.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// ValidateRequest checks the validate tags on a request DTO.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return &ValidationError{message: strings.Join(messages, "; ")}
}
