package brand

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/temirov/brandbot/internal/utils"
)

const (
	brandIncompleteMessageConstant = "brand configuration incomplete"
	missingFieldsLogFieldConstant  = "missing_fields"
)

// MissingFields lists the configuration keys of required fields that are empty.
func (record Record) MissingFields() []string {
	validationError := utils.NewStructValidator().Struct(record)
	if validationError == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(validationError, &fieldErrors) {
		return nil
	}

	missingFields := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		missingFields = append(missingFields, fieldError.Field())
	}
	return missingFields
}

// Validate reports whether every required field is present. Missing fields are logged as
// a warning and never escalated.
func (record Record) Validate(logger *zap.Logger) bool {
	missingFields := record.MissingFields()
	if len(missingFields) == 0 {
		return true
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Warn(brandIncompleteMessageConstant, zap.Strings(missingFieldsLogFieldConstant, missingFields))
	return false
}
