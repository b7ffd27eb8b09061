package utils_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/temirov/brandbot/internal/utils"
)

type validatedFixture struct {
	DisplayName string `mapstructure:"display_name,omitempty" validate:"required"`
	Internal    string `mapstructure:"-" validate:"required"`
	Untagged    string `validate:"required"`
}

func TestStructValidatorReportsConfigurationKeys(testInstance *testing.T) {
	validationError := utils.NewStructValidator().Struct(validatedFixture{})
	require.Error(testInstance, validationError)

	var fieldErrors validator.ValidationErrors
	require.True(testInstance, errors.As(validationError, &fieldErrors))

	fieldNames := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		fieldNames = append(fieldNames, fieldError.Field())
	}
	require.Equal(testInstance, []string{"display_name", "Internal", "Untagged"}, fieldNames)
}

func TestStructValidatorAcceptsCompleteStruct(testInstance *testing.T) {
	require.NoError(testInstance, utils.NewStructValidator().Struct(validatedFixture{DisplayName: "a", Internal: "b", Untagged: "c"}))
}
