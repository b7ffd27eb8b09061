package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	mapstructureTagNameConstant  = "mapstructure"
	tagOptionSeparatorConstant   = ","
	skippedFieldTagValueConstant = "-"
)

// NewStructValidator returns a validator that reports fields by their configuration key.
func NewStructValidator() *validator.Validate {
	structValidator := validator.New()
	structValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
		tagName := strings.SplitN(field.Tag.Get(mapstructureTagNameConstant), tagOptionSeparatorConstant, 2)[0]
		if tagName == skippedFieldTagValueConstant {
			return ""
		}
		return tagName
	})
	return structValidator
}
