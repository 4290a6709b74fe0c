package util

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NotBlank rejects string fields made only of whitespace or ASCII
// separator characters.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return NotBlankStr(field.String())
}

func NotBlankStr(str string) bool {
	return strings.TrimFunc(str, isBlank) != ""
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
