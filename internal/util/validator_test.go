package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestNotBlank(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("notblank", NotBlank))

	type host struct {
		Name string `validate:"notblank"`
	}
	tests := []struct {
		input string
		valid bool
	}{
		{input: "localhost", valid: true},
		{input: " 0.0.0.0 ", valid: true},
		{input: "", valid: false},
		{input: " \t\n", valid: false},
		{input: "\x1c\x1f", valid: false},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			err := v.Struct(host{Name: tc.input})
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestNotBlankStr(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "foo", want: true},
		{input: " foo ", want: true},
		{input: "", want: false},
		{input: "   ", want: false},
		{input: "\x1c\x1d", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.want, NotBlankStr(tc.input))
		})
	}
}
