package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandEnvVars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "just env var",
			input: "${env:KRPC_TEST_HOST}",
			want:  "broker-1",
		},
		{
			name:  "env var as substring",
			input: "${env:KRPC_TEST_HOST}:9092",
			want:  "broker-1:9092",
		},
		{
			name:  "multiple env vars",
			input: "${env:KRPC_TEST_HOST},${env:KRPC_TEST_OTHER}",
			want:  "broker-1,broker-2",
		},
		{
			name:  "default val",
			input: "${env:KRPC_TEST_OTHER|foo}-${env:KRPC_DOES_NOT_EXIST|50051}",
			want:  "broker-2-50051",
		},
		{
			name:  "no env var",
			input: "localhost:9092",
			want:  "localhost:9092",
		},
		{
			name:  "no var name",
			input: "foo-${env:}",
			want:  "foo-${env:}",
		},
		{
			name:  "blank default",
			input: "foo-${env:KRPC_DOES_NOT_EXIST|}",
			want:  "foo-",
		},
		{
			name:  "no default",
			input: "foo-${env:KRPC_DOES_NOT_EXIST}",
			want:  "foo-",
		},
	}

	os.Setenv("KRPC_TEST_HOST", "broker-1")
	os.Setenv("KRPC_TEST_OTHER", "broker-2")
	defer os.Unsetenv("KRPC_TEST_HOST")
	defer os.Unsetenv("KRPC_TEST_OTHER")

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExpandEnvVars(tc.input))
		})
	}
}

func TestHasEnvVar(t *testing.T) {
	require.True(t, HasEnvVar("${env:FOO}"))
	require.True(t, HasEnvVar("left-${env:FOO|bar}"))
	require.False(t, HasEnvVar("foo"))
	require.False(t, HasEnvVar("${msg:key}"))
}
