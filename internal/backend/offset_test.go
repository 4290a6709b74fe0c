package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsoluteOffset(t *testing.T) {
	tests := []struct {
		name    string
		input   int64
		want    int64
		wantErr bool
	}{
		{name: "zero", input: 0, want: 0},
		{name: "positive", input: 42, want: 42},
		{name: "negative", input: -1, wantErr: true},
		{name: "very negative", input: -9000, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, err := AbsoluteOffset(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidOffset)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, o.Value())
		})
	}
}

func TestStreamModeString(t *testing.T) {
	require.Equal(t, "follow", Follow.String())
	require.Equal(t, "until_end", UntilEnd.String())
}
