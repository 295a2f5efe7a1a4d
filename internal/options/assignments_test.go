package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/pybake/cli/internal/errors"
)

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    map[string]string
		wantErr bool
	}{
		{name: "none", input: nil, want: map[string]string{}},
		{
			name:  "simple",
			input: []string{"select_travis_ci=n", "full_name=Ada Lovelace"},
			want:  map[string]string{"select_travis_ci": "n", "full_name": "Ada Lovelace"},
		},
		{name: "value with equals", input: []string{"description=a=b"}, want: map[string]string{"description": "a=b"}},
		{name: "empty value", input: []string{"email="}, want: map[string]string{"email": ""}},
		{name: "last wins", input: []string{"version=1", "version=2"}, want: map[string]string{"version": "2"}},
		{name: "key trimmed", input: []string{" version =1"}, want: map[string]string{"version": "1"}},
		{name: "missing equals", input: []string{"select_travis_ci"}, wantErr: true},
		{name: "empty key", input: []string{"=n"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
