package options

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasrewrite/oaserrors"
)

func TestSingleInput(t *testing.T) {
	tests := []struct {
		name    string
		set     []bool
		wantErr string
	}{
		{"exactly one", []bool{false, true, false}, ""},
		{"none", []bool{false, false}, "no input source specified: use file or content (got 0)"},
		{"no sources at all", nil, "got 0"},
		{"two", []bool{true, true}, "use only one of file or content (got 2)"},
		{"three", []bool{true, true, true}, "got 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SingleInput("file or content", tt.set...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
