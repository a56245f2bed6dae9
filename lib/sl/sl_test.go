package sl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecret(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "?"},
		{"short", "sk-1", "***"},
		{"exactly five", "sk-12", "***"},
		{"long key", "sk-proj-abcdef", "sk-pr***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Secret(tt.in)
			assert.Equal(t, "secret", attr.Key)
			assert.Equal(t, tt.want, attr.Value.String())
		})
	}
}

func TestErrAndModule(t *testing.T) {
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
	assert.Equal(t, "mod", Module("http").Key)
	assert.Equal(t, "abc", RequestID("abc").Value.String())
}
