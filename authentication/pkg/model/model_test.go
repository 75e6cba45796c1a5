package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsValid(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  bool
	}{
		{"valid", Credentials{Pseudo: "alice", Password: "pw"}, true},
		{"no pseudo", Credentials{Password: "pw"}, false},
		{"blank password", Credentials{Pseudo: "alice", Password: "  "}, false},
		{"longest password", Credentials{Pseudo: "alice", Password: strings.Repeat("a", MaxPasswordLength)}, true},
		{"password too long", Credentials{Pseudo: "alice", Password: strings.Repeat("a", MaxPasswordLength+1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.creds.Valid())
		})
	}
}
