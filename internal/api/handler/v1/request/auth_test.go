package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "secret1"},
			wantErr: false,
		},
		{
			name:    "missing username",
			req:     RegisterRequest{Email: "alice@x.com", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Username: "alice", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Username: "alice", Email: "alice@x.com"},
			wantErr: true,
		},
		{
			name:    "email without domain",
			req:     RegisterRequest{Username: "alice", Email: "alice@", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "email without tld",
			req:     RegisterRequest{Username: "alice", Email: "alice@x", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "email with spaces",
			req:     RegisterRequest{Username: "alice", Email: "alice @x.com", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "12345"},
			wantErr: true,
		},
		{
			name:    "password exactly six chars",
			req:     RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "123456"},
			wantErr: false,
		},
		{
			name:    "password exactly 72 bytes",
			req:     RegisterRequest{Username: "alice", Email: "alice@x.com", Password: strings.Repeat("a", 72)},
			wantErr: false,
		},
		{
			name:    "password over 72 bytes",
			req:     RegisterRequest{Username: "alice", Email: "alice@x.com", Password: strings.Repeat("a", 73)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "alice", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "alice"}).Validate())
}
