package config

import (
	"errors"
	"testing"

	"github.com/doeshing/check-cdap/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.Config
		wantErr error
	}{
		{
			name: "valid http",
			cfg:  domain.Config{URI: "http://cdap:11015", TimeoutSeconds: 30},
		},
		{
			name: "valid https with path",
			cfg:  domain.Config{URI: "https://cdap.example.com/gateway", TimeoutSeconds: 1},
		},
		{
			name:    "missing uri",
			cfg:     domain.Config{TimeoutSeconds: 30},
			wantErr: domain.ErrMissingURI,
		},
		{
			name:    "blank uri",
			cfg:     domain.Config{URI: "   ", TimeoutSeconds: 30},
			wantErr: domain.ErrMissingURI,
		},
		{
			name:    "no scheme",
			cfg:     domain.Config{URI: "cdap:11015", TimeoutSeconds: 30},
			wantErr: domain.ErrInvalidURI,
		},
		{
			name:    "ftp scheme",
			cfg:     domain.Config{URI: "ftp://cdap", TimeoutSeconds: 30},
			wantErr: domain.ErrInvalidURI,
		},
		{
			name:    "zero timeout",
			cfg:     domain.Config{URI: "http://cdap:11015"},
			wantErr: domain.ErrInvalidTimeout,
		},
		{
			name:    "negative timeout",
			cfg:     domain.Config{URI: "http://cdap:11015", TimeoutSeconds: -3},
			wantErr: domain.ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
