package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/JonMunkholm/BatesView/internal/loadfile"
)

func TestMapError_ParserSentinels(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{loadfile.ErrDecode, "LF001"},
		{loadfile.ErrHeaderNotFound, "LF002"},
		{loadfile.ErrEmptyHeader, "LF003"},
		{loadfile.ErrSchemaMismatch, "LF004"},
		{ErrUploadNotFound, "UPL001"},
	}

	for _, tt := range tests {
		// Sentinels are matched through wrapping, not by message text
		wrapped := fmt.Errorf("processing upload: %w", tt.err)
		if got := MapError(wrapped); got.Code != tt.code {
			t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.code)
		}
	}
}

func TestMapError_PatternFallback(t *testing.T) {
	tests := []struct {
		msg  string
		code string
	}{
		{"dial tcp: connection refused", "DB001"},
		{"context deadline exceeded", "DB002"},
		{"http: request body too large", "FILE001"},
		{"no file provided", "FILE002"},
		{"something inexplicable", "ERR000"},
	}

	for _, tt := range tests {
		if got := MapError(errors.New(tt.msg)); got.Code != tt.code {
			t.Errorf("MapError(%q).Code = %q, want %q", tt.msg, got.Code, tt.code)
		}
	}
}

func TestMapError_AlwaysHasMessageAndAction(t *testing.T) {
	msg := MapError(errors.New("anything"))
	if msg.Message == "" || msg.Action == "" || msg.Code == "" {
		t.Errorf("MapError returned incomplete message: %+v", msg)
	}
}
