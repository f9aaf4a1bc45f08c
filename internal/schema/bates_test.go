package schema

import (
	"testing"

	"github.com/JonMunkholm/BatesView/internal/loadfile"
)

func TestBatesFieldSpecs_MatchCanonicalOrder(t *testing.T) {
	if len(BatesFieldSpecs) != len(loadfile.CanonicalColumns) {
		t.Fatalf("expected %d specs, got %d", len(loadfile.CanonicalColumns), len(BatesFieldSpecs))
	}

	for i, spec := range BatesFieldSpecs {
		if spec.Name != loadfile.CanonicalColumns[i] {
			t.Errorf("spec %d: expected %q, got %q", i, loadfile.CanonicalColumns[i], spec.Name)
		}
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		want FieldType
	}{
		{"Pages", FieldNumeric},
		{"File Size", FieldNumeric},
		{"Date Sent", FieldDate},
		{"MD5 Hash", FieldText},
		{"AC", FieldText}, // synthetic column name
	}

	for _, tt := range tests {
		if got := TypeOf(tt.name); got != tt.want {
			t.Errorf("TypeOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
