package core

import (
	"testing"
	"time"
)

func TestToPgText(t *testing.T) {
	if got := ToPgText("  BATES01  "); !got.Valid || got.String != "BATES01" {
		t.Errorf("ToPgText trimmed = %+v", got)
	}
	if got := ToPgText("   "); got.Valid {
		t.Errorf("ToPgText whitespace should be NULL, got %+v", got)
	}
}

func TestToPgInt4(t *testing.T) {
	if got := ToPgInt4(0); !got.Valid || got.Int32 != 0 {
		t.Errorf("ToPgInt4(0) = %+v, want valid zero", got)
	}
	if got := ToPgInt4(12); !got.Valid || got.Int32 != 12 {
		t.Errorf("ToPgInt4(12) = %+v", got)
	}
	if got := ToPgInt4(-1); got.Valid {
		t.Errorf("ToPgInt4(-1) should be NULL, got %+v", got)
	}
}

func TestToPgDate(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  time.Time
	}{
		{"1/2/2006", true, time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2006-01-02", true, time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"Jan 2, 2006", true, time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"20060102", true, time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
	}

	for _, tt := range tests {
		got := ToPgDate(tt.in)
		if got.Valid != tt.valid {
			t.Errorf("ToPgDate(%q).Valid = %v, want %v", tt.in, got.Valid, tt.valid)
			continue
		}
		if tt.valid && !got.Time.Equal(tt.want) {
			t.Errorf("ToPgDate(%q) = %v, want %v", tt.in, got.Time, tt.want)
		}
	}
}

func TestToPgUUID_RoundTrip(t *testing.T) {
	const id = "a2f8f1de-9f2b-4a3c-8f5e-2b6c1a0d9e4f"

	pg := ToPgUUID(id)
	if !pg.Valid {
		t.Fatalf("ToPgUUID(%q) invalid", id)
	}
	if got := PgUUIDToString(pg); got != id {
		t.Errorf("round trip = %q, want %q", got, id)
	}
}

func TestToPgUUID_Invalid(t *testing.T) {
	if ToPgUUID("").Valid {
		t.Error("empty string should be NULL")
	}
	if ToPgUUID("not-a-uuid").Valid {
		t.Error("garbage should be NULL")
	}
}
