package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// pgtype converters for the documents table. Empty or unparseable values
// become NULL rather than failing the insert; load-file metadata is too
// dirty to treat a bad date as fatal.

// dateLayouts covers the date formats seen in production load files.
var dateLayouts = []string{
	"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006",
	"2006-01-02", "2006/01/02",
	"Jan 2, 2006", "2 Jan 2006",
	"20060102",
}

// ToPgText converts a string to pgtype.Text, mapping empty to NULL.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgInt4 converts a non-negative count to pgtype.Int4, mapping empty
// (represented as -1 by callers) to NULL.
func ToPgInt4(i int) pgtype.Int4 {
	if i < 0 {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(i), Valid: true}
}

// ToPgDate parses a load-file date string into pgtype.Date.
func ToPgDate(s string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}
	return pgtype.Date{Valid: false}
}

// ToPgUUID converts a string to pgtype.UUID.
func ToPgUUID(s string) pgtype.UUID {
	if s == "" {
		return pgtype.UUID{Valid: false}
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}
}

// PgUUIDToString converts a pgtype.UUID to its string representation.
// Returns empty string if the UUID is invalid.
func PgUUIDToString(u pgtype.UUID) string {
	if !u.Valid {
		return ""
	}
	return uuid.UUID(u.Bytes).String()
}
