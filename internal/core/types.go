// Package core provides the business logic for load-file processing:
// parse, post-process for display, persist, query, and export. It has no
// HTTP dependencies and can be driven by any frontend.
package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// LoadResult summarizes one processed load file.
type LoadResult struct {
	UploadID    string   `json:"uploadId"`
	Filename    string   `json:"filename"`
	Columns     []string `json:"columns"`
	RowCount    int      `json:"rowCount"`
	SkippedRows int      `json:"skippedRows"`

	// NoDataRows marks a successful parse that produced zero records.
	// It is a distinct outcome from a parse failure and is surfaced to the
	// user as "no data rows found", never as an error.
	NoDataRows bool `json:"noDataRows"`
}

// UploadRecord is one row of upload history.
type UploadRecord struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ColumnCount int       `json:"columnCount"`
	RowCount    int       `json:"rowCount"`
	SkippedRows int       `json:"skippedRows"`
	Columns     []string  `json:"columns"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DocumentRow is one persisted record, keyed by column name.
type DocumentRow struct {
	RowNumber int               `json:"rowNumber"`
	Cells     map[string]string `json:"cells"`
}
