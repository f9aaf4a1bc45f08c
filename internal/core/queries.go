package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JonMunkholm/BatesView/internal/loadfile"
)

// ListUploads returns upload history, most recent first.
func (s *Service) ListUploads(ctx context.Context, limit int) ([]UploadRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, filename, column_count, row_count, skipped_rows, columns, created_at
		FROM loadfile_uploads
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []UploadRecord
	for rows.Next() {
		rec, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, rec)
	}
	return uploads, rows.Err()
}

// GetUpload returns one upload record, or ErrUploadNotFound.
func (s *Service) GetUpload(ctx context.Context, uploadID string) (*UploadRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, filename, column_count, row_count, skipped_rows, columns, created_at
		FROM loadfile_uploads
		WHERE id = $1`, ToPgUUID(uploadID))

	rec, err := scanUpload(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUploadNotFound, uploadID)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DocumentRows returns the persisted records of an upload in row order.
func (s *Service) DocumentRows(ctx context.Context, uploadID string, limit, offset int) ([]DocumentRow, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.pool.Query(ctx, `
		SELECT row_number, fields
		FROM bates_documents
		WHERE upload_id = $1
		ORDER BY row_number
		LIMIT $2 OFFSET $3`, ToPgUUID(uploadID), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentRow
	for rows.Next() {
		var doc DocumentRow
		var fieldsJSON []byte
		if err := rows.Scan(&doc.RowNumber, &fieldsJSON); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal(fieldsJSON, &doc.Cells); err != nil {
			return nil, fmt.Errorf("decode document fields: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UploadTable reconstructs the full parsed table of an upload for export.
// Column order comes from the upload record; each document's cell map is
// projected back onto it.
func (s *Service) UploadTable(ctx context.Context, uploadID string) (*loadfile.Table, error) {
	rec, err := s.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT fields
		FROM bates_documents
		WHERE upload_id = $1
		ORDER BY row_number`, ToPgUUID(uploadID))
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	table := &loadfile.Table{Columns: rec.Columns, SkippedRows: rec.SkippedRows}
	for rows.Next() {
		var fieldsJSON []byte
		if err := rows.Scan(&fieldsJSON); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		var cells map[string]string
		if err := json.Unmarshal(fieldsJSON, &cells); err != nil {
			return nil, fmt.Errorf("decode document fields: %w", err)
		}

		row := make([]string, len(rec.Columns))
		for i, col := range rec.Columns {
			row[i] = cells[col]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, rows.Err()
}

// scanUpload reads one loadfile_uploads row from a pgx.Row or pgx.Rows.
func scanUpload(row pgx.Row) (UploadRecord, error) {
	var rec UploadRecord
	var columnsJSON []byte

	err := row.Scan(&rec.ID, &rec.Filename, &rec.ColumnCount, &rec.RowCount,
		&rec.SkippedRows, &columnsJSON, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scan upload: %w", err)
	}

	if err := json.Unmarshal(columnsJSON, &rec.Columns); err != nil {
		return rec, fmt.Errorf("decode upload columns: %w", err)
	}
	return rec, nil
}
