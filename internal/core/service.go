package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/BatesView/internal/config"
	"github.com/JonMunkholm/BatesView/internal/loadfile"
	"github.com/JonMunkholm/BatesView/internal/logging"
	"github.com/JonMunkholm/BatesView/internal/schema"
)

// Service coordinates parsing, post-processing, persistence, and queries.
type Service struct {
	pool *pgxpool.Pool
	cfg  *config.Config
}

// NewService creates a Service backed by the given connection pool.
func NewService(pool *pgxpool.Pool, cfg *config.Config) *Service {
	return &Service{pool: pool, cfg: cfg}
}

// ParserOptions builds the immutable parser configuration from app config.
func (s *Service) ParserOptions() loadfile.Options {
	return loadfile.Options{
		Delimiter:           s.cfg.Parser.DelimiterRune(),
		HeaderMarker:        s.cfg.Parser.HeaderMarker,
		UseFixedHeaderNames: s.cfg.Parser.UseFixedHeaderNames,
		StrictWidth:         s.cfg.Parser.StrictWidth,
	}
}

// EnsureSchema creates the tables the service needs if they do not exist.
// Called once at startup.
func (s *Service) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS loadfile_uploads (
    id            UUID PRIMARY KEY,
    filename      TEXT NOT NULL,
    column_count  INT NOT NULL,
    row_count     INT NOT NULL,
    skipped_rows  INT NOT NULL DEFAULT 0,
    columns       JSONB NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bates_documents (
    id           UUID PRIMARY KEY,
    upload_id    UUID NOT NULL REFERENCES loadfile_uploads(id) ON DELETE CASCADE,
    row_number   INT NOT NULL,
    bates_begin  TEXT,
    bates_end    TEXT,
    custodian    TEXT,
    date_sent    DATE,
    pages        INT,
    md5_hash     TEXT,
    native_link  TEXT,
    fields       JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bates_documents_upload
    ON bates_documents (upload_id, row_number);
`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// PreviewLoadFile parses and post-processes a load file without persisting
// anything. Used by the preview endpoint and the load-sample convenience.
func (s *Service) PreviewLoadFile(data []byte) (*loadfile.Table, error) {
	table, err := loadfile.Parse(data, s.ParserOptions())
	if err != nil {
		return nil, err
	}

	table = PruneEmptyColumns(table)
	CoercePages(table)
	return table, nil
}

// ProcessLoadFile parses a load file and persists the result: one audit row
// in loadfile_uploads plus one bates_documents row per record, atomically.
func (s *Service) ProcessLoadFile(ctx context.Context, filename string, data []byte) (*LoadResult, error) {
	logger := logging.WithFields(ctx, "filename", filename, "bytes", len(data))

	table, err := s.PreviewLoadFile(data)
	if err != nil {
		logger.Warn("load file rejected", "error", err)
		return nil, err
	}

	uploadID := uuid.New()
	logger = logger.With("upload_id", uploadID.String())

	columnsJSON, err := json.Marshal(table.Columns)
	if err != nil {
		return nil, fmt.Errorf("encode columns: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	_, err = tx.Exec(ctx, `
		INSERT INTO loadfile_uploads (id, filename, column_count, row_count, skipped_rows, columns)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uploadID, filename, len(table.Columns), len(table.Rows), table.SkippedRows, columnsJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("insert upload: %w", err)
	}

	if err := insertDocuments(ctx, tx, uploadID, table); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	logger.Info("load file processed",
		"columns", len(table.Columns),
		"rows", len(table.Rows),
		"skipped_rows", table.SkippedRows,
	)

	return &LoadResult{
		UploadID:    uploadID.String(),
		Filename:    filename,
		Columns:     table.Columns,
		RowCount:    len(table.Rows),
		SkippedRows: table.SkippedRows,
		NoDataRows:  len(table.Rows) == 0,
	}, nil
}

// insertDocuments writes every table row inside the caller's transaction.
func insertDocuments(ctx context.Context, tx DBTX, uploadID uuid.UUID, table *loadfile.Table) error {
	idx := promotedIndexes(table)

	for i, row := range table.Rows {
		cells := make(map[string]string, len(table.Columns))
		for c, col := range table.Columns {
			cells[col] = row[c]
		}
		fieldsJSON, err := json.Marshal(cells)
		if err != nil {
			return fmt.Errorf("encode row %d: %w", i+1, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO bates_documents
				(id, upload_id, row_number, bates_begin, bates_end, custodian,
				 date_sent, pages, md5_hash, native_link, fields)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			uuid.New(), uploadID, i+1,
			ToPgText(idx.cell(row, idx.batesBegin)),
			ToPgText(idx.cell(row, idx.batesEnd)),
			ToPgText(idx.cell(row, idx.custodian)),
			ToPgDate(idx.cell(row, idx.dateSent)),
			ToPgInt4(pageCount(idx.cell(row, idx.pages))),
			ToPgText(idx.cell(row, idx.md5Hash)),
			ToPgText(idx.cell(row, idx.nativeLink)),
			fieldsJSON,
		)
		if err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}
	return nil
}

// promoted holds the column positions promoted to dedicated database
// columns. A position of -1 means the column is absent from this file.
type promoted struct {
	batesBegin, batesEnd, custodian, dateSent, pages, md5Hash, nativeLink int
}

func promotedIndexes(table *loadfile.Table) promoted {
	return promoted{
		batesBegin: table.ColumnIndex("Bates Begin"),
		batesEnd:   table.ColumnIndex("Bates End"),
		custodian:  table.ColumnIndex("Custodian/Source"),
		dateSent:   table.ColumnIndex("Date Sent"),
		pages:      table.ColumnIndex(schema.PagesColumn),
		md5Hash:    table.ColumnIndex("MD5 Hash"),
		nativeLink: table.ColumnIndex("Native Link"),
	}
}

func (promoted) cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// pageCount parses an already-coerced Pages cell; -1 maps to NULL.
func pageCount(s string) int {
	if s == "" {
		return -1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return -1
	}
	return n
}
