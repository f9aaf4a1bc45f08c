package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/BatesView/internal/logging"
)

// noDataWarning is returned alongside a successful result when a load file
// contained a valid header but zero data rows.
const noDataWarning = "no data rows found"

// handleUpload ingests a multipart load file, parses it, and persists the
// result. A file with no data rows is still a success, flagged with a
// warning so the client can surface it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUploadedFile(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Upload.Timeout)
	defer cancel()

	result, err := s.service.ProcessLoadFile(ctx, filename, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := map[string]any{
		"upload_id":    result.UploadID,
		"filename":     result.Filename,
		"columns":      result.Columns,
		"row_count":    result.RowCount,
		"skipped_rows": result.SkippedRows,
	}
	if result.NoDataRows {
		resp["warning"] = noDataWarning
	}
	writeJSON(w, r, resp)
}

// handlePreview parses a multipart load file without persisting anything.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUploadedFile(w, r)
	if !ok {
		return
	}

	table, err := s.service.PreviewLoadFile(data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := map[string]any{
		"filename":     filename,
		"columns":      table.Columns,
		"rows":         table.Rows,
		"row_count":    len(table.Rows),
		"skipped_rows": table.SkippedRows,
	}
	if len(table.Rows) == 0 {
		resp["warning"] = noDataWarning
	}
	writeJSON(w, r, resp)
}

// handleLoadSample processes the configured on-disk sample load file, for
// demos and smoke tests. Disabled when no sample path is configured.
func (s *Server) handleLoadSample(w http.ResponseWriter, r *http.Request) {
	path := s.cfg.Parser.SampleFile
	if path == "" {
		writeError(w, r, http.StatusNotFound, "no sample file configured")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.FromContext(r.Context()).Error("sample file unreadable",
			"path", path,
			"error", err,
		)
		writeError(w, r, http.StatusNotFound, "sample file not available")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Upload.Timeout)
	defer cancel()

	result, err := s.service.ProcessLoadFile(ctx, filepath.Base(path), data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	resp := map[string]any{
		"upload_id":    result.UploadID,
		"filename":     result.Filename,
		"columns":      result.Columns,
		"row_count":    result.RowCount,
		"skipped_rows": result.SkippedRows,
	}
	if result.NoDataRows {
		resp["warning"] = noDataWarning
	}
	writeJSON(w, r, resp)
}

// readUploadedFile extracts the "file" part from a multipart request,
// enforcing the configured size limit. On failure it writes the error
// response and returns ok=false.
func (s *Server) readUploadedFile(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileSize); err != nil {
		if isBodyTooLarge(err) {
			s.respondError(w, r, err)
		} else {
			writeError(w, r, http.StatusBadRequest, "invalid multipart request")
		}
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "no file provided")
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isBodyTooLarge(err) {
			s.respondError(w, r, err)
		} else {
			writeError(w, r, http.StatusBadRequest, "failed to read uploaded file")
		}
		return "", nil, false
	}

	return header.Filename, data, true
}

// isBodyTooLarge reports whether err comes from http.MaxBytesReader.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
