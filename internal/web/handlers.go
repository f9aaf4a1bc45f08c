package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/BatesView/internal/core"
	"github.com/JonMunkholm/BatesView/internal/logging"
)

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}

// handleListUploads returns upload history, most recent first.
func (s *Server) handleListUploads(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 50)

	uploads, err := s.service.ListUploads(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, map[string]any{"uploads": uploads})
}

// handleUploadDetail returns one upload's audit record.
func (s *Server) handleUploadDetail(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")
	if uploadID == "" {
		writeError(w, r, http.StatusBadRequest, "missing upload ID")
		return
	}

	rec, err := s.service.GetUpload(r.Context(), uploadID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, rec)
}

// handleUploadRows returns a page of persisted document rows.
func (s *Server) handleUploadRows(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")
	if uploadID == "" {
		writeError(w, r, http.StatusBadRequest, "missing upload ID")
		return
	}

	limit := parseIntParam(r, "limit", 100)
	offset := parseIntParam(r, "offset", 0)

	// 404 for unknown uploads, not an empty page
	rec, err := s.service.GetUpload(r.Context(), uploadID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	docs, err := s.service.DocumentRows(r.Context(), uploadID, limit, offset)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, r, map[string]any{
		"columns": rec.Columns,
		"rows":    docs,
		"total":   rec.RowCount,
		"offset":  offset,
	})
}

// handleExportCSV streams an upload's full table as a CSV attachment.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")
	if uploadID == "" {
		writeError(w, r, http.StatusBadRequest, "missing upload ID")
		return
	}

	table, err := s.service.UploadTable(r.Context(), uploadID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="parsed_bates_data.csv"`)

	if err := core.WriteCSV(w, table); err != nil {
		// Headers are already sent; all we can do is log.
		logging.FromContext(r.Context()).Error("csv export failed",
			"path", r.URL.Path,
			"upload_id", uploadID,
			"error", err,
		)
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 0 {
		return defaultVal
	}
	return i
}
