package web

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fretecheck/fretecheck/internal/core"
	"github.com/fretecheck/fretecheck/internal/logging"
	"github.com/fretecheck/fretecheck/internal/xlsx"
)

// xlsxContentType is the MIME type for XLSX workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// annotatedFileName is the download name of the returned workbook.
const annotatedFileName = "planilha_atualizada.xlsx"

// handleValidate accepts an XLSX rate table via multipart upload, runs the
// validation pipeline, and returns the annotated workbook as an attachment.
//
// Client mistakes (no file, empty filename, wrong extension) are 4xx with a
// JSON error; fatal pipeline errors (wrong column count, wrong column types,
// unreadable workbook) are 5xx carrying the pipeline's message. A table with
// conflicts or malformed cells is not an error: it comes back 200 with the
// problems annotated inline.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, r, http.StatusBadRequest, "no file selected")
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		writeError(w, r, http.StatusBadRequest, "invalid file format, must be .xlsx")
		return
	}

	validationID := uuid.NewString()
	logger := logging.WithFields(r.Context(),
		"validation_id", validationID,
		"file", header.Filename,
	)

	table, err := xlsx.Read(file)
	if err != nil {
		logger.Error("workbook load failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	report, err := core.NewValidator(table).Validate()
	if err != nil {
		logger.Error("validation aborted", "error", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	// Render to a buffer first so export failures can still produce a
	// clean error response.
	var buf bytes.Buffer
	if err := xlsx.Write(&buf, report); err != nil {
		logger.Error("workbook export failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("validation complete",
		"rows", len(report.Table.Rows),
		"error_rows", len(report.ErrorRows),
		"malformed_cells", len(report.MalformedCells),
		"conflicts_checked", report.ConflictsChecked,
	)

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+annotatedFileName+`"`)
	w.Header().Set("X-Validation-Id", validationID)
	_, _ = w.Write(buf.Bytes())
}

// handleHealthz is a liveness probe.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleIndex serves the embedded upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
