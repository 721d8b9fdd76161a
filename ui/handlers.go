package ui

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sheetviz/adapters/excel"
	"sheetviz/domain/chart"
	"sheetviz/domain/core"
	"sheetviz/domain/table"
	"sheetviz/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

const sessionCookie = "sheetviz_session"

// session resolves the caller's session from the cookie, creating one
// (and setting the cookie) on first contact.
func (s *Server) session(c *gin.Context) *session.Session {
	var id core.SessionID
	if v, err := c.Cookie(sessionCookie); err == nil {
		if parsed, err := core.ParseSessionID(v); err == nil {
			id = parsed
		}
	}

	sess := s.sessions.GetOrCreate(id)
	if sess.ID() != id {
		c.SetCookie(sessionCookie, sess.ID().String(), 86400, "/", "", false, true)
	}
	return sess
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// selection problems are the user's to correct (422), load and
// missing-table problems are bad requests, the rest is internal.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case core.IsSelectionError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrNoTable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no table loaded - upload a file or load the sample data first"})
	case core.IsLoadError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("[writeError] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// handleIndex serves the single-page UI
func (s *Server) handleIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(c.Writer, "index.html", nil); err != nil {
		s.logger.Error("[handleIndex] template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// handleHelp renders the embedded markdown usage guide
func (s *Server) handleHelp(c *gin.Context) {
	md, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		s.logger.Error("[handleHelp] help.md missing: %v", err)
		c.String(http.StatusInternalServerError, "help not available")
		return
	}
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, string(markdown.ToHTML(md, nil, nil)))
}

// handleUpload replaces the session's table with an uploaded spreadsheet
func (s *Server) handleUpload(c *gin.Context) {
	sess := s.session(c)

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		s.logger.Warn("[handleUpload] no file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > s.config.Upload.MaxFileSize {
		limitMB := float64(s.config.Upload.MaxFileSize) / (1024 * 1024)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %.0f MB limit",
				float64(header.Size)/(1024*1024), limitMB),
		})
		return
	}

	filename := header.Filename
	if !hasValidExtension(filename) {
		s.logger.Warn("[handleUpload] invalid file extension: %s", filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !isExpectedMimeType(contentType) {
		// Some browsers misreport spreadsheet MIME types; log but keep going.
		s.logger.Warn("[handleUpload] unexpected MIME type %q for %s", contentType, filename)
	}

	reader := excel.NewDataReader(filename)
	tbl, err := reader.ReadTable(file)
	if err != nil {
		s.logger.Warn("[handleUpload] load failed for %s: %v", filename, err)
		s.writeError(c, err)
		return
	}

	sess.Replace(tbl, "upload:"+filename)
	s.logger.Info("[handleUpload] loaded %s (%d columns, %d rows)", filename, tbl.ColumnCount(), tbl.RowCount())

	c.JSON(http.StatusOK, tableInfoPayload(sess))
}

// handleSample replaces the session's table with the demo table
func (s *Server) handleSample(c *gin.Context) {
	sess := s.session(c)
	sess.Replace(table.Sample(), "sample")
	c.JSON(http.StatusOK, tableInfoPayload(sess))
}

// handleTableInfo reports the shape and column-kind counts of the
// current table.
func (s *Server) handleTableInfo(c *gin.Context) {
	sess := s.session(c)
	if !sess.Loaded() {
		s.writeError(c, core.ErrNoTable)
		return
	}
	c.JSON(http.StatusOK, tableInfoPayload(sess))
}

// handleColumns lists every column with its inferred kind, plus the
// per-kind name lists used to populate the chart selectors.
func (s *Server) handleColumns(c *gin.Context) {
	sess := s.session(c)
	snap, ok := sess.Snapshot()
	if !ok {
		s.writeError(c, core.ErrNoTable)
		return
	}

	cl := snap.Classification
	columns := make([]gin.H, 0, snap.Table.ColumnCount())
	for _, name := range snap.Table.ColumnNames() {
		columns = append(columns, gin.H{
			"name": name,
			"kind": cl.Kind(name).String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":     columns,
		"numeric":     cl.Numeric(),
		"categorical": cl.Categorical(),
		"temporal":    cl.Temporal(),
	})
}

// handlePreview returns the first rows of the table for the data preview
func (s *Server) handlePreview(c *gin.Context) {
	sess := s.session(c)
	snap, ok := sess.Snapshot()
	if !ok {
		s.writeError(c, core.ErrNoTable)
		return
	}

	const previewRows = 50
	c.JSON(http.StatusOK, gin.H{
		"columns": snap.Table.ColumnNames(),
		"rows":    snap.Table.Records(previewRows),
		"total":   snap.Table.RowCount(),
	})
}

// handleStats returns describe()-style summaries of the numeric columns
func (s *Server) handleStats(c *gin.Context) {
	sess := s.session(c)
	snap, ok := sess.Snapshot()
	if !ok {
		s.writeError(c, core.ErrNoTable)
		return
	}

	summaries, err := s.summarizer.Summarize(snap.Table, snap.Classification)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// handleExport streams the current table as a CSV download
func (s *Server) handleExport(c *gin.Context) {
	sess := s.session(c)
	snap, ok := sess.Snapshot()
	if !ok {
		s.writeError(c, core.ErrNoTable)
		return
	}

	var buf bytes.Buffer
	if err := snap.Table.WriteCSV(&buf); err != nil {
		s.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="processed_data.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// handleChart validates the selection, builds a chart spec and renders
// it as PNG. Renders are bounded by the server's render semaphore.
func (s *Server) handleChart(c *gin.Context) {
	sess := s.session(c)
	snap, ok := sess.Snapshot()
	if !ok {
		s.writeError(c, core.ErrNoTable)
		return
	}

	var sel chart.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	spec, err := s.resolver.Resolve(snap.Table, snap.Classification, sel)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if err := s.renderSem.Acquire(c.Request.Context(), 1); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "render queue unavailable"})
		return
	}
	start := time.Now()
	png, err := s.renderer.Render(spec, snap.Table)
	s.renderSem.Release(1)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info("[handleChart] rendered %s chart %q in %.1fms",
		spec.Kind, spec.Title, float64(time.Since(start).Microseconds())/1000)

	c.Header("X-Chart-Title", spec.Title)
	c.Data(http.StatusOK, "image/png", png)
}

// tableInfoPayload builds the dataset info block shared by the upload,
// sample and info endpoints.
func tableInfoPayload(sess *session.Session) gin.H {
	snap, ok := sess.Snapshot()
	if !ok {
		return gin.H{"loaded": false}
	}
	cl := snap.Classification
	return gin.H{
		"loaded":              true,
		"source":              snap.Source,
		"loaded_at":           snap.LoadedAt.Format(time.RFC3339),
		"rows":                snap.Table.RowCount(),
		"columns":             snap.Table.ColumnCount(),
		"numeric_columns":     len(cl.Numeric()),
		"categorical_columns": len(cl.Categorical()),
		"temporal_columns":    len(cl.Temporal()),
	}
}

func hasValidExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".xlsx", ".xls", ".csv"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isExpectedMimeType(contentType string) bool {
	expected := []string{
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", // .xlsx
		"application/vnd.ms-excel", // .xls
		"text/csv",
		"application/csv",
		"text/plain", // some CSV files are detected as plain text
	}
	for _, mimeType := range expected {
		if contentType == mimeType {
			return true
		}
	}
	return strings.Contains(contentType, "excel") || strings.Contains(contentType, "csv")
}
