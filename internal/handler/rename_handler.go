package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"refile/internal/domain"
	"refile/internal/ledger"
	"refile/internal/service"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeZip  = "application/zip"
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RenameHandler handles document rename endpoints.
type RenameHandler struct {
	renameService service.RenameService
}

// NewRenameHandler creates a new RenameHandler.
func NewRenameHandler(renameService service.RenameService) *RenameHandler {
	return &RenameHandler{renameService: renameService}
}

// Rename handles POST /api/v1/rename
// @Summary Rename uploaded invoice documents
// @Description Upload one or more PDFs; a single file returns the renamed PDF,
// @Description multiple files return a zip archive of renamed documents plus the ledger.
// @Tags rename
// @Accept multipart/form-data
// @Param files formData file true "PDF document(s)"
// @Param prefix formData string false "Prefix applied to every output name"
// @Produce application/pdf
// @Produce application/zip
// @Router /rename [post]
func (h *RenameHandler) Rename(c *gin.Context) {
	docs, prefix, ok := h.collectDocuments(c)
	if !ok {
		return
	}

	if len(docs) == 1 {
		renamed, _, err := h.renameService.RenameOne(c.Request.Context(), docs[0], prefix)
		if err != nil {
			HandleError(c, err)
			return
		}
		attachment(c, renamed.OutputName)
		c.Data(http.StatusOK, contentTypePDF, renamed.Data)
		return
	}

	result, err := h.renameService.RenameBatch(c.Request.Context(), docs, prefix)
	if err != nil {
		HandleError(c, err)
		return
	}
	attachment(c, result.ArchiveName)
	c.Data(http.StatusOK, contentTypeZip, result.Archive)
}

// Preview handles POST /api/v1/rename/preview
// @Summary Preview rename decisions without downloading documents
// @Description Runs extraction and naming over the uploaded PDFs and returns
// @Description the ledger as JSON (default), CSV, or XLSX.
// @Tags rename
// @Accept multipart/form-data
// @Param files formData file true "PDF document(s)"
// @Param prefix formData string false "Prefix applied to every output name"
// @Param format query string false "Ledger format: json, csv, or xlsx" default(json)
// @Produce json
// @Router /rename/preview [post]
func (h *RenameHandler) Preview(c *gin.Context) {
	docs, prefix, ok := h.collectDocuments(c)
	if !ok {
		return
	}

	records, err := h.renameService.Preview(c.Request.Context(), docs, prefix)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		RespondOK(c, gin.H{"records": records})
	case "csv":
		var buf bytes.Buffer
		if err := ledger.WriteCSV(&buf, records); err != nil {
			HandleError(c, err)
			return
		}
		attachment(c, ledger.BuildFilename("csv"))
		c.Data(http.StatusOK, contentTypeCSV, buf.Bytes())
	case "xlsx":
		data, err := ledger.WriteXLSX(records)
		if err != nil {
			HandleError(c, err)
			return
		}
		attachment(c, ledger.BuildFilename("xlsx"))
		c.Data(http.StatusOK, contentTypeXLSX, data)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be json, csv, or xlsx")
	}
}

// collectDocuments reads the multipart form into RawDocuments, preserving the
// upload order, which fixes the collision tie-break and ledger ordering.
// Returns ok=false after writing an error response.
func (h *RenameHandler) collectDocuments(c *gin.Context) ([]domain.RawDocument, string, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "multipart form with a files field is required")
		return nil, "", false
	}

	fileHeaders := form.File["files"]
	docs := make([]domain.RawDocument, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_UPLOAD", fmt.Sprintf("could not open uploaded file %q", fh.Filename))
			return nil, "", false
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_UPLOAD", fmt.Sprintf("could not read uploaded file %q", fh.Filename))
			return nil, "", false
		}
		docs = append(docs, domain.RawDocument{
			Name: filepath.Base(fh.Filename),
			Data: data,
		})
	}

	return docs, c.PostForm("prefix"), true
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
