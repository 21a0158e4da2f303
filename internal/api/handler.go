package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insightdelivered/hsbc-statement-converter/internal/extractor"
	"github.com/insightdelivered/hsbc-statement-converter/internal/models"
	"github.com/insightdelivered/hsbc-statement-converter/internal/pipeline"
	"github.com/insightdelivered/hsbc-statement-converter/internal/reconcile"
	"github.com/insightdelivered/hsbc-statement-converter/internal/writer"
)

const apiVersion = "2.0.0"

// pageBreakMarker separates pages in pre-extracted text uploads.
const pageBreakMarker = "\n---PAGE_BREAK---\n"

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	ConversionID string               `json:"conversionId,omitempty"`
	Summary      *models.Summary      `json:"summary,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	CreditTotal  float64              `json:"creditTotal"`
	ChargeTotal  float64              `json:"chargeTotal"`
	Count        int                  `json:"count"`
	CSV          string               `json:"csv,omitempty"`
	Version      string               `json:"version,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Converter *pipeline.Converter
	Log       *zap.Logger
	StaticDir string
}

// Register sets up the API routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/convert", h.handleConvert)

	if h.StaticDir != "" {
		app.Static("/", h.StaticDir)
	}
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": apiVersion,
		"engine":  "fiber",
	})
}

func (h *Handler) handleConvert(c *fiber.Ctx) error {
	conversionID := uuid.NewString()
	log := h.Log.With(zap.String("conversion_id", conversionID))

	pages, status, err := h.statementPages(c)
	if err != nil {
		log.Warn("convert rejected", zap.Error(err))
		return writeError(c, status, conversionID, err)
	}

	stmt, err := h.Converter.ConvertPages(pages)
	if err != nil {
		// Parse and reconciliation failures are data problems, not
		// server errors.
		log.Warn("conversion failed", zap.Error(err))
		return writeError(c, fiber.StatusUnprocessableEntity, conversionID, err)
	}

	var csvBuf bytes.Buffer
	w := &writer.CSVWriter{}
	if err := w.Write(&csvBuf, stmt.Transactions); err != nil {
		log.Error("output rendering failed", zap.Error(err))
		return writeError(c, fiber.StatusInternalServerError, conversionID, err)
	}

	totals := reconcile.Sum(stmt.Transactions)
	log.Info("conversion succeeded", zap.Int("transactions", len(stmt.Transactions)))

	// A nil slice marshals to JSON null, not [].
	txns := stmt.Transactions
	if txns == nil {
		txns = []models.Transaction{}
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		ConversionID: conversionID,
		Summary:      &stmt.Summary,
		Transactions: txns,
		CreditTotal:  totals.Credits,
		ChargeTotal:  totals.Charges,
		Count:        len(txns),
		CSV:          csvBuf.String(),
		Version:      apiVersion,
	})
}

// statementPages obtains page text from the request: pre-extracted text if
// the client supplied it, otherwise server-side extraction of the uploaded
// PDF.
func (h *Handler) statementPages(c *fiber.Ctx) ([]string, int, error) {
	if extracted := c.FormValue("extractedText"); extracted != "" {
		var pages []string
		for _, page := range strings.Split(extracted, pageBreakMarker) {
			if page = strings.TrimSpace(page); page != "" {
				pages = append(pages, page)
			}
		}
		if len(pages) == 0 {
			return nil, fiber.StatusBadRequest, fmt.Errorf("extractedText contained no page text")
		}
		return pages, 0, nil
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.StatusBadRequest, fmt.Errorf("no file uploaded; use form field 'file'")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return nil, fiber.StatusBadRequest, fmt.Errorf("only PDF files are supported")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to save upload: %w", err)
	}
	tmp.Close()

	pages, err := extractor.ExtractText(tmp.Name())
	if err != nil {
		return nil, fiber.StatusUnprocessableEntity, err
	}
	return pages, 0, nil
}

func writeError(c *fiber.Ctx, status int, conversionID string, err error) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		ConversionID: conversionID,
		Error:        err.Error(),
		Transactions: []models.Transaction{},
	})
}
