// Package extractor converts statement PDFs into plain page text for the
// parsing pipeline. It tries the structured PDF library first and falls
// back to the external pdftotext command (poppler-utils) when the library
// yields unreadable output.
package extractor

import (
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// NoTextError reports a statement page that yielded no extractable text.
type NoTextError struct {
	Page int
}

func (e *NoTextError) Error() string {
	return fmt.Sprintf("page %d contains no extractable text", e.Page)
}

// ExtractText reads a PDF file and returns the text content of each page,
// in page order. Every page must yield text; an empty page fails with
// NoTextError.
func ExtractText(filePath string) ([]string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(pages) {
		return checkPages(pages)
	}

	pages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(pages) {
		return checkPages(pages)
	}

	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %w", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted from %q; the file may be image-based or use custom font encodings", filePath)
}

// checkPages enforces the every-page-has-text contract.
func checkPages(pages []string) ([]string, error) {
	for i, page := range pages {
		if strings.TrimSpace(page) == "" {
			return nil, &NoTextError{Page: i + 1}
		}
	}
	return pages, nil
}

// extractWithLibrary uses the ledongthuc/pdf library, reading rows per page.
func extractWithLibrary(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			pages = append(pages, "")
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages, nil
}

// extractWithPdftotext shells out to poppler's pdftotext with layout
// preservation. Pages arrive separated by form feeds.
func extractWithPdftotext(filePath string) ([]string, error) {
	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	var pages []string
	for _, page := range strings.Split(string(out), "\f") {
		if strings.TrimSpace(page) != "" {
			pages = append(pages, strings.TrimSpace(page))
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}

// isReadableText reports whether the extracted pages look like decoded
// text rather than garbage from identity-encoded fonts. The check is a
// strict ASCII ratio; unicode.IsLetter is too permissive here.
func isReadableText(pages []string) bool {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"£$€%&`, r) {
				readable++
			}
		}
	}
	if total == 0 {
		return false
	}
	return float64(readable)/float64(total) >= 0.85
}
