// Package ledger rewrites HSBC current account CSV exports into the format
// expected by the WISO Mein Geld import. Unlike the statement pipeline it
// operates on whole-file text without building a structured record list.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Leading non-date preamble on each line, up to the first DD/MM/YYYY.
	preamblePattern = regexp.MustCompile(`(?m)^.*?(\d{2}/\d{2}/\d{4})`)
	// A double-quoted field (single line).
	quotedFieldPattern = regexp.MustCompile(`"[^"\n]*"`)
	// A thousands-separator comma between digits.
	digitCommaPattern = regexp.MustCompile(`(\d),(\d)`)
	// A decimal point before exactly two digits at a field or line boundary.
	decimalPointPattern = regexp.MustCompile(`(?m)\.(\d{2})(;|$)`)
	spaceRunPattern     = regexp.MustCompile(` {2,}`)
)

// Transform applies the full rewrite chain to the export text. The order
// is significant: the field delimiter swap must come after thousands
// separators are gone (both are commas) and before the decimal point
// conversion, which keys on the new semicolon delimiter.
func Transform(text string) string {
	text = preamblePattern.ReplaceAllString(text, "$1")
	text = quotedFieldPattern.ReplaceAllStringFunc(text, func(field string) string {
		return strings.ReplaceAll(field, ",", "")
	})
	text = stripDigitCommas(text)
	text = strings.ReplaceAll(text, `"`, "")
	text = strings.ReplaceAll(text, ",", ";")
	text = decimalPointPattern.ReplaceAllString(text, `,$1$2`)
	text = spaceRunPattern.ReplaceAllString(text, " ")
	return text
}

// stripDigitCommas removes commas between digit groups. Replacement runs to
// a fixpoint because matches overlap in values like 1,234,567.
func stripDigitCommas(text string) string {
	for {
		next := digitCommaPattern.ReplaceAllString(text, "$1$2")
		if next == text {
			return text
		}
		text = next
	}
}

// TransformFile rewrites one export file and writes the result next to the
// input with a _transformed suffix before the extension. Returns the
// output path.
func TransformFile(inputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", inputPath, err)
	}

	out := Transform(string(data))

	ext := filepath.Ext(inputPath)
	outPath := strings.TrimSuffix(inputPath, ext) + "_transformed" + ext
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", outPath, err)
	}
	return outPath, nil
}
