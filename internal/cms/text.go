package cms

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Below this many characters of stripped text the report is probably a scan
// and would need OCR, which this tool does not do.
const ocrThreshold = 100

const maxTextSize = 10 * 1024 * 1024

// ExtractText extracts the plain text of a CMS report PDF. needsOCR is set
// when so little text came out that the document is likely image-based.
func ExtractText(path string) (text string, needsOCR bool, err error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Keep going; a single bad page should not sink the report.
			continue
		}

		if builder.Len()+len(content) > maxTextSize {
			remaining := maxTextSize - builder.Len()
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}

	text = builder.String()
	needsOCR = len(strings.TrimSpace(text)) < ocrThreshold
	return text, needsOCR, nil
}

// ParseFile extracts text from a CMS report PDF and parses it in one step.
func ParseFile(path string) (ReportData, bool, error) {
	text, needsOCR, err := ExtractText(path)
	if err != nil {
		return ReportData{}, false, fmt.Errorf("failed to process CMS report: %w", err)
	}
	return Parse(text), needsOCR, nil
}
