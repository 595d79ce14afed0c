package cms

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// FillReport summarizes a fill run against a SIF template.
type FillReport struct {
	TemplateFields int      `json:"template_fields"`
	Filled         []string `json:"filled"`
	Skipped        []string `json:"skipped,omitempty"`  // values with no matching template field
	Unfilled       []string `json:"unfilled,omitempty"` // template fields left untouched
}

// Coverage returns the share of template fields that received a value, in percent.
func (r FillReport) Coverage() float64 {
	if r.TemplateFields == 0 {
		return 0
	}
	return float64(len(r.Filled)) / float64(r.TemplateFields) * 100
}

// Fill sets the given AcroForm field values on the SIF template and writes
// the result to outPath. Values naming fields that do not exist in the
// template are reported as skipped, not treated as errors. The template must
// contain an AcroForm; a flat PDF is rejected.
func Fill(templatePath string, values map[string]string, outPath string) (*FillReport, error) {
	f, err := os.Open(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SIF template: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read SIF template: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil, fmt.Errorf("SIF template does not contain form fields (AcroForm)")
	}
	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference AcroForm: %w", err)
	}
	if acroFormDict == nil {
		return nil, fmt.Errorf("SIF template does not contain form fields (AcroForm)")
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return nil, fmt.Errorf("SIF template does not contain form fields (AcroForm)")
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference Fields array: %w", err)
	}

	report := &FillReport{}
	filled := make(map[string]bool, len(values))

	for _, fieldRef := range fieldsArray {
		fillField(ctx, fieldRef, values, filled, report)
	}

	// Viewers must regenerate widget appearances for the new values.
	acroFormDict["NeedAppearances"] = types.Boolean(true)

	for name := range values {
		if !filled[name] {
			report.Skipped = append(report.Skipped, name)
		}
	}
	sort.Strings(report.Filled)
	sort.Strings(report.Skipped)
	sort.Strings(report.Unfilled)

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := api.WriteContext(ctx, out); err != nil {
		return nil, fmt.Errorf("failed to write filled SIF: %w", err)
	}

	return report, nil
}

// fillField walks one field (and its named kids) and sets V where the field
// name has a value. Values are written as hex string literals so no escaping
// of the content is needed.
func fillField(ctx *model.Context, fieldObj types.Object, values map[string]string, filled map[string]bool, report *FillReport) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil || fieldDict == nil {
		return
	}

	name := ""
	if nameObj, found := fieldDict.Find("T"); found {
		if n, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			name = n
		}
	}

	// Named kids form a field hierarchy; only terminal fields take values.
	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil {
			hasNamedKids := false
			for _, kidRef := range kidsArray {
				kidDict, err := ctx.DereferenceDict(kidRef)
				if err != nil || kidDict == nil {
					continue
				}
				if _, hasName := kidDict.Find("T"); hasName {
					hasNamedKids = true
					fillField(ctx, kidRef, values, filled, report)
				}
			}
			if hasNamedKids {
				return
			}
		}
	}

	if name == "" {
		return
	}
	report.TemplateFields++

	value, ok := values[name]
	if !ok {
		report.Unfilled = append(report.Unfilled, name)
		return
	}

	fieldDict["V"] = types.HexLiteral(hex.EncodeToString([]byte(value)))
	// Drop any cached appearance so NeedAppearances takes effect.
	delete(fieldDict, "AP")

	filled[name] = true
	report.Filled = append(report.Filled, name)
}

// ConvertFile is the end-to-end workflow: parse a CMS report PDF, map its
// data onto SIF field names, and fill the SIF template. A nil mapping uses
// the canonical FieldMap.
func ConvertFile(reportPath, templatePath, outPath string, mapping map[string]string) (ReportData, *FillReport, error) {
	data, needsOCR, err := ParseFile(reportPath)
	if err != nil {
		return ReportData{}, nil, err
	}
	if needsOCR {
		return data, nil, fmt.Errorf("CMS report %s has little extractable text; it is likely scanned and needs OCR", reportPath)
	}

	values := SIFFieldValues(data, mapping)
	if len(values) == 0 {
		return data, nil, fmt.Errorf("no mappable fields extracted from CMS report %s", reportPath)
	}

	report, err := Fill(templatePath, values, outPath)
	if err != nil {
		return data, nil, err
	}
	return data, report, nil
}
