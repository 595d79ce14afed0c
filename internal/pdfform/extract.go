// Package pdfform reads AcroForm fields from PDF documents, classifies their
// values, and compares a control document's fields against review documents.
package pdfform

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// FieldType identifies the kind of AcroForm field.
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeSelect    FieldType = "select"
	FieldTypeButton    FieldType = "button"
	FieldTypeSignature FieldType = "signature"
	FieldTypeUnknown   FieldType = "unknown"
)

// Field is one AcroForm field with its value flattened to a string.
type Field struct {
	Name  string    `json:"name"`
	Type  FieldType `json:"type"`
	Value string    `json:"value"`
	Page  int       `json:"page,omitempty"`
}

// Extractor pulls AcroForm fields out of PDF documents using pdfcpu.
type Extractor struct {
	debugMode bool
}

// NewExtractor creates an AcroForm field extractor.
func NewExtractor(debugMode bool) *Extractor {
	return &Extractor{debugMode: debugMode}
}

// ExtractFile extracts all form fields from a PDF file.
func (e *Extractor) ExtractFile(path string) ([]Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer f.Close()

	return e.Extract(f)
}

// Extract extracts all form fields from a PDF read from rs.
func (e *Extractor) Extract(rs io.ReadSeeker) ([]Field, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	return e.extractFromContext(ctx)
}

func (e *Extractor) extractFromContext(ctx *model.Context) ([]Field, error) {
	var fields []Field

	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		if e.debugMode {
			fmt.Fprintln(os.Stderr, "no AcroForm dictionary found in document")
		}
		return fields, nil
	}

	acroFormDict, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference AcroForm: %w", err)
	}
	if acroFormDict == nil {
		return fields, nil
	}

	fieldsObj, found := acroFormDict.Find("Fields")
	if !found {
		return fields, nil
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference Fields array: %w", err)
	}

	for i, fieldRef := range fieldsArray {
		collected, err := e.collectField(ctx, fieldRef, "", i)
		if err != nil {
			if e.debugMode {
				fmt.Fprintf(os.Stderr, "error processing field %d: %v\n", i, err)
			}
			continue
		}
		fields = append(fields, collected...)
	}

	return fields, nil
}

// collectField resolves one entry of a Fields (or Kids) array. Hierarchical
// fields produce dot-qualified names the way viewers display them; kids that
// are plain widget annotations are folded into their parent.
func (e *Extractor) collectField(ctx *model.Context, fieldObj types.Object, parent string, index int) ([]Field, error) {
	fieldDict, err := ctx.DereferenceDict(fieldObj)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference field: %w", err)
	}
	if fieldDict == nil {
		return nil, nil
	}

	name := ""
	if nameObj, found := fieldDict.Find("T"); found {
		if n, err := ctx.DereferenceStringOrHexLiteral(nameObj, model.V10, nil); err == nil {
			name = n
		}
	}
	if name == "" {
		name = fmt.Sprintf("field_%d", index)
	}
	if parent != "" {
		name = parent + "." + name
	}

	// Descend into named kids; a terminal field has either no Kids or only
	// anonymous widget kids.
	if kidsObj, found := fieldDict.Find("Kids"); found {
		if kidsArray, err := ctx.DereferenceArray(kidsObj); err == nil {
			var children []Field
			for i, kidRef := range kidsArray {
				kidDict, err := ctx.DereferenceDict(kidRef)
				if err != nil || kidDict == nil {
					continue
				}
				if _, hasName := kidDict.Find("T"); hasName {
					sub, err := e.collectField(ctx, kidRef, name, i)
					if err != nil {
						continue
					}
					children = append(children, sub...)
				}
			}
			if len(children) > 0 {
				return children, nil
			}
		}
	}

	fieldType := e.fieldType(ctx, fieldDict)
	field := Field{Name: name, Type: fieldType}

	if valueObj, found := fieldDict.Find("V"); found {
		field.Value = e.fieldValue(ctx, valueObj, fieldType)
	}

	if e.debugMode {
		fmt.Fprintf(os.Stderr, "extracted field: %s (type: %s)\n", field.Name, field.Type)
	}

	return []Field{field}, nil
}

// fieldType determines the field type from the FT entry, following Parent
// links for inherited types.
func (e *Extractor) fieldType(ctx *model.Context, fieldDict types.Dict) FieldType {
	ftObj, found := fieldDict.Find("FT")
	if !found {
		if parentObj, found := fieldDict.Find("Parent"); found {
			if parentDict, err := ctx.DereferenceDict(parentObj); err == nil && parentDict != nil {
				return e.fieldType(ctx, parentDict)
			}
		}
		return FieldTypeUnknown
	}

	ftName, err := ctx.DereferenceName(ftObj, model.V10, nil)
	if err != nil {
		return FieldTypeUnknown
	}

	switch ftName {
	case "Btn":
		if flagsObj, found := fieldDict.Find("Ff"); found {
			if flags, err := ctx.DereferenceInteger(flagsObj); err == nil && flags != nil {
				flagValue := *flags
				if (flagValue & (1 << 15)) != 0 { // Bit 16: Radio
					return FieldTypeRadio
				} else if (flagValue & (1 << 16)) != 0 { // Bit 17: Pushbutton
					return FieldTypeButton
				}
			}
		}
		return FieldTypeCheckbox
	case "Tx":
		return FieldTypeText
	case "Ch":
		return FieldTypeSelect
	case "Sig":
		return FieldTypeSignature
	default:
		return FieldTypeUnknown
	}
}

// fieldValue flattens the V entry into a string based on field type.
func (e *Extractor) fieldValue(ctx *model.Context, valueObj types.Object, fieldType FieldType) string {
	switch fieldType {
	case FieldTypeCheckbox, FieldTypeRadio:
		if name, err := ctx.DereferenceName(valueObj, model.V10, nil); err == nil {
			return nameValue(fieldType, name)
		}
	case FieldTypeSelect:
		// Can be a string or an array of strings for multi-select.
		if val, err := ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
			return val
		}
		if arr, err := ctx.DereferenceArray(valueObj); err == nil {
			var values []string
			for _, item := range arr {
				if str, err := ctx.DereferenceStringOrHexLiteral(item, model.V10, nil); err == nil {
					values = append(values, str)
				}
			}
			return strings.Join(values, ", ")
		}
	default:
		if val, err := ctx.DereferenceStringOrHexLiteral(valueObj, model.V10, nil); err == nil {
			return val
		}
	}
	return ""
}

// nameValue flattens a name-valued V entry. An unticked checkbox carries the
// name "Off", which reads as no value.
func nameValue(fieldType FieldType, name types.Name) string {
	if fieldType == FieldTypeCheckbox && name == "Off" {
		return ""
	}
	return string(name)
}
