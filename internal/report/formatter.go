package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXLSX = "xlsx"
)

// Formatter writes a value in one output format.
type Formatter interface {
	Format(data any) error
}

// FormatterOptions configures formatters.
type FormatterOptions struct {
	// Writer is where output goes (defaults to os.Stdout)
	Writer io.Writer
	// Compact disables indentation for JSON and YAML
	Compact bool
}

// Sheet is one workbook tab.
type Sheet struct {
	Name string
	Rows [][]any
}

// Sheeter is implemented by values that can be exported as a workbook.
type Sheeter interface {
	Sheets() []Sheet
}

// NewFormatter creates a formatter for the named format.
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return &JSONFormatter{opts: opts}, nil
	case FormatYAML, "yml":
		return &YAMLFormatter{opts: opts}, nil
	case FormatXLSX:
		return &XLSXFormatter{opts: opts}, nil
	case FormatText, "":
		return &TextFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml, xlsx)", format)
	}
}

// FormatForPath infers the output format from a file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q (use .txt, .json, .yaml or .xlsx)", path)
	}
}

// WriteFile writes data to path in the format implied by its extension.
func WriteFile(path string, data any) (err error) {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	formatter, err := NewFormatter(format, &FormatterOptions{Writer: f})
	if err != nil {
		return err
	}
	return formatter.Format(data)
}

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	opts *FormatterOptions
}

func (f *JSONFormatter) Format(data any) error {
	enc := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct {
	opts *FormatterOptions
}

func (f *YAMLFormatter) Format(data any) error {
	enc := yaml.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		enc.SetIndent(2)
	}
	defer enc.Close()
	return enc.Encode(data)
}

// TextFormatter writes strings and Stringers as plain text.
type TextFormatter struct {
	opts *FormatterOptions
}

func (f *TextFormatter) Format(data any) error {
	switch v := data.(type) {
	case string:
		_, err := fmt.Fprintln(f.opts.Writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.opts.Writer, v.String())
		return err
	default:
		return fmt.Errorf("text formatter cannot render %T", data)
	}
}

// XLSXFormatter writes a Sheeter as an Excel workbook.
type XLSXFormatter struct {
	opts *FormatterOptions
}

func (f *XLSXFormatter) Format(data any) error {
	sh, ok := data.(Sheeter)
	if !ok {
		return fmt.Errorf("xlsx formatter cannot render %T", data)
	}
	sheets := sh.Sheets()
	if len(sheets) == 0 {
		return fmt.Errorf("xlsx formatter: nothing to write")
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := wb.SetSheetName(wb.GetSheetName(0), s.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", s.Name, err)
			}
		} else if _, err := wb.NewSheet(s.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.Name, err)
		}
		for r, row := range s.Rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := wb.SetCellValue(s.Name, cell, value); err != nil {
					return fmt.Errorf("failed to set %s!%s: %w", s.Name, cell, err)
				}
			}
		}
	}
	wb.SetActiveSheet(0)

	if err := wb.Write(f.opts.Writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

var (
	_ Formatter = (*JSONFormatter)(nil)
	_ Formatter = (*YAMLFormatter)(nil)
	_ Formatter = (*TextFormatter)(nil)
	_ Formatter = (*XLSXFormatter)(nil)
)
