package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"json format", "json", false},
		{"yaml format", "yaml", false},
		{"yml alias", "yml", false},
		{"xlsx format", "xlsx", false},
		{"text format", "text", false},
		{"empty format defaults to text", "", false},
		{"unknown format", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormatter(tt.format, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFormatter() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.json", FormatJSON, false},
		{"out.YAML", FormatYAML, false},
		{"out.yml", FormatYAML, false},
		{"dir/out.xlsx", FormatXLSX, false},
		{"out.txt", FormatText, false},
		{"out", FormatText, false},
		{"out.pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Report(t *testing.T) {
	var buf bytes.Buffer
	formatter, err := NewFormatter(FormatJSON, &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	if err := formatter.Format(testReport(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	results, ok := decoded["results"].(map[string]any)
	if !ok {
		t.Fatalf("missing results object: %s", buf.String())
	}
	for _, key := range []string{"psychometricFit", "technicalReadiness", "wiscar", "overallConfidence", "recommendation", "careerRoles"} {
		if _, ok := results[key]; !ok {
			t.Errorf("results missing %q", key)
		}
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	var buf bytes.Buffer
	formatter, _ := NewFormatter(FormatJSON, &FormatterOptions{Writer: &buf, Compact: true})

	if err := formatter.Format(testReport(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.Count(buf.String(), "\n") > 1 {
		t.Errorf("compact JSON should be a single line")
	}
}

func TestYAMLFormatter_Report(t *testing.T) {
	var buf bytes.Buffer
	formatter, _ := NewFormatter(FormatYAML, &FormatterOptions{Writer: &buf})

	if err := formatter.Format(testReport(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded struct {
		AttemptID string `yaml:"attemptId"`
		Results   struct {
			Wiscar map[string]int `yaml:"wiscar"`
		} `yaml:"results"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded.AttemptID != "attempt-1" {
		t.Errorf("attemptId = %q", decoded.AttemptID)
	}
	if _, ok := decoded.Results.Wiscar["realWorld"]; !ok {
		t.Errorf("wiscar missing realWorld: %v", decoded.Results.Wiscar)
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, _ := NewFormatter(FormatText, &FormatterOptions{Writer: &buf})

	if err := formatter.Format(testReport(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Credit Risk Career Fit Report") {
		t.Errorf("unexpected text output: %s", buf.String())
	}

	if err := formatter.Format(struct{}{}); err == nil {
		t.Error("expected error for non-Stringer data")
	}
}

func TestXLSXFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter, _ := NewFormatter(FormatXLSX, &FormatterOptions{Writer: &buf})

	if err := formatter.Format(testReport(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	wb, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer wb.Close()

	got := wb.GetSheetList()
	want := []string{"Summary", "WISCAR", "Guidance", "Answers"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("sheets = %v, want %v", got, want)
	}
	v, err := wb.GetCellValue("Summary", "B1")
	if err != nil || v != "attempt-1" {
		t.Errorf("Summary!B1 = %q, %v", v, err)
	}
	v, _ = wb.GetCellValue("Answers", "A2")
	if v != "psych1" {
		t.Errorf("Answers!A2 = %q, want psych1", v)
	}
}

func TestXLSXFormatter_RejectsPlainData(t *testing.T) {
	formatter, _ := NewFormatter(FormatXLSX, &FormatterOptions{Writer: &bytes.Buffer{}})
	if err := formatter.Format("hello"); err == nil {
		t.Error("expected error for data without sheets")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := testReport(t)

	for _, name := range []string{"r.txt", "r.json", "r.yaml", "r.xlsx"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, r); err != nil {
			t.Fatalf("WriteFile(%s): %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	if err := WriteFile(filepath.Join(dir, "r.pdf"), r); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
