package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/itchyny/json2yaml"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// writeOutputs writes the three partition files, the text report, and the
// machine-readable report. Every payload is marshaled before the first file
// is created, so a failing run leaves no partial output behind.
func writeOutputs(outDir string, result BuildResult, doWrite bool) error {
	if !doWrite {
		return nil
	}

	prodJSON, err := marshalPartition("questions_prod.json", result.Prod)
	if err != nil {
		return err
	}
	debugJSON, err := marshalPartition("questions_debug.json", result.Debug)
	if err != nil {
		return err
	}
	rejectedJSON, err := marshalPartition("questions_rejected.json", result.Rejected)
	if err != nil {
		return err
	}
	reportYAML, err := renderReportYAML(result.Report, time.Now())
	if err != nil {
		return err
	}
	reportTxt := renderReport(result.Report)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	files := []struct {
		name string
		data []byte
	}{
		{"questions_prod.json", prodJSON},
		{"questions_debug.json", debugJSON},
		{"questions_rejected.json", rejectedJSON},
		{"report.txt", reportTxt},
		{"report.yaml", reportYAML},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(outDir, f.name), f.data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func marshalPartition(name string, items []OutputQuestion) ([]byte, error) {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", name, err)
	}
	return append(data, '\n'), nil
}

// renderReport produces the tab-separated build report: partition counts,
// a blank line, then the error-code histogram sorted by code. "ng" keeps the
// original label for the rejected count.
func renderReport(report Report) []byte {
	lines := []string{
		fmt.Sprintf("total\t%d", report.Total),
		fmt.Sprintf("prod\t%d", report.Prod),
		fmt.Sprintf("debug\t%d", report.Debug),
		fmt.Sprintf("ng\t%d", report.Rejected),
		"",
		"errors",
	}

	codes := maps.Keys(report.ErrorCounts)
	slices.Sort(codes)
	for _, code := range codes {
		lines = append(lines, fmt.Sprintf("%s\t%d", code, report.ErrorCounts[code]))
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}

// renderReportYAML emits the same counts as report.txt in YAML, stamped with
// the generation time for downstream tooling.
func renderReportYAML(report Report, now time.Time) ([]byte, error) {
	errorCounts := report.ErrorCounts
	if errorCounts == nil {
		errorCounts = map[string]int{}
	}
	payload := map[string]any{
		"total":  report.Total,
		"prod":   report.Prod,
		"debug":  report.Debug,
		"ng":     report.Rejected,
		"errors": errorCounts,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	data, err = sjson.SetBytes(data, "meta.generated_at", now.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json2yaml.Convert(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatSummaryLines(result BuildResult, outDir string, wrote bool) []string {
	report := result.Report
	lines := []string{
		fmt.Sprintf("🔍  %d rows read", report.Total),
		fmt.Sprintf("📘  %d prod | %d debug", report.Prod, report.Debug),
		fmt.Sprintf("🚫  %d rejected", report.Rejected),
	}
	if wrote {
		lines = append(lines, fmt.Sprintf("✨ Done! Partitions written to %s/", outDir))
	} else {
		lines = append(lines, "✨ Done! Validation completed (no files written)")
	}
	return lines
}
