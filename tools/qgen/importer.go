package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

// tsvHeaders is the column order of the source table.
var tsvHeaders = []string{
	"id", "text", "answer", "aliases", "romaji", "type", "tags",
	"weight", "status", "source", "explanation", "answer_display", "reading",
}

func newImportCommand() *cobra.Command {
	var dataDir, outPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Rebuild the source table from exported game JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dataDir, outPath)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "../typeanswer/data", "game data directory")
	cmd.Flags().StringVar(&outPath, "out", "questions_edit.tsv", "destination TSV table")

	return cmd
}

func runImport(dataDir, outPath string) error {
	prodPath := filepath.Join(dataDir, "questions_prod.json")
	if _, err := os.Stat(prodPath); err != nil {
		return fmt.Errorf("game data not found in %s: %w", dataDir, err)
	}

	prodItems, err := loadExportedItems(prodPath)
	if err != nil {
		return err
	}
	ngItems, err := loadExportedItems(filepath.Join(dataDir, "questions_ng.json"))
	if err != nil {
		return err
	}

	rows := []string{strings.Join(tsvHeaders, "\t")}
	for _, item := range prodItems {
		rows = append(rows, strings.Join(importedRow(item, statusProd), "\t"))
	}
	for _, item := range ngItems {
		rows = append(rows, strings.Join(importedRow(item, "ng"), "\t"))
	}

	content := strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write source table: %w", err)
	}

	color.New(color.FgGreen).Printf("Imported %d prod and %d ng items to %s\n",
		len(prodItems), len(ngItems), outPath)
	return nil
}

// loadExportedItems reads a JSON array of exported questions. The export
// shape is loose (hand-edited files, numeric ids, absent fields), so it is
// probed with gjson instead of a rigid schema. A missing file yields no
// items.
func loadExportedItems(path string) ([]gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read export %s: %w", path, err)
	}
	return gjson.ParseBytes(data).Array(), nil
}

// importedRow maps one exported item onto the TSV column order. The first
// answer variant becomes the primary answer, the rest become aliases;
// category folds into tags; an ng_reason is preserved inside the
// explanation.
func importedRow(item gjson.Result, status string) []string {
	id := item.Get("id").String()
	if id == "" {
		id = "q_" + ksuid.New().String()
	}

	variants := lo.Map(item.Get("answer_variants").Array(), func(r gjson.Result, _ int) string {
		return r.String()
	})
	var answer, aliases string
	if len(variants) > 0 {
		answer = variants[0]
		aliases = strings.Join(lo.Uniq(variants[1:]), "|")
	}

	var tags []string
	if category := item.Get("category").String(); category != "" {
		tags = append(tags, category)
	}
	for _, tag := range item.Get("tags").Array() {
		tags = append(tags, tag.String())
	}

	var weight string
	if w := item.Get("weight"); w.Exists() {
		weight = w.String()
	}

	explanation := item.Get("explanation").String()
	if reason := item.Get("ng_reason").String(); reason != "" {
		if explanation != "" {
			explanation = fmt.Sprintf("%s (NG Reason: %s)", explanation, reason)
		} else {
			explanation = "NG Reason: " + reason
		}
	}

	fields := []string{
		id,
		item.Get("question").String(),
		answer,
		aliases,
		item.Get("romaji_typing").String(),
		item.Get("type").String(),
		strings.Join(tags, "|"),
		weight,
		status,
		"import",
		explanation,
		item.Get("answer_display").String(),
		item.Get("reading").String(),
	}
	return lo.Map(fields, func(v string, _ int) string { return sanitizeCell(v) })
}

var cellSanitizer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// sanitizeCell keeps a value from breaking the TSV row/column structure.
func sanitizeCell(v string) string {
	return cellSanitizer.Replace(v)
}
