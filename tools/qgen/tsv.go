package main

import (
	"fmt"
	"os"
	"strings"
)

// readTSV loads the ordered row sequence from a tab-delimited file. A
// missing or unreadable file is the pipeline's only fatal condition.
func readTSV(path string) ([]RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input table: %w", err)
	}
	return parseTSV(string(data)), nil
}

// parseTSV splits header-led tab-delimited text into rows. Blank lines are
// skipped; a data row shorter than the header yields "" for the missing
// trailing columns.
func parseTSV(content string) []RawRow {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	header := strings.Split(lines[0], "\t")
	rows := make([]RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, "\t")
		row := make(RawRow, len(header))
		for i, key := range header {
			if i < len(values) {
				row[key] = values[i]
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
