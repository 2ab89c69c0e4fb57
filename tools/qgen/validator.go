package main

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// RawRow is one record from the source table, keyed by header column name.
// TSV carries no types, so every value is a string and absence is "".
type RawRow map[string]string

// Question is the canonical record produced by validation. Optional text
// fields hold "" when absent; that rule is enforced here, at the boundary,
// and downstream code never re-introduces empty strings.
type Question struct {
	ID               string
	Text             string
	Answer           string
	NormalizedAnswer string
	Aliases          []string
	Tags             []string
	Status           string
	Romaji           string
	Type             string
	Source           string
	AnswerDisplay    string
	Reading          string
	Explanation      string
	Weight           float64
	Index            int
}

// Row-level error codes. Accumulative: a row may carry several at once.
const (
	errMissingID       = "missing_id"
	errMissingText     = "missing_text"
	errMissingAnswer   = "missing_answer"
	errNormalizedEmpty = "normalized_answer_empty"
	errInvalidIDFormat = "invalid_id_format"
	errDupID           = "dup_id"
	errDupTextAnswer   = "dup_text_answer"
	errStatusNotReady  = "status_not_ready"
)

// Authored lifecycle statuses that map to an output partition.
const (
	statusProd  = "prod"
	statusDebug = "debug"
	statusInbox = "inbox"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// pairSeparator joins text and answer into a duplicate-check key; NUL cannot
// appear in either field.
const pairSeparator = "\x00"

type ValidationResult struct {
	OK       bool
	Errors   []string
	Question Question
}

// Validator performs per-row schema checks and run-scoped duplicate
// detection. Rows must be validated in input order: the first occurrence of
// a duplicated id or (text, answer) pair is accepted, later ones flagged.
// Not safe for concurrent use.
type Validator struct {
	seenIDs   map[string]struct{}
	seenPairs map[string]struct{}
}

func NewValidator() *Validator {
	v := &Validator{}
	v.Reset()
	return v
}

// Reset clears the duplicate-tracking state. The build invokes it once per
// run; tests invoke it between cases.
func (v *Validator) Reset() {
	v.seenIDs = make(map[string]struct{})
	v.seenPairs = make(map[string]struct{})
}

// Validate checks one raw row and produces the canonical question. Every
// applicable error is collected rather than stopping at the first; the
// question is returned even when invalid so the build can route and report
// it.
func (v *Validator) Validate(row RawRow, index int) ValidationResult {
	var errs []string

	id := strings.TrimSpace(row["id"])
	text := strings.TrimSpace(row["text"])
	answer := strings.TrimSpace(row["answer"])

	if id == "" {
		errs = append(errs, errMissingID)
	}
	if text == "" {
		errs = append(errs, errMissingText)
	}
	if answer == "" {
		errs = append(errs, errMissingAnswer)
	}

	normalized := normalize(answer)
	if answer != "" && normalized == "" {
		errs = append(errs, errNormalizedEmpty)
	}

	if id != "" && !idPattern.MatchString(id) {
		errs = append(errs, errInvalidIDFormat)
	}

	if id != "" {
		if _, dup := v.seenIDs[id]; dup {
			errs = append(errs, errDupID)
		}
		v.seenIDs[id] = struct{}{}
	}

	if text != "" && answer != "" {
		key := text + pairSeparator + answer
		if _, dup := v.seenPairs[key]; dup {
			errs = append(errs, errDupTextAnswer)
		}
		v.seenPairs[key] = struct{}{}
	}

	status := strings.TrimSpace(row["status"])
	if status == "" {
		status = statusInbox
	}

	q := Question{
		ID:               id,
		Text:             text,
		Answer:           answer,
		NormalizedAnswer: normalized,
		Aliases:          splitPipe(row["aliases"]),
		Tags:             splitPipe(row["tags"]),
		Status:           status,
		Romaji:           strings.TrimSpace(row["romaji"]),
		Type:             strings.TrimSpace(row["type"]),
		Source:           strings.TrimSpace(row["source"]),
		AnswerDisplay:    strings.TrimSpace(row["answer_display"]),
		Reading:          strings.TrimSpace(row["reading"]),
		Explanation:      strings.TrimSpace(row["explanation"]),
		Index:            index,
	}

	return ValidationResult{OK: len(errs) == 0, Errors: errs, Question: q}
}

// splitPipe parses a pipe-delimited list field, trimming entries and
// dropping empty ones. Returns nil for an empty list so serialization omits
// the field.
func splitPipe(value string) []string {
	parts := lo.FilterMap(strings.Split(value, "|"), func(item string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(item)
		return trimmed, trimmed != ""
	})
	if len(parts) == 0 {
		return nil
	}
	return parts
}
