package main

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OutputQuestion is the externally visible shape of a question. The raw
// answer field doubles as the typing target internally, so answer and
// answer_display both carry the authored display form here while the typing
// targets live in answer_variants.
type OutputQuestion struct {
	ID             string   `json:"id"`
	Type           string   `json:"type,omitempty"`
	Question       string   `json:"question"`
	RomajiTyping   string   `json:"romaji_typing,omitempty"`
	AnswerVariants []string `json:"answer_variants"`
	AnswerDisplay  string   `json:"answer_display"`
	Answer         string   `json:"answer"`
	Reading        string   `json:"reading,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

type Report struct {
	Total       int
	Prod        int
	Debug       int
	Rejected    int
	ErrorCounts map[string]int
}

type BuildResult struct {
	Prod     []OutputQuestion
	Debug    []OutputQuestion
	Rejected []OutputQuestion
	Report   Report
}

type routedQuestion struct {
	question Question
	errors   []string
}

// Build runs rows through validation in input order, attaches weights,
// classifies every row into exactly one partition, and returns the sorted,
// formatted partitions plus the run report. No row aborts the build; all
// malformations travel as error codes on the rejected partition.
func Build(v *Validator, rows []RawRow) BuildResult {
	v.Reset()

	var prod, debug, rejected []routedQuestion

	for index, row := range rows {
		result := v.Validate(row, index)
		q := result.Question
		q.Weight = computeWeight(q)

		errs := append([]string(nil), result.Errors...)
		switch {
		case len(errs) > 0:
			if q.Status != statusProd && q.Status != statusDebug {
				errs = append(errs, errStatusNotReady)
			}
			rejected = append(rejected, routedQuestion{q, errs})
		case q.Status == statusProd:
			prod = append(prod, routedQuestion{q, nil})
		case q.Status == statusDebug:
			debug = append(debug, routedQuestion{q, nil})
		default:
			rejected = append(rejected, routedQuestion{q, []string{errStatusNotReady}})
		}
	}

	var rejectedCodes []string
	for _, item := range rejected {
		rejectedCodes = append(rejectedCodes, item.errors...)
	}

	sortPartition(prod)
	sortPartition(debug)
	sortPartition(rejected)

	return BuildResult{
		Prod:     formatPartition(prod),
		Debug:    formatPartition(debug),
		Rejected: formatPartition(rejected),
		Report: Report{
			Total:       len(rows),
			Prod:        len(prod),
			Debug:       len(debug),
			Rejected:    len(rejected),
			ErrorCounts: lo.CountValues(rejectedCodes),
		},
	}
}

var idCollator = collate.New(language.English, collate.Numeric)

// sortPartition orders questions by id with numeric-aware English collation
// ("2" sorts before "10"), tie-broken by original input position.
func sortPartition(items []routedQuestion) {
	slices.SortStableFunc(items, func(a, b routedQuestion) int {
		if diff := idCollator.CompareString(a.question.ID, b.question.ID); diff != 0 {
			return diff
		}
		return a.question.Index - b.question.Index
	})
}

func formatPartition(items []routedQuestion) []OutputQuestion {
	out := make([]OutputQuestion, 0, len(items))
	for _, item := range items {
		out = append(out, formatQuestion(item.question, item.errors))
	}
	return out
}

// formatQuestion projects a question into its external shape. Build-time
// bookkeeping (index, status, tags, source, weight) never reaches the output
// files.
func formatQuestion(q Question, errs []string) OutputQuestion {
	display := q.AnswerDisplay
	if display == "" {
		display = q.Answer
	}
	return OutputQuestion{
		ID:             q.ID,
		Type:           q.Type,
		Question:       q.Text,
		RomajiTyping:   q.Romaji,
		AnswerVariants: append([]string{q.Answer}, q.Aliases...),
		AnswerDisplay:  display,
		Answer:         display,
		Reading:        q.Reading,
		Explanation:    q.Explanation,
		Errors:         errs,
	}
}
