package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Interactively append a question to the source table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(input, os.Stdin)
		},
	}

	cmd.Flags().StringVar(&input, "in", "questions_edit.tsv", "source TSV table")

	return cmd
}

func runAdd(path string, in io.Reader) error {
	reader := bufio.NewReader(in)
	prompt := func(label string) (string, error) {
		color.New(color.FgHiCyan).Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read prompt input: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	id := nextQuestionID(loadExistingIDs(path))
	fmt.Printf("Generated ID: %s\n", id)

	var text string
	for text == "" {
		var err error
		if text, err = prompt("Question (Text)"); err != nil {
			return err
		}
	}

	var answer string
	for answer == "" {
		var err error
		if answer, err = prompt("Answer"); err != nil {
			return err
		}
	}

	aliases, err := prompt("Aliases (pipe | separated)")
	if err != nil {
		return err
	}

	fmt.Printf("Normalized Answer: %q\n", normalize(answer))

	fmt.Println("\n--- Preview ---")
	fmt.Printf("ID: %s\nText: %s\nAnswer: %s\n", id, text, answer)
	if aliases != "" {
		fmt.Printf("Aliases: %s\n", aliases)
	}
	fmt.Println("---------------")

	confirm, err := prompt("Save? (Y/n)")
	if err != nil {
		return err
	}
	if strings.EqualFold(confirm, "n") {
		fmt.Println("Cancelled.")
		return nil
	}

	// Column order matches tsvHeaders; new rows land in the inbox.
	row := strings.Join([]string{
		id, text, answer, aliases,
		"", "", "", "",
		statusInbox, "cli",
		"", "", "",
	}, "\t")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open source table: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString("\n" + row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	color.New(color.FgGreen).Printf("Saved to %s\n", path)
	return nil
}

// loadExistingIDs reads the first column of every data row in the source
// table. A missing file just means no ids yet.
func loadExistingIDs(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var ids []string
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if i == 0 { // header
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, _, _ := strings.Cut(line, "\t")
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

var sequentialIDPattern = regexp.MustCompile(`^q(\d+)$`)

// nextQuestionID picks the next sequential qNNNNN id after the highest one
// already present; ids in other formats are ignored.
func nextQuestionID(existing []string) string {
	max := 0
	for _, id := range existing {
		m := sequentialIDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("q%05d", max+1)
}
