package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/phrazzld/tutor-api/internal/api"
	"github.com/phrazzld/tutor-api/internal/generation"
)

var optionLetters = []string{"A", "B", "C", "D"}

func renderQuiz(w io.Writer, result generation.QuizResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Question", "Options", "Answer"})

	for i, q := range result.Questions {
		options := make([]string, len(q.Options))
		for j, opt := range q.Options {
			options[j] = fmt.Sprintf("%s) %s", letter(j), opt)
		}
		t.AppendRow(table.Row{i + 1, q.Question, strings.Join(options, "\n"), letter(q.CorrectAnswer)})
		t.AppendSeparator()
	}

	t.Render()

	if result.Error != "" {
		_, err := fmt.Fprintf(w, "Placeholder quiz: %s\n", result.Error)
		return err
	}
	return nil
}

func renderStatus(w io.Writer, status api.StatusResponse) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Primary service", status.PrimaryService},
		{"Available services", strings.Join(status.AvailableServices, ", ")},
		{"AI enabled", status.HasAI},
	})
	t.Render()
	return nil
}

func renderImageAnalysis(w io.Writer, filename string, analysis generation.ImageAnalysis) error {
	_, err := fmt.Fprintf(w, "%s\n\n%s\n\nConcepts: %s\n\n%s\n",
		filename,
		analysis.Description,
		strings.Join(analysis.RelevantConcepts, ", "),
		analysis.Suggestions)
	return err
}

func letter(i int) string {
	if i >= 0 && i < len(optionLetters) {
		return optionLetters[i]
	}
	return "?"
}
