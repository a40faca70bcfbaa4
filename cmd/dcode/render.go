package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	pretty_table "github.com/jedib0t/go-pretty/v6/table"

	"github.com/dcode-oj/dcode-cli/api"
	"github.com/dcode-oj/dcode-cli/internal/workspace"
)

func toneSprint(tone api.Tone, s string) string {
	switch tone {
	case api.TonePositive:
		return color.GreenString(s)
	case api.ToneNegative:
		return color.RedString(s)
	case api.TonePending:
		return color.YellowString(s)
	default:
		return s
	}
}

func renderProblems(problems []api.Problem) {
	t := pretty_table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(pretty_table.Row{"ID", "Title", "Difficulty"})
	for _, p := range problems {
		difficulty := toneSprint(api.DifficultyTone(p.Difficulty), p.Difficulty)
		t.AppendRow(pretty_table.Row{p.ProblemID, p.Title, difficulty})
	}
	t.Render()
}

func renderProblem(p *api.Problem) {
	fmt.Printf("#%d %s [%s]\n\n", p.ProblemID, p.Title, toneSprint(api.DifficultyTone(p.Difficulty), p.Difficulty))
	fmt.Println(p.Description)
	if p.InputFormat != "" {
		fmt.Printf("\nInput Format\n%s\n", p.InputFormat)
	}
	if p.OutputFormat != "" {
		fmt.Printf("\nOutput Format\n%s\n", p.OutputFormat)
	}
}

func renderResults(results []workspace.Result, testcases []workspace.Testcase) {
	t := pretty_table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(pretty_table.Row{"#", "Kind", "Status", "Output", "Verdict"})
	for i, res := range results {
		kind := "canonical"
		if i < len(testcases) && testcases[i].Custom {
			kind = "custom"
		}

		status := toneSprint(res.Status.DisplayTone(), string(res.Status))

		output := res.Output
		if res.Status != api.StatusSuccess {
			// For non-success runs the status string is the message.
			output = string(res.Status)
		}

		verdict := "-"
		if res.Correct != nil {
			if *res.Correct {
				verdict = color.GreenString("✔ correct")
			} else {
				verdict = color.RedString("✖ wrong")
			}
		}

		t.AppendRow(pretty_table.Row{i + 1, kind, status, output, verdict})
	}
	t.Render()
}

func renderHistory(subs []api.Submission) {
	t := pretty_table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(pretty_table.Row{"#", "Language", "Submitted", "Verdict"})
	for i, s := range subs {
		verdict := toneSprint(s.Verdict.DisplayTone(), string(s.Verdict))
		t.AppendRow(pretty_table.Row{i + 1, s.Language, s.SubmittedAt, verdict})
	}
	t.Render()
}

func renderSubmission(s *api.Submission) {
	fmt.Printf("Language:  %s\n", s.Language)
	fmt.Printf("Verdict:   %s\n", toneSprint(s.Verdict.DisplayTone(), string(s.Verdict)))
	fmt.Printf("Submitted: %s\n", s.SubmittedAt)
	if s.Message != "" {
		fmt.Printf("Message:   %s\n", s.Message)
	}
	fmt.Printf("\n%s\n", s.Code)
}
