package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/style"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderOptions controls summary rendering. Skipped files are only counted
// in the tally unless ShowSkipped is set.
type RenderOptions struct {
	Format      Format
	ShowSkipped bool
}

// Render writes the summary of a run to w. FormatAuto must be resolved by
// the caller; it renders like FormatText.
func Render(w io.Writer, summary *types.Summary, opts RenderOptions) error {
	if summary == nil {
		return nil
	}
	if opts.Format == FormatJSON {
		return renderJSON(w, summary)
	}
	_, err := io.WriteString(w, renderTable(summary, opts.Format == FormatTerminal, opts.ShowSkipped))
	return err
}

func renderTable(summary *types.Summary, styled, showSkipped bool) string {
	paint := func(s interface{ Render(...string) string }, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder

	title := fmt.Sprintf("sortie %s run %s", summary.Mode, shortID(summary.RunID))
	b.WriteString(paint(style.TitleStyle, title))
	if summary.DryRun {
		b.WriteString(" " + paint(style.DryRunStyle, "(dry run, nothing was moved)"))
	}
	b.WriteString("\n")

	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.AppendHeader(table.Row{"Status", "File", "Destination / Reason"})

	rows := 0
	for _, o := range summary.Outcomes {
		if o.Status == types.StatusSkipped && !showSkipped {
			continue
		}
		detail := o.Destination
		if o.Status != types.StatusMoved {
			detail = o.Reason
		}
		tw.AppendRow(table.Row{style.StatusLabel(o.Status, styled), o.Source, detail})
		rows++
	}
	if rows > 0 {
		b.WriteString(tw.Render())
		b.WriteString("\n")
	}

	tally := summary.Tally()
	line := fmt.Sprintf("%d moved, %d skipped, %d failed", tally.Moved, tally.Skipped, tally.Failed)
	if tally.Failed > 0 {
		line = paint(style.FailedStyle, line)
	} else {
		line = paint(style.MutedStyle, line)
	}
	b.WriteString(line)
	if summary.Interrupted {
		b.WriteString(" " + paint(style.FailedStyle, "(interrupted)"))
	}
	b.WriteString("\n")

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type jsonOutcome struct {
	types.Outcome
	Code string `json:"code,omitempty"`
}

type jsonSummary struct {
	*types.Summary
	Outcomes []jsonOutcome `json:"outcomes"`
	Tally    types.Tally   `json:"tally"`
}

func renderJSON(w io.Writer, summary *types.Summary) error {
	out := jsonSummary{
		Summary:  summary,
		Outcomes: make([]jsonOutcome, 0, len(summary.Outcomes)),
		Tally:    summary.Tally(),
	}
	for _, o := range summary.Outcomes {
		jo := jsonOutcome{Outcome: o}
		if o.Err != nil {
			jo.Code = string(errors.GetErrorCode(o.Err))
		}
		out.Outcomes = append(out.Outcomes, jo)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
