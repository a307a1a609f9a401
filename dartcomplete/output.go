package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/marcuscaisey/dartcomplete/completion"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// writeProposals writes one proposal per line: its kind, completion text and replacement offset, followed by its
// signature if details is set. Columns are aligned by display width.
func writeProposals(w io.Writer, proposals []*completion.Proposal, details bool) {
	if len(proposals) == 0 {
		fmt.Fprintln(w, faint("no completions"))
		return
	}
	var kindWidth, completionWidth int
	for _, p := range proposals {
		kindWidth = max(kindWidth, runewidth.StringWidth(p.Kind.String()))
		completionWidth = max(completionWidth, runewidth.StringWidth(p.Completion))
	}
	for _, p := range proposals {
		line := fmt.Sprintf("%s %s %d",
			cyan(runewidth.FillRight(p.Kind.String(), kindWidth)),
			bold(runewidth.FillRight(p.Completion, completionWidth)),
			p.Offset,
		)
		if details {
			if signature := formatSignature(p); signature != "" {
				line += "  " + faint(signature)
			}
		}
		fmt.Fprintln(w, line)
	}
}

// formatSignature formats the declaring type, parameters and type of a proposal, such as A.f(int x, [y]) → String.
func formatSignature(p *completion.Proposal) string {
	if p.Kind == completion.KindKeyword {
		return ""
	}
	var b strings.Builder
	if p.DeclaringType != "" {
		fmt.Fprint(&b, p.DeclaringType, ".")
	}
	fmt.Fprint(&b, p.Completion)
	switch p.Kind {
	case completion.KindMethod, completion.KindFunction, completion.KindConstructor:
		fmt.Fprint(&b, "(", formatParameters(p), ")")
	default:
	}
	if p.ReturnType != "" {
		fmt.Fprint(&b, " → ", p.ReturnType)
	}
	return b.String()
}

func formatParameters(p *completion.Proposal) string {
	params := make([]string, len(p.ParameterNames))
	for i, name := range p.ParameterNames {
		if i < len(p.ParameterTypes) && p.ParameterTypes[i] != "" {
			params[i] = p.ParameterTypes[i] + " " + name
		} else {
			params[i] = name
		}
	}
	required := min(p.RequiredParameterCount, len(params))
	s := strings.Join(params[:required], ", ")
	if optional := params[required:]; len(optional) > 0 {
		left, right := "[", "]"
		if p.HasNamed {
			left, right = "{", "}"
		}
		if s != "" {
			s += ", "
		}
		s += left + strings.Join(optional, ", ") + right
	}
	return s
}

func writeJSON(w io.Writer, proposals []*completion.Proposal) error {
	if proposals == nil {
		proposals = []*completion.Proposal{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(proposals)
}
