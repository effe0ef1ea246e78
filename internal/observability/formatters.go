// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the parsed candidate profile.
func (p *Printer) PrintProfile(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(record.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(record.Phone)))
	sb.WriteString(fmt.Sprintf("Experience: %.2f years\n", record.ExperienceYears))
	sb.WriteString("\n")

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(record.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Education[i]))
		}
		if len(record.Education) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Education)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(record.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			proj := record.Projects[i]
			sb.WriteString(fmt.Sprintf("  • %s", proj.Title))
			if len(proj.Stack) > 0 {
				stack := strings.Join(proj.Stack, ", ")
				if len(stack) > 30 {
					stack = stack[:27] + "..."
				}
				sb.WriteString(fmt.Sprintf(" [%s]", stack))
			}
			sb.WriteString("\n")
		}
		if len(record.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Projects)-maxItemsToShow))
		}
	}

	p.printBox("PARSED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillRanking outputs the resume skills ranked by score.
func (p *Printer) PrintSkillRanking(scores map[string]int) {
	if len(scores) == 0 {
		return
	}

	ranked := skills.Ranked(scores)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total skills detected: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d  %-20s %3d\n", i+1, ranked[i].Name, ranked[i].Score))
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(ranked)-maxItemsToShow))
	}

	p.printBox("SKILL RANKING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobMatch outputs the ATS score and the matched/missing skill lists.
func (p *Printer) PrintJobMatch(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %d/100\n\n", record.ATSScore))

	if len(record.JobMatch.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", joinCapped(record.JobMatch.MatchedSkills, 40)))
	}
	if len(record.JobMatch.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", joinCapped(record.JobMatch.MissingSkills, 40)))
	}
	if len(record.JobMatch.MatchedSkills) == 0 && len(record.JobMatch.MissingSkills) == 0 {
		sb.WriteString("No job skills detected.\n")
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

func joinCapped(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
