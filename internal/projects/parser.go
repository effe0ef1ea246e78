// Package projects reconstructs discrete project records from the loosely
// formatted project sections found in resumes. Lines are classified by an
// ordered rule list; the first matching rule wins.
package projects

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// invalidTitles are phrases that look like titles but are section headings or
// filler; a project committed with one of these is discarded.
var invalidTitles = map[string]bool{
	"projects have been completed": true,
	"responsibilities":             true,
	"roles and responsibilities":   true,
	"summary":                      true,
	"profile":                      true,
	"experience":                   true,
	"education":                    true,
	"skills":                       true,
	"certifications":               true,
}

// stackKeywords mark lines that carry the technology list of the current
// project.
var stackKeywords = []string{"language used", "languages used", "tech stack", "technologies"}

var (
	numberedLine = regexp.MustCompile(`^\d+[).]?\s*(.+)`)
	titleLabel   = regexp.MustCompile(`(?i)^title:\s*`)
	bulletPrefix = regexp.MustCompile(`^[•\-–]\s*`)
	stackSep     = regexp.MustCompile(`[,|/]`)
	multiSpace   = regexp.MustCompile(`\s{2,}`)

	// projectSpan captures a projects-like section up to the next known
	// heading token or end of text.
	projectHeading = regexp.MustCompile(`(?i)PROJECTS?|PROJECT SECTION`)
	projectSpan    = regexp.MustCompile(`(?is)(PROJECTS?|PROJECT SECTION)(.+?)(EXPERIENCE|INTERNSHIPS|WORK EXPERIENCE|EDUCATION|SKILLS|CERTIFICATION|$)`)
)

// parser accumulates one project at a time while scanning lines.
type parser struct {
	title     string
	hasTitle  bool
	desc      []string
	stackText string

	projects []types.ProjectRecord
}

// rule classifies one line. Apply reports whether the rule consumed the line;
// rules are evaluated in order and evaluation stops at the first consumer.
type rule func(p *parser, line, lower string) bool

// rules is the ordered classification list from most to least explicit.
var rules = []rule{
	numberedTitleRule,
	labeledTitleRule,
	stackRule,
	labeledDescriptionRule,
	standaloneTitleRule,
	descriptionRule,
}

// Parse extracts project records from text. When the text contains a
// projects-like heading the scan is scoped to that section; otherwise the
// whole text is treated as already project-scoped.
func Parse(text string) []types.ProjectRecord {
	if text == "" {
		return nil
	}

	section := text
	if projectHeading.MatchString(text) {
		m := projectSpan.FindStringSubmatch(text)
		if m == nil {
			return nil
		}
		section = m[2]
	}

	p := &parser{}
	for _, line := range strings.Split(section, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		lower := strings.ToLower(clean)
		for _, r := range rules {
			if r(p, clean, lower) {
				break
			}
		}
	}
	p.commit()

	return p.projects
}

// numberedTitleRule: "1) Food Ordering System" opens a new project when the
// remainder is short enough to be a title.
func numberedTitleRule(p *parser, line, _ string) bool {
	m := numberedLine.FindStringSubmatch(line)
	if m == nil || len(strings.Fields(m[1])) > 6 {
		return false
	}
	p.commit()
	p.open(strings.TrimSpace(m[1]))
	return true
}

// labeledTitleRule: "Title: ..." opens a new project.
func labeledTitleRule(p *parser, line, lower string) bool {
	if !strings.HasPrefix(lower, "title:") {
		return false
	}
	p.commit()
	p.open(strings.TrimSpace(afterColon(line)))
	return true
}

// stackRule: a technologies line sets the raw stack text of the current
// project, taking the text after the first colon, or after the keyword when
// there is no colon.
func stackRule(p *parser, line, lower string) bool {
	for _, kw := range stackKeywords {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		if colon := strings.Index(line, ":"); colon >= 0 {
			p.stackText = strings.TrimSpace(line[colon+1:])
		} else {
			p.stackText = strings.TrimSpace(line[idx+len(kw):])
		}
		return true
	}
	return false
}

// labeledDescriptionRule: "Description: ..." appends to the description.
func labeledDescriptionRule(p *parser, line, lower string) bool {
	if !strings.HasPrefix(lower, "description:") {
		return false
	}
	p.desc = append(p.desc, strings.TrimSpace(afterColon(line)))
	return true
}

// standaloneTitleRule covers creative resumes with unlabeled headings like
// "NewslettrAI": a short line with no sentence markers opens a project when
// none is open yet.
func standaloneTitleRule(p *parser, line, lower string) bool {
	if p.hasTitle {
		return false
	}

	cleanTitle := strings.TrimRight(lower, ".")
	if strings.Contains(line, ".") ||
		strings.Contains(cleanTitle, " have ") ||
		strings.Contains(cleanTitle, " has ") ||
		strings.Contains(cleanTitle, " been ") ||
		invalidTitles[cleanTitle] {
		return false
	}

	words := len(strings.Fields(line))
	if words < 1 || words > 5 {
		return false
	}

	p.commit()
	p.open(line)
	return true
}

// descriptionRule: any remaining line belongs to the open project's
// description, bullet glyphs stripped.
func descriptionRule(p *parser, line, _ string) bool {
	if !p.hasTitle {
		return false
	}
	p.desc = append(p.desc, bulletPrefix.ReplaceAllString(line, ""))
	return true
}

func (p *parser) open(title string) {
	p.title = title
	p.hasTitle = true
	p.desc = nil
	p.stackText = ""
}

// commit finalizes the current project, discarding it when its title is empty
// or reserved, or when it carries neither description nor stack text.
func (p *parser) commit() {
	defer func() {
		p.title = ""
		p.hasTitle = false
		p.desc = nil
		p.stackText = ""
	}()

	if !p.hasTitle {
		return
	}

	title := strings.TrimSpace(p.title)
	title = titleLabel.ReplaceAllString(title, "")
	title = multiSpace.ReplaceAllString(title, " ")
	if title == "" || invalidTitles[strings.TrimRight(strings.ToLower(title), ".")] {
		return
	}

	desc := strings.TrimSpace(strings.Join(p.desc, " "))
	stackText := strings.TrimSpace(p.stackText)
	if desc == "" && stackText == "" {
		return
	}

	p.projects = append(p.projects, types.ProjectRecord{
		Title:        title,
		Description:  desc,
		LanguageUsed: stackText,
		Stack:        splitStack(stackText),
	})
}

// splitStack normalizes raw stack text into a sorted set of lowercase tokens.
func splitStack(stackText string) []string {
	if stackText == "" {
		return nil
	}

	seen := make(map[string]bool)
	for _, tok := range stackSep.Split(stackText, -1) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			seen[tok] = true
		}
	}

	stack := make([]string, 0, len(seen))
	for tok := range seen {
		stack = append(stack, tok)
	}
	sort.Strings(stack)
	return stack
}

func afterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[idx+1:]
	}
	return ""
}
