package guide

import (
	"fmt"
	"sort"
)

// Rule names, stable identifiers for configuration and reports.
const (
	RuleSectionUntitled         = "section-untitled"
	RuleSectionNoRecommendation = "section-no-recommendation"
	RuleSectionBlockCount       = "section-block-count"
	RuleBlockLanguage           = "block-language"
	RuleBlockUnclosed           = "block-unclosed"
	RuleDuplicateTitle          = "duplicate-title"
	RuleTOCMissingEntry         = "toc-missing-entry"
	RuleTOCStaleEntry           = "toc-stale-entry"
	RuleTOCOrder                = "toc-order"
	RuleTOCEmpty                = "toc-empty"
)

// AllRules lists every rule Lint can emit.
func AllRules() []string {
	return []string{
		RuleSectionUntitled,
		RuleSectionNoRecommendation,
		RuleSectionBlockCount,
		RuleBlockLanguage,
		RuleBlockUnclosed,
		RuleDuplicateTitle,
		RuleTOCMissingEntry,
		RuleTOCStaleEntry,
		RuleTOCOrder,
		RuleTOCEmpty,
	}
}

// Rules configures the lint pass.
type Rules struct {
	FenceLanguage    string              // required language of every fenced block
	BlocksPerSection int                 // required number of fenced blocks per section
	Disabled         map[string]struct{} // rule names to skip
}

// DefaultRules returns the guide's editorial contract: two Go blocks per
// section, no rules disabled.
func DefaultRules() Rules {
	return Rules{FenceLanguage: "go", BlocksPerSection: 2}
}

func (r Rules) enabled(name string) bool {
	_, off := r.Disabled[name]
	return !off
}

// Violation is one editorial defect found in a document.
type Violation struct {
	Rule    string `json:"rule"`
	Path    string `json:"path"`
	Section string `json:"section,omitempty"`
	Message string `json:"message"`
	Line    int    `json:"line"`
}

// Lint checks doc against the editorial contract. It is pure and
// deterministic; violations come back ordered by line.
func Lint(doc *Document, rules Rules) []Violation {
	var out []Violation
	add := func(rule string, line int, section, format string, args ...any) {
		if !rules.enabled(rule) {
			return
		}
		out = append(out, Violation{
			Rule:    rule,
			Path:    doc.Path,
			Line:    line,
			Section: section,
			Message: fmt.Sprintf(format, args...),
		})
	}

	seen := map[string]string{} // anchor -> first title
	for _, s := range doc.Sections {
		if s.Title == "" {
			add(RuleSectionUntitled, s.Line, "", "section heading has no title")
		}
		if s.Recommendation == "" {
			add(RuleSectionNoRecommendation, s.Line, s.Title,
				"no recommendation paragraph before the first code block")
		}
		if want := rules.BlocksPerSection; len(s.Blocks) != want {
			add(RuleSectionBlockCount, s.Line, s.Title,
				"section has %d fenced code blocks, want %d", len(s.Blocks), want)
		}
		for _, b := range s.Blocks {
			if b.Lang != rules.FenceLanguage {
				add(RuleBlockLanguage, b.Line, s.Title,
					"fenced block language is %q, want %q", b.Lang, rules.FenceLanguage)
			}
		}
		if first, dup := seen[s.Anchor]; dup && s.Anchor != "" {
			add(RuleDuplicateTitle, s.Line, s.Title,
				"section title collides with %q", first)
		} else if s.Anchor != "" {
			seen[s.Anchor] = s.Title
		}
	}

	if doc.UnclosedFence > 0 {
		add(RuleBlockUnclosed, doc.UnclosedFence, "", "code fence is never closed")
	}

	lintTOC(doc, rules, add)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

// lintTOC cross-checks the table of contents against the body sections.
func lintTOC(doc *Document, rules Rules, add func(rule string, line int, section, format string, args ...any)) {
	if len(doc.Sections) == 0 {
		return
	}
	if len(doc.TOC) == 0 {
		add(RuleTOCEmpty, 1, "", "document has %d sections but no table of contents", len(doc.Sections))
		return
	}

	bodyAnchors := make(map[string]int, len(doc.Sections)) // anchor -> body position
	for i, s := range doc.Sections {
		if _, dup := bodyAnchors[s.Anchor]; !dup {
			bodyAnchors[s.Anchor] = i
		}
	}
	tocAnchors := make(map[string]struct{}, len(doc.TOC))
	for _, e := range doc.TOC {
		tocAnchors[e.Anchor] = struct{}{}
	}

	for _, s := range doc.Sections {
		if s.Anchor == "" {
			continue // untitled sections are reported by section-untitled
		}
		if _, ok := tocAnchors[s.Anchor]; !ok {
			add(RuleTOCMissingEntry, s.Line, s.Title,
				"section %q is missing from the table of contents", s.Title)
		}
	}

	prev := -1
	ordered := true
	for _, e := range doc.TOC {
		pos, ok := bodyAnchors[e.Anchor]
		if !ok {
			add(RuleTOCStaleEntry, e.Line, "",
				"table of contents links to %q, which matches no section", e.Text)
			continue
		}
		if pos < prev {
			ordered = false
		}
		prev = pos
	}
	if !ordered {
		add(RuleTOCOrder, doc.TOC[0].Line, "",
			"table of contents order differs from body order")
	}
}
