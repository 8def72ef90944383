// Package guide parses the performance guide's markdown into its editorial
// structure and lints it. The guide format is narrow: a title, a table of
// contents, and titled sections that each pair one recommendation paragraph
// with exactly two fenced Go blocks (the discouraged pattern, then the
// preferred one). The parser is a line scanner; headings and fences are the
// only markdown constructs it needs to understand.
package guide

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Document is one parsed guide file.
type Document struct {
	Path          string     `json:"path"`
	Title         string     `json:"title"`
	TOC           []TOCEntry `json:"toc"`
	Sections      []Section  `json:"sections"`
	UnclosedFence int        `json:"unclosed_fence,omitempty"` // line of a fence still open at EOF, 0 if none
}

// TOCEntry is one `- [Text](#anchor)` bullet from the table of contents.
type TOCEntry struct {
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Line   int    `json:"line"`
}

// Section is one `##` heading with its recommendation and code blocks.
type Section struct {
	Title          string      `json:"title"`
	Anchor         string      `json:"anchor"`
	Recommendation string      `json:"recommendation"`
	Blocks         []CodeBlock `json:"blocks"`
	Line           int         `json:"line"`
}

// CodeBlock is one fenced block belonging to a section.
type CodeBlock struct {
	Lang string `json:"lang"`
	Code string `json:"code"`
	Line int    `json:"line"`
}

// tocEntryRe matches a TOC bullet: "- [Select only...](#select-only...)".
var tocEntryRe = regexp.MustCompile(`^[-*]\s+\[([^\]]+)\]\(#([^)]+)\)\s*$`)

// Parse reads markdown from r and extracts the guide structure. Lines
// inside fenced blocks are never interpreted as headings or TOC entries.
func Parse(path string, r io.Reader) (*Document, error) {
	doc := &Document{Path: path}

	var (
		current    *Section // section being accumulated, nil in the preamble
		inFence    bool
		fenceLine  int
		fenceLang  string
		fenceBody  []string
		inPara     bool // accumulating the recommendation paragraph
		sawContent bool
	)

	flushBlock := func() {
		if current != nil {
			current.Blocks = append(current.Blocks, CodeBlock{
				Lang: fenceLang,
				Code: strings.Join(fenceBody, "\n"),
				Line: fenceLine,
			})
		}
		fenceBody = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			sawContent = true
		}

		// Fence delimiters toggle state; fence interiors are opaque.
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			if inFence {
				inFence = false
				flushBlock()
			} else {
				inFence = true
				fenceLine = lineNo
				fenceLang = strings.TrimSpace(strings.TrimLeft(trimmed, "`~"))
				inPara = false
			}
			continue
		}
		if inFence {
			fenceBody = append(fenceBody, line)
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "## "), trimmed == "##":
			title := strings.TrimSpace(strings.TrimPrefix(trimmed, "##"))
			doc.Sections = append(doc.Sections, Section{
				Title:  title,
				Anchor: Anchor(title),
				Line:   lineNo,
			})
			current = &doc.Sections[len(doc.Sections)-1]
			inPara = false

		case strings.HasPrefix(trimmed, "# "):
			if doc.Title == "" {
				doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			}
			inPara = false

		case current == nil:
			// Preamble: collect TOC bullets, ignore other prose.
			if m := tocEntryRe.FindStringSubmatch(trimmed); m != nil {
				doc.TOC = append(doc.TOC, TOCEntry{Text: m[1], Anchor: m[2], Line: lineNo})
			}

		case trimmed == "":
			inPara = false

		default:
			// First prose paragraph after the heading is the recommendation.
			if len(current.Blocks) == 0 && (current.Recommendation == "" || inPara) {
				if current.Recommendation == "" {
					current.Recommendation = trimmed
				} else {
					current.Recommendation += " " + trimmed
				}
				inPara = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	if !sawContent {
		return nil, fmt.Errorf("parse %s: empty document", path)
	}
	if inFence {
		doc.UnclosedFence = fenceLine
		flushBlock()
	}

	return doc, nil
}

// Anchor converts a section title to its GitHub-style anchor: lowercased,
// punctuation stripped, spaces replaced with hyphens.
func Anchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// GenerateTOC renders the table-of-contents bullet list for doc's sections.
// It is the remediation output for the toc-* lint rules.
func GenerateTOC(doc *Document) string {
	var b strings.Builder
	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "- [%s](#%s)\n", s.Title, s.Anchor)
	}
	return b.String()
}
