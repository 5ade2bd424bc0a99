// Package tutorial holds the assistant walkthrough (Chat, Edit, Autocomplete,
// Agent) as structured lessons and renders them for the terminal.
package tutorial

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

// ErrUnknownSection is returned for section names outside the walkthrough.
var ErrUnknownSection = errors.New("unknown tutorial section")

// Section identifies one lesson of the walkthrough.
type Section string

const (
	SectionChat         Section = "chat"
	SectionEdit         Section = "edit"
	SectionAutocomplete Section = "autocomplete"
	SectionAgent        Section = "agent"
)

// Sections is the fixed walkthrough order.
var Sections = []Section{SectionChat, SectionEdit, SectionAutocomplete, SectionAgent}

// ParseSection resolves a section name case-insensitively.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Step is one instruction, with an optional shortcut chord such as "Mod+L".
type Step struct {
	Text     string `yaml:"text"`
	Shortcut string `yaml:"shortcut"`
}

// Lesson is the walkthrough for one section.
type Lesson struct {
	Section Section `yaml:"section"`
	Title   string  `yaml:"title"`
	Steps   []Step  `yaml:"steps"`
}

// Book is the full set of lessons in walkthrough order.
type Book struct {
	lessons []Lesson
	index   map[Section]int
}

// Load parses the embedded lessons.
func Load() (*Book, error) {
	return Parse(lessonsYAML)
}

// Parse builds a Book from YAML. Every section must appear exactly once;
// lessons are reordered to match Sections.
func Parse(data []byte) (*Book, error) {
	var raw []Lesson
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse lessons: %w", err)
	}

	bySection := make(map[Section]Lesson, len(raw))
	for _, l := range raw {
		s, err := ParseSection(string(l.Section))
		if err != nil {
			return nil, err
		}
		if _, dup := bySection[s]; dup {
			return nil, fmt.Errorf("duplicate lesson for section %q", s)
		}
		l.Section = s
		bySection[s] = l
	}

	b := &Book{index: make(map[Section]int, len(Sections))}
	for _, s := range Sections {
		l, ok := bySection[s]
		if !ok {
			return nil, fmt.Errorf("missing lesson for section %q", s)
		}
		b.index[s] = len(b.lessons)
		b.lessons = append(b.lessons, l)
	}
	return b, nil
}

// Lessons returns the lessons in walkthrough order.
func (b *Book) Lessons() []Lesson {
	out := make([]Lesson, len(b.lessons))
	copy(out, b.lessons)
	return out
}

// Lesson returns the lesson for s.
func (b *Book) Lesson(s Section) (Lesson, error) {
	i, ok := b.index[s]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	return b.lessons[i], nil
}

// FormatShortcut renders a chord for the given GOOS: Mod becomes Cmd on
// darwin and Ctrl elsewhere.
func FormatShortcut(chord, goos string) string {
	if chord == "" {
		return ""
	}
	mod := "Ctrl"
	if goos == "darwin" {
		mod = "Cmd"
	}
	keys := strings.Split(chord, "+")
	for i, k := range keys {
		if k == "Mod" {
			keys[i] = mod
		}
	}
	return strings.Join(keys, " + ")
}

// Markdown renders the lesson as markdown for goos.
func (l Lesson) Markdown(goos string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", l.Title)
	for i, st := range l.Steps {
		fmt.Fprintf(&sb, "%d. %s", i+1, st.Text)
		if sc := FormatShortcut(st.Shortcut, goos); sc != "" {
			fmt.Fprintf(&sb, " (`%s`)", sc)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Markdown renders every lesson for goos.
func (b *Book) Markdown(goos string) string {
	var sb strings.Builder
	sb.WriteString("# Assistant walkthrough\n\n")
	for i, l := range b.lessons {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(l.Markdown(goos))
	}
	return sb.String()
}
