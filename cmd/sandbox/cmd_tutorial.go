package main

import (
	"fmt"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sandbox/cmd/sandbox/ui"
	"sandbox/internal/logging"
	"sandbox/internal/tutorial"
)

var tutorialCmd = &cobra.Command{
	Use:   "tutorial [chat|edit|autocomplete|agent]",
	Short: "Read the assistant walkthrough",
	Long: `Prints the walkthrough for the assistant's Chat, Edit, Autocomplete and
Agent features, or a single section when one is named. Shortcuts are shown
for the current platform (Cmd on macOS, Ctrl elsewhere).

With --interactive the lessons open in a pager: n/p to move between lessons,
q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTutorial,
}

var (
	tutorialInteractive bool
	tutorialPlain       bool
	tutorialOS          string
)

func init() {
	tutorialCmd.Flags().BoolVarP(&tutorialInteractive, "interactive", "i", false, "Page through lessons interactively")
	tutorialCmd.Flags().BoolVar(&tutorialPlain, "plain", false, "Print raw markdown without terminal styling")
	tutorialCmd.Flags().StringVar(&tutorialOS, "os", runtime.GOOS, "Platform to show shortcuts for (darwin, linux, windows)")
}

func runTutorial(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.Get(logging.CategoryTutorial)

	book, err := tutorial.Load()
	if err != nil {
		return err
	}

	goos := tutorialOS
	if goos == "" {
		goos = runtime.GOOS
	}

	var renderer *tutorial.Renderer
	if !tutorialPlain {
		renderer, err = tutorial.NewRenderer(c.Tutorial.Style, c.Tutorial.WordWrap)
		if err != nil {
			log.Warn("markdown renderer unavailable, printing plain text", zap.Error(err))
		}
	}

	start := 0
	var md string
	if len(args) == 1 {
		section, err := tutorial.ParseSection(args[0])
		if err != nil {
			return err
		}
		lesson, err := book.Lesson(section)
		if err != nil {
			return err
		}
		md = lesson.Markdown(goos)
		for i, s := range tutorial.Sections {
			if s == section {
				start = i
			}
		}
	} else {
		md = book.Markdown(goos)
	}

	if tutorialInteractive {
		pages, err := renderPages(book, renderer, goos)
		if err != nil {
			return err
		}
		log.Debug("starting interactive tutorial", zap.Int("start", start))
		m := ui.NewPagerModel(pages, start, ui.NewStyles(ui.ThemeFor(c.Tutorial.Style)))
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render tutorial: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderPages renders every lesson as a pager page.
func renderPages(book *tutorial.Book, renderer *tutorial.Renderer, goos string) ([]ui.Page, error) {
	lessons := book.Lessons()
	pages := make([]ui.Page, 0, len(lessons))
	for _, l := range lessons {
		body, err := renderer.Render(l.Markdown(goos))
		if err != nil {
			return nil, fmt.Errorf("failed to render %s lesson: %w", l.Section, err)
		}
		pages = append(pages, ui.Page{Title: l.Title, Body: body})
	}
	return pages, nil
}
