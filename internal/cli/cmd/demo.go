package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabdrag/internal/app"
	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/infrastructure/feedback"
	"github.com/bnema/tabdrag/internal/ui/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive drag-and-drop playground",
	Long: `Run the terminal playground: a seeded board with an essentials grid,
pinned and regular lists, and a folder. Drag tabs with the mouse to
exercise the full engine, including insertion indicators and commits.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	var sink port.FeedbackSink = feedback.NopSink{}
	if a.Config.Drag.FeedbackEnabled {
		sink = feedback.NewLogSink(a.Logger())
	}

	m := tui.NewDemo(a.Ctx(), app.Options{
		Threshold:        a.Config.Drag.Threshold,
		HysteresisMargin: a.Config.Drag.HysteresisMargin,
		Feedback:         sink,
		History:          a.History,
		Logger:           a.Logger(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
