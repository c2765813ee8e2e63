package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// chartListModel is the bubbletea model for the interactive chart picker.
type chartListModel struct {
	charts   []string
	cursor   int
	selected string
}

func newChartListModel() chartListModel {
	return chartListModel{charts: chartNames}
}

func (m chartListModel) Init() tea.Cmd {
	return nil
}

func (m chartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.charts)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.charts[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m chartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.charts {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(name) + "\n")
		b.WriteString("    " + listDimStyle.Render(chartDescriptions[name]) + "\n")
	}
	return b.String()
}

// newBrowseCmd creates the browse command: an interactive picker that
// renders the selected chart with default settings.
func newBrowseCmd() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a chart interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newChartListModel())
			result, err := p.Run()
			if err != nil {
				return fmt.Errorf("chart picker: %w", err)
			}

			m, ok := result.(chartListModel)
			if !ok || m.selected == "" {
				printInfo("No chart selected")
				return nil
			}

			return runChart(cmd.Context(), m.selected, opts, renderOpts{})
		},
	}

	addChartFlags(cmd, &opts)
	return cmd
}
