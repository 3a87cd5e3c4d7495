package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xab-mack/stylusaudit/internal/model"
)

type row struct {
	severity model.Severity
	vuln     model.Vulnerability
}

type modelT struct {
	score  float64
	rows   []row
	cursor int
}

func initialModel(rep *model.Report) modelT {
	m := modelT{score: rep.RiskScore}
	for _, v := range rep.All() {
		m.rows = append(m.rows, row{severity: v.Severity, vuln: v})
	}
	return m
}

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Findings (%d)  Risk Score %.1f/10\n\n", len(m.rows), m.score)
	for i, r := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s[%s] %s\n", marker, r.severity, r.vuln.Name)
	}
	if len(m.rows) > 0 && m.cursor < len(m.rows) {
		v := m.rows[m.cursor].vuln
		fmt.Fprintf(&b, "\nRisk: %s\nMitigation: %s\n", v.RiskDescription, v.Recommendation)
	}
	b.WriteString("\nup/down navigate, q quit\n")
	return b.String()
}

// Run launches a minimal list view over the aggregated report
func Run(rep *model.Report) error {
	p := tea.NewProgram(initialModel(rep))
	_, err := p.Run()
	return err
}
