package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nholm/sundial/internal/cli/formatter"
	"github.com/nholm/sundial/internal/contract"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive board for today's habits and routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("board needs a terminal; try: sundial today")
			}
			program := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Reload, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = boardKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "done")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type todayLoadedMsg struct {
	resp *contract.TodayResponse
	err  error
}

type completionLoggedMsg struct{ err error }

type boardModel struct {
	app     *App
	spin    spinner.Model
	help    help.Model
	resp    *contract.TodayResponse
	cursor  int
	loading bool
	status  string
	err     error
}

func newBoardModel(app *App) boardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	return boardModel{
		app:     app,
		spin:    sp,
		help:    help.New(),
		loading: true,
	}
}

func (m boardModel) loadToday() tea.Msg {
	resp, err := m.app.Today.Today(context.Background(), contract.TodayRequest{})
	return todayLoadedMsg{resp: resp, err: err}
}

func (m boardModel) logCompletion(habitID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.app.Habits.LogCompletion(context.Background(), habitID, time.Now().UTC(), nil)
		return completionLoggedMsg{err: err}
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadToday)
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case todayLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.resp = msg.resp
		if m.resp != nil && m.cursor >= len(m.resp.Habits) {
			m.cursor = 0
		}
		return m, nil

	case completionLoggedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		m.loading = true
		return m, m.loadToday

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, boardKeys.Down):
			if m.resp != nil && m.cursor < len(m.resp.Habits)-1 {
				m.cursor++
			}
		case key.Matches(msg, boardKeys.Reload):
			m.loading = true
			return m, m.loadToday
		case key.Matches(msg, boardKeys.Toggle):
			if m.resp == nil || m.cursor >= len(m.resp.Habits) {
				return m, nil
			}
			dh := m.resp.Habits[m.cursor]
			if dh.DoneToday {
				m.status = dh.Habit.Name + " is already done today"
				return m, nil
			}
			return m, m.logCompletion(dh.Habit.ID)
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n %s loading today...\n", m.spin.View())
	}
	if m.err != nil {
		return fmt.Sprintf("\n %s\n", formatter.StyleRed.Render(m.err.Error()))
	}
	if m.resp == nil {
		return ""
	}

	var view string

	badges := ""
	for i, dt := range m.resp.DayTypes {
		if i > 0 {
			badges += " "
		}
		badges += formatter.DayTypeBadge(dt)
	}
	view += fmt.Sprintf("%s  %s  %s\n\n",
		formatter.Bold(m.resp.Date.Format("Monday, Jan 2")),
		badges,
		formatter.HealthIndicator(m.resp.Health),
	)

	if len(m.resp.Habits) == 0 {
		view += formatter.Dim("Nothing due today.") + "\n"
	}
	for i, dh := range m.resp.Habits {
		pointer := "  "
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("> ")
		}
		check := formatter.StyleDim.Render("[ ]")
		name := formatter.StyleFg.Render(dh.Habit.Name)
		if dh.DoneToday {
			check = formatter.StyleGreen.Render("[x]")
			name = formatter.StyleDim.Render(dh.Habit.Name)
		}
		view += fmt.Sprintf("%s%s %s  %s  %s\n",
			pointer, check, name,
			formatter.StyleBlue.Render(string(dh.TimeOfDay)),
			formatter.StreakBadge(dh.Streak),
		)
	}

	if len(m.resp.Routines) > 0 {
		view += "\n"
		for _, rt := range m.resp.Routines {
			view += fmt.Sprintf("  %s %s  %s\n",
				formatter.StylePurple.Render("▸"),
				formatter.StyleFg.Render(rt.Name),
				formatter.Dim(formatter.FormatMinutes(rt.TotalDurationMin())),
			)
		}
	}

	if m.status != "" {
		view += "\n" + formatter.StyleYellow.Render(m.status) + "\n"
	}
	view += "\n" + m.help.View(boardKeys)
	return view
}
