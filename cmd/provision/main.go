package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"home-monitor/db"
	"home-monitor/entities"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	claimedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type step int

const (
	stepLoading step = iota
	stepListing
	stepEnteringCount
	stepMinting
)

type model struct {
	step         step
	database     db.Database
	entries      []entities.Registered
	cursor       int
	currentInput string
	message      string
	quitting     bool
}

type entriesLoadedMsg []entities.Registered
type mintedMsg struct{ serials []string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(database db.Database) model {
	return model{
		step:     stepLoading,
		database: database,
		entries:  []entities.Registered{},
	}
}

func (m model) Init() tea.Cmd {
	return loadEntries(m.database)
}

func loadEntries(database db.Database) tea.Cmd {
	return func() tea.Msg {
		var entries []entities.Registered
		if err := database.GetDB().Order("id").Find(&entries).Error; err != nil {
			return errMsg{fmt.Errorf("failed to load allow-list: %w", err)}
		}
		return entriesLoadedMsg(entries)
	}
}

func mintSerials(database db.Database, count int) tea.Cmd {
	return func() tea.Msg {
		entries := make([]entities.Registered, 0, count)
		serials := make([]string, 0, count)
		for i := 0; i < count; i++ {
			serial := uuid.NewString()
			entries = append(entries, entities.Registered{ID: serial, Registered: false})
			serials = append(serials, serial)
		}
		if err := database.GetDB().Create(&entries).Error; err != nil {
			return errMsg{fmt.Errorf("failed to mint serials: %w", err)}
		}
		return mintedMsg{serials: serials}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.step != stepEnteringCount {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += "q"

		case "up", "k":
			if m.step == stepListing && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepListing && m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case "n":
			if m.step == stepListing {
				m.currentInput = ""
				m.step = stepEnteringCount
			} else if m.step == stepEnteringCount {
				m.currentInput += "n"
			}

		case "r":
			if m.step == stepListing {
				m.message = "Refreshing..."
				return m, loadEntries(m.database)
			}
			m.currentInput += "r"

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "esc":
			if m.step == stepEnteringCount {
				m.currentInput = ""
				m.step = stepListing
			}

		case "enter":
			if m.step == stepEnteringCount {
				count, err := strconv.Atoi(m.currentInput)
				if err != nil || count < 1 {
					m.message = errorStyle.Render("Enter a positive number")
					return m, nil
				}
				m.currentInput = ""
				m.step = stepMinting
				m.message = fmt.Sprintf("Minting %d serial(s)...", count)
				return m, mintSerials(m.database, count)
			}

		default:
			if m.step == stepEnteringCount {
				m.currentInput += msg.String()
			}
		}

	case entriesLoadedMsg:
		m.entries = []entities.Registered(msg)
		if m.cursor >= len(m.entries) && len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}
		m.step = stepListing

	case mintedMsg:
		m.message = successStyle.Render(fmt.Sprintf("Minted %d serial(s):\n%s", len(msg.serials), strings.Join(msg.serials, "\n")))
		return m, loadEntries(m.database)

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		m.step = stepListing
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Device Serial Provisioning\n\n"))

	switch m.step {
	case stepLoading:
		s.WriteString("Loading allow-list...\n")

	case stepListing:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		if len(m.entries) == 0 {
			s.WriteString("Allow-list is empty.\n")
		} else {
			s.WriteString(promptStyle.Render(fmt.Sprintf("Allow-list (%d entries):\n\n", len(m.entries))))
			for i, entry := range m.entries {
				cursor := " "
				style := normalStyle
				if m.cursor == i {
					cursor = ">"
					style = selectedStyle
				}
				state := "available"
				if entry.Registered {
					state = claimedStyle.Render("claimed")
				}
				s.WriteString(fmt.Sprintf("%s %s  %s\n", cursor, style.Render(entry.ID), state))
			}
		}
		s.WriteString("\nn: mint serials, r: refresh, q: quit\n")

	case stepEnteringCount:
		s.WriteString(promptStyle.Render("How many serials to mint?\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nEnter to confirm, Esc to cancel\n")

	case stepMinting:
		s.WriteString(m.message + "\n")
	}

	return s.String()
}

func main() {
	// Only the database settings matter here, so skip the full config check.
	_ = godotenv.Load()

	database, err := db.Connect()
	if err != nil {
		fmt.Println("Failed to connect to DB:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(database))
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
