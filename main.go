// faqbot TUI - A terminal client for an FAQ chatbot server.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jeranaias/faqbot-tui/internal/cli"
	"github.com/jeranaias/faqbot-tui/internal/config"
	"github.com/jeranaias/faqbot-tui/internal/diag"
	"github.com/jeranaias/faqbot-tui/internal/faq"
	"github.com/jeranaias/faqbot-tui/internal/session"
	"github.com/jeranaias/faqbot-tui/internal/ui/admin"
	"github.com/jeranaias/faqbot-tui/internal/ui/call"
	"github.com/jeranaias/faqbot-tui/internal/ui/chat"
	"github.com/jeranaias/faqbot-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// A .env file is optional; it feeds the FAQBOT_* overrides.
	_ = godotenv.Load()

	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		err = cli.HandleAsk(args)
	case cli.CmdAddFAQ:
		err = cli.HandleAddFAQ(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}

	if err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}
}

// runTUI starts the interactive application.
func runTUI(args cli.Args) {
	cfg := config.Global()

	if args.Server != "" {
		cfg.Server.URL = args.Server
	}
	if args.Language != "" {
		cfg.Chat.Language = args.Language
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to a file so the alternate screen stays clean.
	if cfg.Log.Enabled {
		if path, err := cfg.LogPath(); err == nil {
			if err := diag.Init(path); err == nil {
				defer diag.Close()
			}
		}
	}
	diag.Info("main", "starting faqbot "+Version)

	theme := styles.NewTheme()

	clientCfg := faq.DefaultConfig()
	clientCfg.BaseURL = cfg.Server.URL
	clientCfg.Timeout = cfg.ServerTimeout()
	client := faq.NewClientWithConfig(clientCfg)

	// One session per program run; discarded at exit.
	sess := session.New()
	if locale := session.Locale(cfg.Chat.Language); locale.IsSupported() {
		sess.SetLocale(locale)
	}

	m := newAppModel(theme, cfg, sess, client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running faqbot: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// State selects which surface is on screen. Chat and call follow the
// session mode; admin is an overlay surface reachable from either.
type State int

const (
	StateChat State = iota
	StateCall
	StateAdmin
)

// headerHeight is the brand/mode/language bar at the top of every surface.
const headerHeight = 1

// appModel is the root Bubble Tea model. It owns the header and the
// surface switch; each surface keeps its own inner model.
type appModel struct {
	theme *styles.Theme
	cfg   *config.Config

	state   State
	session *session.Session

	chatView  chat.Model
	callView  call.Model
	adminView admin.Model

	width  int
	height int
}

// newAppModel wires the surfaces to one shared session and client.
func newAppModel(theme *styles.Theme, cfg *config.Config, sess *session.Session, client *faq.Client) appModel {
	return appModel{
		theme:     theme,
		cfg:       cfg,
		state:     StateChat,
		session:   sess,
		chatView:  chat.New(theme, sess, client),
		callView:  call.New(theme, sess, cfg.Call.ProviderURL),
		adminView: admin.New(theme, sess, client, cfg.Admin.Password),
	}
}

// Init implements tea.Model.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.chatView.Init(), m.adminView.Init())
}

// Update implements tea.Model.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := msg.Height - headerHeight
		m.chatView.SetSize(msg.Width, inner)
		m.callView.SetSize(msg.Width, inner)
		m.adminView.SetSize(msg.Width, inner)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+t":
			// Toggle between chat and call support. The session resets the
			// call widget on every transition; the transcript survives.
			if m.session.Mode() == session.ModeChat {
				m.session.SetMode(session.ModeCall)
				m.state = StateCall
			} else {
				m.session.SetMode(session.ModeChat)
				m.state = StateChat
			}
			return m, nil

		case "ctrl+l":
			m.session.SetLocale(session.NextLocale(m.session.Locale()))
			return m, nil

		case "ctrl+a":
			if m.state != StateAdmin {
				m.state = StateAdmin
				return m, m.adminView.Init()
			}
			return m, nil

		case "esc":
			// Esc leaves the admin surface; the chat/call surfaces have no
			// use for it.
			if m.state == StateAdmin {
				m.state = m.stateForMode()
				return m, nil
			}
		}
	}

	return m.updateSurface(msg)
}

// updateSurface routes a message to the active surface.
func (m appModel) updateSurface(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateChat:
		m.chatView, cmd = m.chatView.Update(msg)
	case StateCall:
		m.callView, cmd = m.callView.Update(msg)
	case StateAdmin:
		m.adminView, cmd = m.adminView.Update(msg)
	}
	return m, cmd
}

// stateForMode maps the session mode back to a surface after leaving the
// admin overlay.
func (m appModel) stateForMode() State {
	if m.session.Mode() == session.ModeCall {
		return StateCall
	}
	return StateChat
}

// View implements tea.Model.
func (m appModel) View() string {
	var body string
	switch m.state {
	case StateChat:
		body = m.chatView.View()
	case StateCall:
		body = m.callView.View()
	case StateAdmin:
		body = m.adminView.View()
	}
	return m.renderHeader() + "\n" + body
}

// renderHeader draws the brand, active mode, and active language.
func (m appModel) renderHeader() string {
	brand := m.theme.HeaderBrand.Render(" FAQ Bot ")
	mode := m.theme.HeaderMode.Render(m.session.Mode().DisplayName())
	lang := m.theme.HeaderLang.Render(m.session.Locale().DisplayName())
	if m.state == StateAdmin {
		mode = m.theme.HeaderMode.Render("Admin")
	}

	left := brand + " " + mode
	right := lang
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.theme.Header.Width(m.width).Render(
		left + lipgloss.NewStyle().Width(gap).Render("") + right)
}
