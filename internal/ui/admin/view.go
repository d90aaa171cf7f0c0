// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the password gate or the authoring form.
func (m Model) View() string {
	var content string
	if m.session.AdminUnlocked() {
		content = m.renderForm()
	} else {
		content = m.renderGate()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderGate draws the password prompt.
func (m Model) renderGate() string {
	var b strings.Builder
	b.WriteString(m.theme.AdminTitle.Render("Admin Access"))
	b.WriteString("\n\n")
	b.WriteString(m.passInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	return m.theme.AdminPanel.Render(b.String())
}

// renderForm draws the question/answer authoring form.
func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(m.theme.AdminTitle.Render("Add FAQ"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.AdminLabel.Render("Question"))
	b.WriteString("\n")
	b.WriteString(m.question.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.AdminLabel.Render("Answer"))
	b.WriteString("\n")
	b.WriteString(m.answer.View())
	b.WriteString("\n\n")
	if m.submitting {
		b.WriteString(m.theme.AdminLabel.Render("Saving..."))
	} else {
		b.WriteString(m.theme.AdminLabel.Render("Tab: switch field  Enter: submit"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	return m.theme.AdminPanel.Render(b.String())
}

// renderNotice draws the transient form notice, or an empty placeholder
// line so the panel height is stable.
func (m Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeOK {
		return m.theme.NoticeOK.Render(m.notice)
	}
	return m.theme.NoticeError.Render(m.notice)
}
