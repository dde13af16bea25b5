package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help box shown after SPC, at most
// width columns wide. It lists the keys that can follow the sequence typed so
// far, filtered by the handler's mode.
func RenderKeybindHelp(keyHandler *KeyHandler, width int) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.HelpKey
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	// Border and padding take four columns; the prefix label and its space
	// take the rest.
	prefix := keyHandler.Pending()
	helpModel.Width = max(width-4-lipgloss.Width(prefix)-1, 0)
	content := Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings)

	return Styles.HelpBox.MaxWidth(width).Render(content)
}
