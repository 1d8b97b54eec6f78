// Package home is the main menu screen.
package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/wordvault/internal/deck"
	lookupsvc "github.com/minhvu/wordvault/internal/lookup"
	"github.com/minhvu/wordvault/internal/router"
	"github.com/minhvu/wordvault/internal/screen"
	"github.com/minhvu/wordvault/internal/screens/browse"
	lookupscreen "github.com/minhvu/wordvault/internal/screens/lookup"
	sessionscreen "github.com/minhvu/wordvault/internal/screens/session"
	"github.com/minhvu/wordvault/internal/speech"
	"github.com/minhvu/wordvault/internal/ui/components"
	"github.com/minhvu/wordvault/internal/ui/theme"
)

// HomeScreen is the application's main menu.
type HomeScreen struct {
	deck    *deck.Deck
	svc     *lookupsvc.Service
	speaker *speech.Speaker

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The lookup service may be nil when no
// provider is configured; the menu disables lookup in that case.
func New(d *deck.Deck, svc *lookupsvc.Service, speaker *speech.Speaker) *HomeScreen {
	h := &HomeScreen{deck: d, svc: svc, speaker: speaker}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

// buildItems recomputes menu entries from the current deck state. Due
// counts and disabled flags go stale while a study screen is stacked on
// top, so the menu is rebuilt whenever the home screen handles input.
func (h *HomeScreen) buildItems() []components.MenuItem {
	now := time.Now().UnixMilli()
	due := len(h.deck.Due(now))
	total := h.deck.Len()

	items := []components.MenuItem{
		{
			Label:    "LOOK UP A WORD",
			Disabled: h.svc == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lookupscreen.New(h.svc, h.deck, h.speaker)}
				}
			},
		},
		{
			Label:    fmt.Sprintf("REVIEW DUE (%d)", due),
			Disabled: due == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					dueCards := h.deck.Due(time.Now().UnixMilli())
					return router.PushScreenMsg{
						Screen: sessionscreen.New(dueCards, true, h.deck, h.speaker),
					}
				}
			},
		},
		{
			Label:    "STUDY ALL",
			Disabled: total == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(h.deck.Cards(), false, h.deck, h.speaker),
					}
				}
			},
		},
		{
			Label:    fmt.Sprintf("BROWSE CARDS (%d)", total),
			Disabled: total == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: browse.New(h.deck, h.speaker)}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	if h.svc == nil {
		items[0].Hint = "set an API key to enable"
	}
	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// Refresh labels and disabled states, keeping the cursor.
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.buildItems())
		if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
			h.menu.Selected = selected
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("WordVault")
	subtitle := theme.Subtitle.Render("English ↔ Vietnamese vocabulary trainer")

	now := time.Now().UnixMilli()
	stats := theme.Hint.Render(fmt.Sprintf(
		"%d cards saved   %d due for review",
		h.deck.Len(), len(h.deck.Due(now))))

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		stats,
		"",
		h.menu.View(),
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
