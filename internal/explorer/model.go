// Package explorer is a terminal surface for the destination card list.
// Keystrokes drive a cards.Controller and every pass it renders is shown
// as a styled list.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"travelshowcase/internal/cards"
	"travelshowcase/internal/destinations"
)

// Model is the bubbletea model of the explorer.
type Model struct {
	svc        *destinations.Service
	controller *cards.Controller
	mailbox    *mailbox
	now        func() time.Time

	keys   KeyMap
	styles Styles
	help   help.Model
	search textinput.Model

	pass cards.Pass
}

// NewModel starts a controller session over the loaded service. opts are
// applied after the service defaults.
func NewModel(svc *destinations.Service, opts ...cards.Option) Model {
	box := newMailbox()
	controller := svc.NewController(box, opts...)

	search := textinput.New()
	search.Prompt = "search: "
	search.Placeholder = "press / to search"
	search.CharLimit = 64

	return Model{
		svc:        svc,
		controller: controller,
		mailbox:    box,
		now:        time.Now,
		keys:       DefaultKeyMap,
		styles:     DefaultStyles(),
		help:       help.New(),
		search:     search,
		pass:       controller.Snapshot(),
	}
}

// Close stops the controller and releases a pending listen command.
func (model Model) Close() {
	model.controller.Close()
	model.mailbox.close()
}

// State returns the controller's current view state.
func (model Model) State() cards.ViewState {
	return model.controller.State()
}

// Pass returns the pass the model currently displays.
func (model Model) Pass() cards.Pass {
	return model.pass
}

// Init implements tea.Model. Starts listening for render passes.
func (model Model) Init() tea.Cmd {
	return model.mailbox.listen()
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case passMsg:
		model.accept(message.pass)
		return model, model.mailbox.listen()

	case tea.WindowSizeMsg:
		model.help.Width = message.Width
		return model, nil

	case tea.KeyMsg:
		if model.search.Focused() {
			return model.handleSearchKeys(message)
		}
		return model.handleListKeys(message)
	}
	return model, nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Search):
		return model, model.search.Focus()

	case key.Matches(message, model.keys.NextCategory):
		model.controller.SetFilter(model.cycleCategory(1))

	case key.Matches(message, model.keys.PrevCategory):
		model.controller.SetFilter(model.cycleCategory(-1))

	case key.Matches(message, model.keys.Sort):
		model.controller.SetSortMode(string(model.nextSortMode()))

	case key.Matches(message, model.keys.LoadMore):
		if !model.pass.MoreAvailable {
			return model, nil
		}
		model.controller.LoadMore()

	default:
		return model, nil
	}

	model.accept(model.controller.Snapshot())
	return model, nil
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.Submit):
		model.search.Blur()
		model.controller.FlushSearch()
		model.accept(model.controller.Snapshot())
		return model, nil

	case key.Matches(message, model.keys.Cancel):
		model.search.Blur()
		return model, nil
	}

	before := model.search.Value()
	var command tea.Cmd
	model.search, command = model.search.Update(message)
	if value := model.search.Value(); value != before {
		model.controller.SetSearchQuery(value)
	}
	return model, command
}

// accept displays pass unless a newer one is already shown.
func (model *Model) accept(pass cards.Pass) {
	if pass.Seq < model.pass.Seq {
		return
	}
	model.pass = pass
}

func (model Model) cycleCategory(step int) string {
	keys := model.controller.Categories()
	current := slices.Index(keys, model.pass.State.ActiveFilter)
	if current < 0 {
		return cards.FilterAll
	}
	return keys[(current+step+len(keys))%len(keys)]
}

func (model Model) nextSortMode() cards.SortMode {
	current := slices.Index(cards.SortModes, model.pass.State.SortMode)
	return cards.SortModes[(current+1)%len(cards.SortModes)]
}

// View implements tea.Model.
func (model Model) View() string {
	var b strings.Builder

	b.WriteString(model.styles.Title.Render("Explore destinations"))
	b.WriteString("\n")
	b.WriteString(model.search.View())
	b.WriteString("\n\n")

	buttons := make([]string, len(model.pass.Buttons))
	for i, button := range model.pass.Buttons {
		style := model.styles.Category
		if button.Pressed {
			style = model.styles.CategoryActive
		}
		buttons[i] = style.Render(button.Label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("  ")
	b.WriteString(model.styles.Sort.Render("sort: " + model.pass.State.SortMode.Label()))
	b.WriteString("\n\n")

	if model.pass.Empty {
		b.WriteString(model.styles.Empty.Render("No destinations match your search."))
		b.WriteString("\n")
	}
	now := model.now()
	for _, record := range model.pass.Shown {
		b.WriteString(model.cardLine(record, now))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("showing %d of %d", len(model.pass.Shown), model.pass.Matched)
	if model.pass.MoreAvailable {
		status += " · m for more"
	}
	b.WriteString(model.styles.Status.Render(status))
	b.WriteString("\n")
	b.WriteString(model.help.View(model.keys))
	return b.String()
}

func (model Model) cardLine(record cards.Record, now time.Time) string {
	meta := []string{cards.CategoryLabel(record.Category)}
	if record.Schedule.Raw != "" {
		meta = append(meta, record.Schedule.Raw)
	}
	if local, ok := model.svc.LocalTime(record.Index, now); ok {
		meta = append(meta, "local "+local)
	}
	return model.styles.CardTitle.Render(record.Title) + "  " +
		model.styles.CardMeta.Render(strings.Join(meta, " · "))
}

// Run shows the explorer until the user quits or ctx is cancelled.
func Run(ctx context.Context, svc *destinations.Service, opts ...cards.Option) error {
	model := NewModel(svc, opts...)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run explorer: %w", err)
	}
	return nil
}
