// internal/tui/app.go
//
// This is the terminal front end for the EMIS dashboard. It uses bubbletea,
// which follows The Elm Architecture:
//
// 1. Model: the App below, holding a snapshot of the dashboard state
// 2. Update: handles keys, store changes and finished requests
// 3. View: renders the snapshot through the dashboard selectors
//
// The App never edits dashboard state itself. Keys trigger dashboard
// operations, the store reduces the resulting actions and the change feed
// brings the next snapshot back in as a message.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/emis-dashboard/internal/alerts"
	"github.com/kingrea/emis-dashboard/internal/dashboard"
	"github.com/kingrea/emis-dashboard/internal/logbook"
	"github.com/kingrea/emis-dashboard/internal/plans"
	"github.com/kingrea/emis-dashboard/internal/settings"
	"github.com/kingrea/emis-dashboard/internal/stakeholders"
	"github.com/kingrea/emis-dashboard/internal/store"
)

// tab represents which feature pane is showing.
type tab int

const (
	tabAlerts tab = iota
	tabPlans
	tabStakeholders
	tabSettings
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabAlerts:
		return "Alerts"
	case tabPlans:
		return "Plans"
	case tabStakeholders:
		return "Stakeholders"
	case tabSettings:
		return "Settings"
	}
	return "?"
}

// stateChangedMsg carries one store change into the update loop.
type stateChangedMsg store.Change[dashboard.State]

// opDoneMsg reports a finished dashboard operation.
type opDoneMsg struct {
	op  string
	err error
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook shows the tail of the action journal under the panes.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = lb
	}
}

// WithContext sets the context handed to API requests.
func WithContext(ctx context.Context) AppOption {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// App is the main application model.
type App struct {
	dash    *dashboard.Dashboard
	sub     store.Subscription[dashboard.State]
	logbook *logbook.Logbook
	ctx     context.Context

	state   dashboard.State
	active  tab
	lists   [tabCount]list.Model
	spinner spinner.Model
	pending int

	statusMsg string
	err       error

	width  int
	height int
}

type alertItem struct{ alert alerts.Alert }

func (i alertItem) Title() string {
	if i.alert.Severity == "" {
		return i.alert.Event
	}
	return fmt.Sprintf("%s · %s", i.alert.Event, i.alert.Severity)
}
func (i alertItem) Description() string { return firstNonEmpty(i.alert.Headline, i.alert.Area) }
func (i alertItem) FilterValue() string { return i.alert.Event + " " + i.alert.Headline }

type planItem struct{ plan plans.Plan }

func (i planItem) Title() string { return firstNonEmpty(i.plan.Description, i.plan.ID) }
func (i planItem) Description() string {
	parts := []string{}
	if i.plan.IncidentType != nil && i.plan.IncidentType.Name != "" {
		parts = append(parts, i.plan.IncidentType.Name)
	}
	if i.plan.Owner != "" {
		parts = append(parts, i.plan.Owner)
	}
	if i.plan.Jurisdiction != "" {
		parts = append(parts, i.plan.Jurisdiction)
	}
	return strings.Join(parts, " · ")
}
func (i planItem) FilterValue() string { return i.plan.Description }

type stakeholderItem struct{ stakeholder stakeholders.Stakeholder }

func (i stakeholderItem) Title() string { return i.stakeholder.Name }
func (i stakeholderItem) Description() string {
	return firstNonEmpty(i.stakeholder.Title, i.stakeholder.Type, i.stakeholder.Email)
}
func (i stakeholderItem) FilterValue() string { return i.stakeholder.Name }

type incidentTypeItem struct {
	incidentType settings.IncidentType
	selected     bool
}

func (i incidentTypeItem) Title() string {
	if i.selected {
		return "● " + i.incidentType.Name
	}
	return i.incidentType.Name
}
func (i incidentTypeItem) Description() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", i.incidentType.Nature, i.incidentType.Family))
}
func (i incidentTypeItem) FilterValue() string { return i.incidentType.Name }

// NewApp creates an App bound to dash. The App subscribes to the store
// immediately so no change between construction and Init is missed.
func NewApp(dash *dashboard.Dashboard, opts ...AppOption) *App {
	app := &App{
		dash:    dash,
		sub:     dash.Subscribe(),
		ctx:     context.Background(),
		state:   dash.State(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for t := tab(0); t < tabCount; t++ {
		l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
		l.Title = t.String()
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		l.SetShowHelp(false)
		app.lists[t] = l
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.refreshLists()
	return app
}

// Close releases the store subscription.
func (a *App) Close() {
	a.sub.Close()
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.waitForChange(), a.spinner.Tick, a.run("load dashboard", a.dash.LoadAll))
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for t := range a.lists {
			a.lists[t].SetSize(max(20, a.listWidth()), max(5, msg.Height-12))
		}
		return a, nil

	case stateChangedMsg:
		a.state = msg.State
		a.refreshLists()
		return a, a.waitForChange()

	case opDoneMsg:
		if a.pending > 0 {
			a.pending--
		}
		a.err = msg.err
		a.state = a.dash.State()
		a.refreshLists()
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("%s failed", msg.op)
		} else {
			a.statusMsg = fmt.Sprintf("%s done", msg.op)
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "tab", "right":
			a.active = (a.active + 1) % tabCount
			return a, nil
		case "shift+tab", "left":
			a.active = (a.active + tabCount - 1) % tabCount
			return a, nil
		case "1", "2", "3", "4":
			a.active = tab(msg.String()[0] - '1')
			return a, nil
		case "r":
			return a, a.refreshActive()
		case "enter":
			return a, a.selectCurrent()
		case "p":
			if a.active == tabAlerts {
				layers, _ := dashboard.AlertsMapLayers(&a.state)
				a.dash.ShowAlertPoints(!layers.ShowPoints)
			}
			return a, nil
		case "s":
			if a.active == tabAlerts {
				layers, _ := dashboard.AlertsMapLayers(&a.state)
				a.dash.ShowAlertShapes(!layers.ShowShapes)
			}
			return a, nil
		case "esc", "d":
			if a.active == tabStakeholders {
				if open, _ := dashboard.IsDrawerOpen(&a.state); open {
					a.dash.CloseStakeholder()
				}
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.lists[a.active], cmd = a.lists[a.active].Update(msg)
	return a, cmd
}

// waitForChange blocks on the change feed and hands the next change to
// Update. A closed feed ends the loop.
func (a *App) waitForChange() tea.Cmd {
	changes := a.sub.Changes
	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return nil
		}
		return stateChangedMsg(change)
	}
}

// run executes a dashboard request off the update loop.
func (a *App) run(op string, fn func(context.Context) error) tea.Cmd {
	a.pending++
	a.statusMsg = op + "..."
	ctx := a.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (a *App) refreshActive() tea.Cmd {
	switch a.active {
	case tabAlerts:
		return a.run("load alerts", a.dash.LoadAlerts)
	case tabPlans:
		return a.run("load plans", a.dash.LoadPlans)
	case tabStakeholders:
		return a.run("load stakeholders", a.dash.LoadStakeholders)
	case tabSettings:
		return a.run("load incident types", a.dash.LoadIncidentTypes)
	}
	return nil
}

func (a *App) selectCurrent() tea.Cmd {
	switch item := a.lists[a.active].SelectedItem().(type) {
	case alertItem:
		if err := a.dash.FocusAlert(item.alert.ID); err != nil {
			a.err = err
		}
	case planItem:
		plan := item.plan
		return a.run("load plan activities", func(ctx context.Context) error {
			return a.dash.SelectPlan(ctx, &plan)
		})
	case stakeholderItem:
		a.dash.OpenStakeholder(item.stakeholder)
	case incidentTypeItem:
		it := item.incidentType
		a.dash.SelectIncidentType(&it)
	}
	return nil
}

// refreshLists rebuilds list items from the current snapshot.
func (a *App) refreshLists() {
	if data, ok := dashboard.Alerts(&a.state); ok {
		items := make([]list.Item, len(data))
		for i := range data {
			items[i] = alertItem{alert: data[i]}
		}
		a.lists[tabAlerts].SetItems(items)
	}
	if data, ok := dashboard.Plans(&a.state); ok {
		items := make([]list.Item, len(data))
		for i := range data {
			items[i] = planItem{plan: data[i]}
		}
		a.lists[tabPlans].SetItems(items)
	}
	if data, ok := dashboard.Stakeholders(&a.state); ok {
		items := make([]list.Item, len(data))
		for i := range data {
			items[i] = stakeholderItem{stakeholder: data[i]}
		}
		a.lists[tabStakeholders].SetItems(items)
	}
	if data, ok := dashboard.IncidentTypes(&a.state); ok {
		items := make([]list.Item, len(data))
		for i := range data {
			items[i] = incidentTypeItem{
				incidentType: data[i],
				selected:     settings.IsSelected(a.state.IncidentsType, data[i]),
			}
		}
		a.lists[tabSettings].SetItems(items)
	}
}

func (a *App) listWidth() int {
	width := a.width
	if width <= 0 {
		width = 100
	}
	return width - max(32, width/3) - 6
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
