package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/emis-dashboard/internal/dashboard"
)

var (
	accent = lipgloss.Color("#5B8DEF")
	alarm  = lipgloss.Color("#FF6B6B")
	muted  = lipgloss.Color("#888888")
	border = lipgloss.Color("#444444")
)

// View renders the tab bar, the active pane with its detail panel and the
// status footer.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(alarm).
		Render("EMIS DASHBOARD")

	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(20, leftWidth)).
		Render(a.lists[a.active].View())
	right := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(20, rightWidth-4)).
		Render(a.renderDetail())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	parts := []string{header, a.renderTabs(), body, a.renderFooter()}
	if logs := a.renderLogPanel(); logs != "" {
		parts = append(parts, logs)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderTabs() string {
	labels := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf(" %d %s ", int(t)+1, t)
		style := lipgloss.NewStyle().Foreground(muted)
		if t == a.active {
			style = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
		}
		labels = append(labels, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

func (a *App) renderDetail() string {
	switch a.active {
	case tabAlerts:
		return a.renderAlertDetail()
	case tabPlans:
		return a.renderPlanDetail()
	case tabStakeholders:
		return a.renderStakeholderDetail()
	case tabSettings:
		return a.renderIncidentTypeDetail()
	}
	return ""
}

func (a *App) renderAlertDetail() string {
	var lines []string
	if loading, _ := dashboard.AlertsLoading(&a.state); loading {
		lines = append(lines, a.spinner.View()+" loading alerts")
	}
	if errObj := a.state.Alerts.Error; errObj != nil {
		lines = append(lines, errorLine(errObj.Error()))
	}
	view, _ := dashboard.AlertsMapView(&a.state)
	layers, _ := dashboard.AlertsMapLayers(&a.state)
	lines = append(lines,
		title("MAP"),
		fmt.Sprintf("centre %.3f, %.3f · zoom %d", view.Center[0], view.Center[1], view.Zoom),
		fmt.Sprintf("points %d %s · shapes %d %s", len(layers.Points), onOff(layers.ShowPoints), len(layers.Shapes), onOff(layers.ShowShapes)),
		"",
	)
	selected, _ := dashboard.SelectedAlert(&a.state)
	if selected == nil {
		lines = append(lines, note("Select an alert with enter"))
		return strings.Join(lines, "\n")
	}
	lines = append(lines,
		title(strings.ToUpper(selected.Event)),
		selected.Headline,
		fmt.Sprintf("%s · %s · %s", selected.Severity, selected.Urgency, selected.Certainty),
	)
	if selected.Area != "" {
		lines = append(lines, "area: "+selected.Area)
	}
	if !selected.ExpectedAt.IsZero() {
		lines = append(lines, "expected: "+selected.ExpectedAt.Format(time.RFC1123))
	}
	if selected.Instruction != "" {
		lines = append(lines, "", selected.Instruction)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderPlanDetail() string {
	var lines []string
	if loading, _ := dashboard.PlansLoading(&a.state); loading {
		lines = append(lines, a.spinner.View()+" loading plans")
	}
	if errObj := a.state.Plans.Error; errObj != nil {
		lines = append(lines, errorLine(errObj.Error()))
	}
	plan, _ := dashboard.SelectedPlan(&a.state)
	if plan == nil {
		lines = append(lines, note("Select a plan with enter"))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, title(strings.ToUpper(firstNonEmpty(plan.Description, plan.ID))))
	if plan.Owner != "" {
		lines = append(lines, "owner: "+plan.Owner)
	}
	if a.state.PlanActivities.Loading {
		lines = append(lines, a.spinner.View()+" loading activities")
	}
	activities, _ := dashboard.PlanActivities(&a.state)
	phase := ""
	for _, activity := range activities {
		if activity.Phase != phase {
			phase = activity.Phase
			lines = append(lines, "", title(phase))
		}
		lines = append(lines, "· "+activity.Name)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderStakeholderDetail() string {
	var lines []string
	if errObj := a.state.Contacts.Error; errObj != nil {
		lines = append(lines, errorLine(errObj.Error()))
	}
	if open, _ := dashboard.IsDrawerOpen(&a.state); !open {
		lines = append(lines, note("Open a stakeholder with enter"))
		return strings.Join(lines, "\n")
	}
	s, _ := dashboard.SelectedStakeholder(&a.state)
	lines = append(lines, title(strings.ToUpper(s.Name)))
	for _, field := range [][2]string{
		{"title", s.Title},
		{"type", s.Type},
		{"phone", s.Phone},
		{"mobile", s.Mobile},
		{"email", s.Email},
		{"area", s.Area},
		{"address", s.Physical},
	} {
		if field[1] != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", field[0], field[1]))
		}
	}
	lines = append(lines, "", note("esc closes"))
	return strings.Join(lines, "\n")
}

func (a *App) renderIncidentTypeDetail() string {
	var lines []string
	if a.state.IncidentTypes.Loading {
		lines = append(lines, a.spinner.View()+" loading incident types")
	}
	if errObj := a.state.IncidentTypes.Error; errObj != nil {
		lines = append(lines, errorLine(errObj.Error()))
	}
	it, _ := dashboard.SelectedIncidentType(&a.state)
	if it == nil {
		lines = append(lines, note("Select an incident type with enter"))
		return strings.Join(lines, "\n")
	}
	lines = append(lines,
		title(strings.ToUpper(it.Name)),
		fmt.Sprintf("nature: %s", it.Nature),
		fmt.Sprintf("family: %s", it.Family),
		fmt.Sprintf("cap: %s", it.Code.CAP),
	)
	if it.Description != "" {
		lines = append(lines, "", it.Description)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFooter() string {
	status := a.statusMsg
	if a.pending > 0 {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = errorLine(a.err.Error())
	}
	hints := "tab switch · enter select · r refresh · q quit"
	if a.active == tabAlerts {
		hints = "p points · s shapes · " + hints
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		lipgloss.NewStyle().Foreground(muted).Render(hints),
	)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, _ := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent).
		Render(fmt.Sprintf("LOG · %s", fileName))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

func title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(accent).Render(s)
}

func note(s string) string {
	return lipgloss.NewStyle().Foreground(muted).Render(s)
}

func errorLine(s string) string {
	return lipgloss.NewStyle().Foreground(alarm).Render("! " + s)
}

func onOff(on bool) string {
	if on {
		return "(on)"
	}
	return "(off)"
}
