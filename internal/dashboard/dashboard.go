package dashboard

import (
	"context"

	"github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"

	"github.com/kingrea/emis-dashboard/internal/alerts"
	"github.com/kingrea/emis-dashboard/internal/plans"
	"github.com/kingrea/emis-dashboard/internal/settings"
	"github.com/kingrea/emis-dashboard/internal/stakeholders"
	"github.com/kingrea/emis-dashboard/internal/store"
)

// API is the full fetch capability behind the dashboard.
type API interface {
	alerts.API
	plans.API
	stakeholders.API
	settings.API
}

// Logger records diagnostics. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

// Option customizes Dashboard construction.
type Option func(*config)

type config struct {
	options   Options
	logger    Logger
	observers []store.Observer[State]
}

// WithOptions sets slice reducer options.
func WithOptions(opts Options) Option {
	return func(c *config) { c.options = opts }
}

// WithLogger injects a diagnostics logger.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an observer on the underlying store.
func WithObserver(obs store.Observer[State]) Option {
	return func(c *config) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}

// Dashboard binds the state container to the API and exposes the
// operations the front ends trigger.
type Dashboard struct {
	store  *store.Store[State]
	api    API
	logger Logger
}

// New creates a dashboard with a fresh store.
func New(api API, opts ...Option) *Dashboard {
	cfg := config{logger: nopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	storeOpts := []store.Option[State]{store.WithLogger[State](cfg.logger)}
	for _, obs := range cfg.observers {
		storeOpts = append(storeOpts, store.WithObserver(obs))
	}
	return &Dashboard{
		store:  store.New(Reducer(cfg.options), storeOpts...),
		api:    api,
		logger: cfg.logger,
	}
}

// Dispatch forwards an action to the store.
func (d *Dashboard) Dispatch(action store.Action) {
	d.store.Dispatch(action)
}

// State returns the current root state.
func (d *Dashboard) State() State {
	return d.store.State()
}

// Subscribe returns a change feed of the root state.
func (d *Dashboard) Subscribe() store.Subscription[State] {
	return d.store.Subscribe()
}

// LoadAll loads alerts, plans, stakeholders and incident types in parallel.
// Every load runs to completion; the first failure is returned.
func (d *Dashboard) LoadAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.LoadAlerts(ctx) })
	g.Go(func() error { return d.LoadPlans(ctx) })
	g.Go(func() error { return d.LoadStakeholders(ctx) })
	g.Go(func() error { return d.LoadIncidentTypes(ctx) })
	return g.Wait()
}

// LoadAlerts fetches the alert list.
func (d *Dashboard) LoadAlerts(ctx context.Context) error {
	return d.logged("load alerts", alerts.GetAlerts(ctx, d.store, d.api))
}

// LoadAlert fetches a single alert into the selection.
func (d *Dashboard) LoadAlert(ctx context.Context, id string) error {
	return d.logged("load alert "+id, alerts.GetAlert(ctx, d.store, d.api, id))
}

// SelectAlert selects an alert from the loaded list. An empty id clears the
// selection.
func (d *Dashboard) SelectAlert(id string) error {
	read := func() alerts.ListState { return d.store.State().Alerts }
	return d.logged("select alert "+id, alerts.SelectAlert(d.store, read, id))
}

// FocusAlert selects an alert the way a map marker click does: the alert is
// selected, points are hidden and its shape is shown.
func (d *Dashboard) FocusAlert(id string) error {
	err := d.SelectAlert(id)
	alerts.ShowPoints(d.store, false)
	alerts.ShowShapes(d.store, true)
	return err
}

// ShowAlertPoints toggles the alert points layer.
func (d *Dashboard) ShowAlertPoints(show bool) {
	alerts.ShowPoints(d.store, show)
}

// ShowAlertShapes toggles the selected alert shape layer.
func (d *Dashboard) ShowAlertShapes(show bool) {
	alerts.ShowShapes(d.store, show)
}

// SaveDrawnGeometry stores a geometry drawn on the map.
func (d *Dashboard) SaveDrawnGeometry(geometry *geojson.Geometry) {
	alerts.SaveDrawnGeometryOperation(d.store, geometry)
}

// SetSeverityFilter sets the alert severity filter.
func (d *Dashboard) SetSeverityFilter(value any) {
	d.store.Dispatch(alerts.SetSeverity(value))
}

// SetExpectedAtFilter sets the alert expectedAt filter.
func (d *Dashboard) SetExpectedAtFilter(value any) {
	d.store.Dispatch(alerts.SetExpectedAt(value))
}

// LoadPlans fetches the plan list.
func (d *Dashboard) LoadPlans(ctx context.Context) error {
	return d.logged("load plans", plans.GetPlans(ctx, d.store, d.api))
}

// SelectPlan selects a plan and loads its activities.
func (d *Dashboard) SelectPlan(ctx context.Context, plan *plans.Plan) error {
	return d.logged("select plan", plans.SelectAndLoad(ctx, d.store, d.api, plan))
}

// SelectPlanActivity selects one activity of the current plan.
func (d *Dashboard) SelectPlanActivity(activity *plans.Activity) {
	d.store.Dispatch(plans.SelectActivity(activity))
}

// LoadStakeholders fetches every stakeholder.
func (d *Dashboard) LoadStakeholders(ctx context.Context) error {
	return d.logged("load stakeholders", stakeholders.Load(ctx, d.store, d.api))
}

// SearchStakeholders searches stakeholders by free text.
func (d *Dashboard) SearchStakeholders(ctx context.Context, text string) error {
	return d.logged("search stakeholders", stakeholders.Find(ctx, d.store, d.api, text))
}

// OpenStakeholder selects a stakeholder and opens the drawer.
func (d *Dashboard) OpenStakeholder(s stakeholders.Stakeholder) {
	stakeholders.OpenDrawer(d.store, s)
}

// CloseStakeholder closes the stakeholder drawer.
func (d *Dashboard) CloseStakeholder() {
	stakeholders.CloseDrawer(d.store)
}

// LoadIncidentTypes fetches the configured incident types.
func (d *Dashboard) LoadIncidentTypes(ctx context.Context) error {
	return d.logged("load incident types", settings.GetIncidentTypes(ctx, d.store, d.api))
}

// SelectIncidentType shows an incident type in the settings pane.
func (d *Dashboard) SelectIncidentType(it *settings.IncidentType) {
	d.store.Dispatch(settings.Select(it))
}

func (d *Dashboard) logged(op string, err error) error {
	if err != nil {
		d.logger.Printf("dashboard: %s: %v", op, err)
	}
	return err
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
