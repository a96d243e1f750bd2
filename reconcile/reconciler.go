package reconcile

import (
	"fmt"

	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/logging"
)

// Reconciler keeps the registry's chart instances matched to the current
// selection. Dynamic charts are rebuilt from scratch on every Apply;
// static charts are built once, on the first visit to their tab.
type Reconciler struct {
	ds       *dataset.Dataset
	builder  Builder
	registry *Registry
	failures map[ChartID]error
	initial  Tab
}

func New(ds *dataset.Dataset, builder Builder) *Reconciler {
	return &Reconciler{
		ds:       ds,
		builder:  builder,
		registry: NewRegistry(),
		failures: make(map[ChartID]error),
	}
}

// Start builds the charts of the initial tab.
func (r *Reconciler) Start(sel Selection) []ChartID {
	r.initial = sel.Tab
	logging.Infof("reconcile: start on %s", sel.Tab)
	return r.Apply(sel)
}

// InitialTab is the tab passed to Start.
func (r *Reconciler) InitialTab() Tab { return r.initial }

// Apply brings the active tab's charts up to date with sel and returns
// the identities that were built.
func (r *Reconciler) Apply(sel Selection) []ChartID {
	var built []ChartID
	for _, spec := range Plan(r.ds, sel) {
		if !spec.Dynamic {
			if _, ok := r.registry.Get(spec.ID); ok {
				continue
			}
			if err, failed := r.failures[spec.ID]; failed {
				logging.Debugf("reconcile: %s previously failed: %v", spec.ID, err)
				continue
			}
			if r.build(spec) {
				built = append(built, spec.ID)
			}
			continue
		}

		r.registry.Destroy(spec.ID)
		if spec.Empty() {
			logging.Debugf("reconcile: %s has no airlines selected", spec.ID)
			continue
		}
		if r.build(spec) {
			built = append(built, spec.ID)
		}
	}
	logging.Debugf("reconcile: tab=%s airlines=%v range=%s built=%v", sel.Tab, sel.Airlines, sel.Range, built)
	return built
}

func (r *Reconciler) build(spec ChartSpec) bool {
	c, err := r.builder.Build(spec)
	if err == nil && c == nil {
		err = fmt.Errorf("builder returned no chart")
	}
	if err != nil {
		r.failures[spec.ID] = fmt.Errorf("build %s: %w", spec.ID, err)
		logging.Warnf("reconcile: %v", r.failures[spec.ID])
		return false
	}
	delete(r.failures, spec.ID)
	r.registry.Create(spec.ID, c)
	return true
}

// Chart returns the built instance for id, if any.
func (r *Reconciler) Chart(id ChartID) (Chart, bool) {
	return r.registry.Get(id)
}

// Failure returns the last build error for id.
func (r *Reconciler) Failure(id ChartID) error {
	return r.failures[id]
}

// Built lists the charts that currently exist.
func (r *Reconciler) Built() []ChartID {
	return r.registry.IDs()
}

// Refresh resizes every built instance. Entries that were destroyed or
// never finished building are skipped.
func (r *Reconciler) Refresh(size func(ChartID) (int, int)) {
	for _, id := range r.registry.IDs() {
		c, ok := r.registry.Get(id)
		if !ok || c == nil {
			continue
		}
		w, h := size(id)
		c.Resize(w, h)
	}
}

// Close destroys every instance.
func (r *Reconciler) Close() {
	for _, id := range r.registry.IDs() {
		r.registry.Destroy(id)
	}
}
