package reconcile

import "errors"

var (
	// ErrNoSurface is returned by a Builder asked to draw a chart it has no
	// place on screen for.
	ErrNoSurface    = errors.New("no surface mounted for chart")
	ErrUnknownChart = errors.New("unknown chart")
)

// Chart is a built chart instance.
type Chart interface {
	Resize(width, height int)
	View() string
	Destroy()
}

// Builder turns a spec into a chart instance.
type Builder interface {
	Build(spec ChartSpec) (Chart, error)
}

// Registry owns the built chart instances, one per chart identity.
type Registry struct {
	charts map[ChartID]Chart
}

func NewRegistry() *Registry {
	return &Registry{charts: make(map[ChartID]Chart)}
}

// Create stores c under id, destroying any instance it replaces.
func (r *Registry) Create(id ChartID, c Chart) {
	r.Destroy(id)
	r.charts[id] = c
}

// Destroy tears down and forgets the instance for id. It reports whether
// there was one.
func (r *Registry) Destroy(id ChartID) bool {
	c, ok := r.charts[id]
	if !ok {
		return false
	}
	delete(r.charts, id)
	if c != nil {
		c.Destroy()
	}
	return true
}

func (r *Registry) Get(id ChartID) (Chart, bool) {
	c, ok := r.charts[id]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

// IDs lists the built charts in layout order.
func (r *Registry) IDs() []ChartID {
	var ids []ChartID
	for _, id := range AllCharts() {
		if _, ok := r.charts[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Registry) Len() int { return len(r.charts) }
