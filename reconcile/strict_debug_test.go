//go:build dashdebug

package reconcile

import (
	"fmt"
	"strings"
	"testing"

	"github.com/andareed/airline-dash/dataset"
)

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Fatalf("panic %q, want %q", msg, want)
		}
	}()
	fn()
}

func TestUnknownIdentifiersPanicInDebugBuild(t *testing.T) {
	ds := dataset.Default()
	mustPanic(t, "reconcile: unknown tab 9", func() {
		Plan(ds, Selection{Tab: Tab(9)})
	})
	mustPanic(t, `reconcile: unknown chart "pie"`, func() {
		PlanChart(ds, ChartID("pie"), DefaultSelection(ds))
	})
}
