//go:build dashdebug

package reconcile

const strictIDs = true
