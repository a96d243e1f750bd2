package main

import (
	"github.com/andareed/airline-dash/dataset"
	"github.com/andareed/airline-dash/logging"
	"github.com/andareed/airline-dash/metrics"
	"github.com/andareed/airline-dash/reconcile"
)

// dataState is the dataset, the committed selection and the figures derived
// from them.
type dataState struct {
	ds      *dataset.Dataset
	sel     reconcile.Selection
	cards   []metrics.Card
	outlook []metrics.Outlook
}

func newDataState(ds *dataset.Dataset, sel reconcile.Selection) dataState {
	d := dataState{ds: ds, sel: sel.Clone()}
	cards, err := metrics.Cards(ds, ds.LastHistorical())
	if err != nil {
		logging.Errorf("metrics: cards: %v", err)
	}
	d.cards = cards
	d.outlook = metrics.GrowthOutlook(ds)
	return d
}
