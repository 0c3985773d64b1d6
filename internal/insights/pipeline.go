package insights

import (
	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// Report is the full derived output of one analysis pass over an event
// snapshot. It has no identity across passes; a refresh discards the old
// report and replaces it wholesale.
type Report struct {
	Events    []domain.Event
	Timelines map[string][]domain.Event
	Pairings  []domain.Pairing
	Actors    map[string]domain.ActorMetrics
	Totals    domain.Totals
	Malformed int
}

// Analyze runs the whole pipeline on a snapshot: timelines, pairings, actor
// aggregates and dashboard totals. The input slice is only read, never
// mutated, so concurrent passes over the same snapshot are safe.
func Analyze(events []domain.Event) *Report {
	timelines, malformed := BuildTimelines(events)
	pairings := ComputePairings(timelines)

	return &Report{
		Events:    events,
		Timelines: timelines,
		Pairings:  pairings,
		Actors:    AggregateByActor(events, pairings),
		Totals:    CountTotals(events),
		Malformed: malformed,
	}
}
