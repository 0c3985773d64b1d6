// Package insights derives sales metrics from an immutable event snapshot.
// Every computation is a pure function of its input: timelines, pairings and
// actor aggregates are rebuilt wholesale on each pass, never cached or
// incrementally patched.
package insights

import (
	"sort"
	"strings"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// BuildTimelines groups events by normalized project name and sorts each
// group ascending by scanned_at. The sort is stable so ties keep input order,
// which the pairing engine's first-occurrence policy depends on. Events with
// no timestamp cannot be placed on a timeline; they are excluded and counted
// in the second return value as a data-quality signal for the caller.
func BuildTimelines(events []domain.Event) (map[string][]domain.Event, int) {
	timelines := make(map[string][]domain.Event)
	malformed := 0

	for _, event := range events {
		if event.ScannedAt.IsZero() {
			malformed++
			continue
		}
		key := NormalizeProject(event.ProjectName)
		timelines[key] = append(timelines[key], event)
	}

	for _, timeline := range timelines {
		sort.SliceStable(timeline, func(i, j int) bool {
			return timeline[i].ScannedAt.Before(timeline[j].ScannedAt)
		})
	}

	return timelines, malformed
}

// NormalizeProject lowercases and trims a project name, mapping missing names
// to the UnknownProject sentinel.
func NormalizeProject(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return domain.UnknownProject
	}
	return name
}
