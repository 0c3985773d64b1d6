package insights

import (
	"math"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

type actorTally struct {
	rfps          int
	proposals     int
	wins          int
	losses        int
	wonAmount     float64
	turnaroundSum int
	turnaroundLen int
}

// AggregateByActor merges two passes into per-actor metrics: event counters
// (RFPs, proposals, wins with dollar amounts, losses) and pairing turnaround
// means. Both passes are commutative, so any permutation of the inputs yields
// the same result. An actor seen in only one pass still gets a well-formed
// record; the missing side's derived fields stay nil.
func AggregateByActor(events []domain.Event, pairings []domain.Pairing) map[string]domain.ActorMetrics {
	tallies := make(map[string]*actorTally)
	tally := func(actor string) *actorTally {
		t, ok := tallies[actor]
		if !ok {
			t = &actorTally{}
			tallies[actor] = t
		}
		return t
	}

	for _, event := range events {
		t := tally(event.Actor())
		switch event.EventType {
		case domain.EventRFPReceived:
			t.rfps++
		case domain.EventProposalSent:
			t.proposals++
		case domain.EventWon:
			t.wins++
			if event.DollarAmount != nil {
				t.wonAmount += *event.DollarAmount
			}
		case domain.EventLost:
			t.losses++
		}
	}

	for _, pairing := range pairings {
		t := tally(pairing.Actor)
		t.turnaroundSum += pairing.Days
		t.turnaroundLen++
	}

	metrics := make(map[string]domain.ActorMetrics, len(tallies))
	for actor, t := range tallies {
		m := domain.ActorMetrics{
			Actor:     actor,
			TotalBids: t.wins + t.losses,
			RFPs:      t.rfps,
			Proposals: t.proposals,
			Wins:      t.wins,
			Losses:    t.losses,
		}
		// Follow-ups and unresolved RFPs stay out of the denominator. A nil
		// win rate means "no decided bids", which is not the same as 0%.
		if m.TotalBids > 0 {
			rate := int(math.Round(float64(t.wins) / float64(m.TotalBids) * 100))
			m.WinRate = &rate
		}
		if t.turnaroundLen > 0 {
			avg := float64(t.turnaroundSum) / float64(t.turnaroundLen)
			m.AvgTurnaroundDays = &avg
		}
		if t.wins > 0 {
			avg := t.wonAmount / float64(t.wins)
			m.AvgDealSize = &avg
		}
		metrics[actor] = m
	}

	return metrics
}

// CountTotals tallies the dashboard-level counters across all actors.
func CountTotals(events []domain.Event) domain.Totals {
	var totals domain.Totals
	for _, event := range events {
		switch event.EventType {
		case domain.EventRFPReceived:
			totals.RFPs++
		case domain.EventProposalSent:
			totals.Proposals++
		case domain.EventWon:
			totals.Wins++
		case domain.EventLost:
			totals.Losses++
		case domain.EventFollowUp:
			totals.FollowUps++
		case domain.EventGCResponse:
			totals.GCResponses++
		}
	}
	return totals
}
