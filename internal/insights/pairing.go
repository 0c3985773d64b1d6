package insights

import (
	"math"
	"sort"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

// Turnarounds outside (0, maxTurnaroundDays) are treated as data-entry noise
// rather than genuine signal and dropped without error.
const maxTurnaroundDays = 365

// ComputePairings derives one RFP-to-proposal turnaround per project. For each
// timeline it locates the first RFP_RECEIVED and the first PROPOSAL_SENT
// independently, computes elapsed calendar days, and attributes the result to
// the RFP's assignee, falling back to the proposal's. Projects lacking either
// event contribute nothing; that is the expected steady state. The unknown
// project bucket never pairs because a pairing needs a recognizable shared
// project. Projects are walked in sorted order so output is deterministic.
func ComputePairings(timelines map[string][]domain.Event) []domain.Pairing {
	projects := make([]string, 0, len(timelines))
	for name := range timelines {
		projects = append(projects, name)
	}
	sort.Strings(projects)

	var pairings []domain.Pairing
	for _, project := range projects {
		if project == domain.UnknownProject {
			continue
		}

		var rfp, proposal *domain.Event
		timeline := timelines[project]
		for i := range timeline {
			switch timeline[i].EventType {
			case domain.EventRFPReceived:
				if rfp == nil {
					rfp = &timeline[i]
				}
			case domain.EventProposalSent:
				if proposal == nil {
					proposal = &timeline[i]
				}
			}
		}
		if rfp == nil || proposal == nil {
			continue
		}

		days := int(math.Floor(proposal.ScannedAt.Sub(rfp.ScannedAt).Seconds() / 86400))
		if days <= 0 || days >= maxTurnaroundDays {
			continue
		}

		actor := rfp.Assignee
		if actor == "" {
			actor = proposal.Assignee
		}
		if actor == "" {
			actor = domain.UnknownActor
		}

		pairings = append(pairings, domain.Pairing{
			Actor:       actor,
			Days:        days,
			ProjectName: project,
		})
	}

	return pairings
}
