package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

const (
	topN = 5

	// Decided-bid floor before a win rate is worth ranking.
	minDecidedBids = 2

	// Company turnaround target, in calendar days.
	turnaroundBenchmarkDays = 3
)

const fallbackText = "I can answer questions about win rates, turnaround times, " +
	"the monthly pipeline, pending proposals, deal sizes, and who is winning the most bids. " +
	"Try asking something like \"who has the best win rate?\" or \"what's our pipeline by month?\""

const notEnoughData = "Not enough data yet to answer that. " +
	"Metrics need at least a few decided bids before they mean anything."

type intent struct {
	matches func(q string) bool
	answer  func(report *Report) domain.Answer
}

// Responder matches a free-text question against a fixed, ordered intent
// table; the first matching intent wins. This is a closed keyword classifier,
// not an NLP model, and is deterministic for identical input.
type Responder struct {
	intents []intent
}

// NewResponder builds the responder with its fixed intent table.
func NewResponder() *Responder {
	return &Responder{
		intents: []intent{
			{matchAny("pending", "waiting", "awaiting"), answerPending},
			{matchAny("win rate", "close rate"), answerWinRate},
			{matchAny("turnaround", "response time", "responding"), answerTurnaround},
			{matchAny("pipeline", "by month"), answerPipeline},
			{matchAny("winning", "top performer", "most wins"), answerTopWinners},
			{matchAny("deal size", "job size", "average job"), answerDealSize},
		},
	}
}

// Respond answers a question from the given report. An unrecognized question
// is not an error; it gets the fixed fallback listing supported categories.
func (r *Responder) Respond(query string, report *Report) domain.Answer {
	q := strings.ToLower(query)
	for _, in := range r.intents {
		if in.matches(q) {
			return in.answer(report)
		}
	}
	return domain.Answer{Text: fallbackText}
}

func matchAny(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, kw := range keywords {
			if strings.Contains(q, kw) {
				return true
			}
		}
		return false
	}
}

func answerWinRate(report *Report) domain.Answer {
	ranked := rankActors(report.Actors,
		func(m domain.ActorMetrics) bool { return m.WinRate != nil && m.TotalBids >= minDecidedBids },
		func(a, b domain.ActorMetrics) bool { return *a.WinRate > *b.WinRate })
	if len(ranked) == 0 {
		return domain.Answer{Text: notEnoughData}
	}

	var lines []string
	chart := &domain.ChartSpec{Title: "Win rate by estimator (%)"}
	for i, m := range ranked {
		lines = append(lines, fmt.Sprintf("%d. %s — %d%% win rate (%d of %d decided)",
			i+1, m.Actor, *m.WinRate, m.Wins, m.TotalBids))
		chart.Labels = append(chart.Labels, m.Actor)
		chart.Values = append(chart.Values, float64(*m.WinRate))
	}
	text := "Win rates (min " + fmt.Sprint(minDecidedBids) + " decided bids):\n" + strings.Join(lines, "\n")
	return domain.Answer{Text: text, Chart: chart}
}

func answerTurnaround(report *Report) domain.Answer {
	ranked := rankActors(report.Actors,
		func(m domain.ActorMetrics) bool { return m.AvgTurnaroundDays != nil },
		func(a, b domain.ActorMetrics) bool { return *a.AvgTurnaroundDays < *b.AvgTurnaroundDays })
	if len(ranked) == 0 {
		return domain.Answer{Text: notEnoughData}
	}

	var lines []string
	var sum float64
	chart := &domain.ChartSpec{Title: "Avg RFP-to-proposal turnaround (days)"}
	for i, m := range ranked {
		lines = append(lines, fmt.Sprintf("%d. %s — %.1f days avg", i+1, m.Actor, *m.AvgTurnaroundDays))
		chart.Labels = append(chart.Labels, m.Actor)
		chart.Values = append(chart.Values, *m.AvgTurnaroundDays)
		sum += *m.AvgTurnaroundDays
	}
	companyAvg := sum / float64(len(ranked))
	status := "on target"
	if companyAvg > turnaroundBenchmarkDays {
		status = "behind target"
	}
	text := fmt.Sprintf("Fastest turnaround, RFP to proposal:\n%s\nCompany average is %.1f days against a %d-day target (%s).",
		strings.Join(lines, "\n"), companyAvg, turnaroundBenchmarkDays, status)
	return domain.Answer{Text: text, Chart: chart}
}

func answerPipeline(report *Report) domain.Answer {
	counts := make(map[string]int)
	for _, event := range report.Events {
		if event.EventType != domain.EventRFPReceived || event.ScannedAt.IsZero() {
			continue
		}
		counts[event.ScannedAt.Format("2006-01")]++
	}
	if len(counts) == 0 {
		return domain.Answer{Text: notEnoughData}
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	var lines []string
	chart := &domain.ChartSpec{Title: "RFPs received by month"}
	for _, month := range months {
		lines = append(lines, fmt.Sprintf("%s: %d RFPs", month, counts[month]))
		chart.Labels = append(chart.Labels, month)
		chart.Values = append(chart.Values, float64(counts[month]))
	}
	return domain.Answer{
		Text:  "RFP volume by month:\n" + strings.Join(lines, "\n"),
		Chart: chart,
	}
}

func answerTopWinners(report *Report) domain.Answer {
	ranked := rankActors(report.Actors,
		func(m domain.ActorMetrics) bool { return m.Wins > 0 },
		func(a, b domain.ActorMetrics) bool { return a.Wins > b.Wins })
	if len(ranked) == 0 {
		return domain.Answer{Text: notEnoughData}
	}

	var lines []string
	chart := &domain.ChartSpec{Title: "Wins by estimator"}
	for i, m := range ranked {
		lines = append(lines, fmt.Sprintf("%d. %s — %d wins (%d proposals sent)",
			i+1, m.Actor, m.Wins, m.Proposals))
		chart.Labels = append(chart.Labels, m.Actor)
		chart.Values = append(chart.Values, float64(m.Wins))
	}
	return domain.Answer{
		Text:  "Most wins:\n" + strings.Join(lines, "\n"),
		Chart: chart,
	}
}

func answerDealSize(report *Report) domain.Answer {
	ranked := rankActors(report.Actors,
		func(m domain.ActorMetrics) bool { return m.AvgDealSize != nil },
		func(a, b domain.ActorMetrics) bool { return *a.AvgDealSize > *b.AvgDealSize })
	if len(ranked) == 0 {
		return domain.Answer{Text: notEnoughData}
	}

	var lines []string
	chart := &domain.ChartSpec{Title: "Avg deal size ($)"}
	for i, m := range ranked {
		lines = append(lines, fmt.Sprintf("%d. %s — $%.0f avg across %d wins",
			i+1, m.Actor, *m.AvgDealSize, m.Wins))
		chart.Labels = append(chart.Labels, m.Actor)
		chart.Values = append(chart.Values, *m.AvgDealSize)
	}
	return domain.Answer{
		Text:  "Average deal size by estimator:\n" + strings.Join(lines, "\n"),
		Chart: chart,
	}
}

// answerPending reports proposals still awaiting a decision: projects with a
// PROPOSAL_SENT event but no WON or LOST yet.
func answerPending(report *Report) domain.Answer {
	projects := make([]string, 0, len(report.Timelines))
	for name := range report.Timelines {
		projects = append(projects, name)
	}
	sort.Strings(projects)

	var pending []string
	for _, project := range projects {
		if project == domain.UnknownProject {
			continue
		}
		var sent, decided bool
		for _, event := range report.Timelines[project] {
			switch event.EventType {
			case domain.EventProposalSent:
				sent = true
			case domain.EventWon, domain.EventLost:
				decided = true
			}
		}
		if sent && !decided {
			pending = append(pending, project)
		}
	}
	if len(pending) == 0 {
		return domain.Answer{Text: "No proposals are awaiting a decision right now."}
	}

	shown := pending
	if len(shown) > topN {
		shown = shown[:topN]
	}
	return domain.Answer{
		Text: fmt.Sprintf("%d proposals awaiting a decision, including: %s.",
			len(pending), strings.Join(shown, ", ")),
	}
}

// rankActors filters, sorts and caps the actor metrics. Ties fall back to the
// actor name so ranking is stable across map iteration orders.
func rankActors(actors map[string]domain.ActorMetrics,
	keep func(domain.ActorMetrics) bool,
	less func(a, b domain.ActorMetrics) bool) []domain.ActorMetrics {

	var ranked []domain.ActorMetrics
	for _, m := range actors {
		if keep(m) {
			ranked = append(ranked, m)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if less(ranked[i], ranked[j]) != less(ranked[j], ranked[i]) {
			return less(ranked[i], ranked[j])
		}
		return ranked[i].Actor < ranked[j].Actor
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
