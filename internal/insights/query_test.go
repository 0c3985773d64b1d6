package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masterroofing/sales-insights-service/internal/domain"
)

func reportFor(events ...domain.Event) *Report {
	return Analyze(events)
}

func TestResponder_UnrecognizedQueryGetsFallback(t *testing.T) {
	responder := NewResponder()

	answer := responder.Respond("what's the weather", reportFor())

	assert.Equal(t, fallbackText, answer.Text)
	assert.Nil(t, answer.Chart)
}

func TestResponder_WinRate(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventWon, "a", "Alice", testBase),
		testEvent("2", domain.EventWon, "b", "Alice", testBase),
		testEvent("3", domain.EventLost, "c", "Alice", testBase),
		testEvent("4", domain.EventLost, "d", "Bob", testBase), // only 1 decided bid, below the floor
	)

	answer := responder.Respond("Who has the best WIN RATE?", report)

	assert.Contains(t, answer.Text, "Alice")
	assert.Contains(t, answer.Text, "67%")
	assert.NotContains(t, answer.Text, "Bob")
	assert.NotNil(t, answer.Chart)
	assert.Equal(t, []string{"Alice"}, answer.Chart.Labels)
	assert.Equal(t, []float64{67}, answer.Chart.Values)
}

func TestResponder_WinRateInsufficientData(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventFollowUp, "a", "Alice", testBase),
	)

	answer := responder.Respond("win rate", report)

	assert.Equal(t, notEnoughData, answer.Text)
}

func TestResponder_TurnaroundRankingAndBenchmark(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventRFPReceived, "a", "Alice", testBase),
		testEvent("2", domain.EventProposalSent, "a", "Alice", testBase.AddDate(0, 0, 2)),
		testEvent("3", domain.EventRFPReceived, "b", "Bob", testBase),
		testEvent("4", domain.EventProposalSent, "b", "Bob", testBase.AddDate(0, 0, 8)),
	)

	answer := responder.Respond("are we responding fast enough? what's our turnaround?", report)

	// Fastest first.
	aliceIdx := strings.Index(answer.Text, "Alice")
	bobIdx := strings.Index(answer.Text, "Bob")
	assert.Greater(t, bobIdx, aliceIdx)
	assert.Contains(t, answer.Text, "3-day target")
	assert.Contains(t, answer.Text, "behind target")
}

func TestResponder_PipelineByMonth(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventRFPReceived, "a", "", testBase),                   // 2025-06
		testEvent("2", domain.EventRFPReceived, "b", "", testBase.AddDate(0, 1, 0)),  // 2025-07
		testEvent("3", domain.EventRFPReceived, "c", "", testBase.AddDate(0, 1, 2)),  // 2025-07
		testEvent("4", domain.EventProposalSent, "a", "", testBase.AddDate(0, 0, 1)), // not an RFP
	)

	answer := responder.Respond("show me the pipeline by month", report)

	assert.NotNil(t, answer.Chart)
	assert.Equal(t, []string{"2025-06", "2025-07"}, answer.Chart.Labels)
	assert.Equal(t, []float64{1, 2}, answer.Chart.Values)
}

func TestResponder_TopWinners(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventWon, "a", "Alice", testBase),
		testEvent("2", domain.EventWon, "b", "Bob", testBase),
		testEvent("3", domain.EventWon, "c", "Bob", testBase),
	)

	answer := responder.Respond("who is winning the most bids", report)

	assert.NotNil(t, answer.Chart)
	assert.Equal(t, []string{"Bob", "Alice"}, answer.Chart.Labels)
	assert.Equal(t, []float64{2, 1}, answer.Chart.Values)
}

func TestResponder_DealSize(t *testing.T) {
	responder := NewResponder()
	won := testEvent("1", domain.EventWon, "a", "Alice", testBase)
	won.DollarAmount = dollars(125000)

	answer := responder.Respond("what's our average job size", reportFor(won))

	assert.Contains(t, answer.Text, "Alice")
	assert.Contains(t, answer.Text, "$125000")
}

func TestResponder_PendingPipeline(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventProposalSent, "open job", "Alice", testBase),
		testEvent("2", domain.EventProposalSent, "closed job", "Bob", testBase),
		testEvent("3", domain.EventWon, "closed job", "Bob", testBase.AddDate(0, 0, 5)),
	)

	answer := responder.Respond("what's still pending?", report)

	assert.Contains(t, answer.Text, "1 proposals awaiting a decision")
	assert.Contains(t, answer.Text, "open job")
	assert.NotContains(t, answer.Text, "closed job")
}

func TestResponder_DeterministicForIdenticalInput(t *testing.T) {
	responder := NewResponder()
	report := reportFor(
		testEvent("1", domain.EventWon, "a", "Alice", testBase),
		testEvent("2", domain.EventLost, "b", "Alice", testBase),
		testEvent("3", domain.EventWon, "c", "Bob", testBase),
		testEvent("4", domain.EventLost, "d", "Bob", testBase),
	)

	first := responder.Respond("win rate", report)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, responder.Respond("win rate", report))
	}
}
