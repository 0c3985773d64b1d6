package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/masterroofing/sales-insights-service/internal/domain"
	"github.com/masterroofing/sales-insights-service/internal/dto"
)

// Default configuration constants.
const (
	defaultNumProjects = 40
	defaultTimeout     = 30 * time.Second
	defaultSpanDays    = 180
	bulkBatchSize      = 500
)

var projectPrefixes = []string{
	"Beach 67th St", "Queens Plaza", "Atlantic Ave Warehouse", "Flatbush Depot",
	"Rockaway School", "Jamaica Terminal", "Bayside Clinic", "Astoria Lofts",
}

var assignees = []string{
	"John Mitchell", "Sarah Alvarez", "Mike Donnelly", "Priya Raman", "",
}

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numProjects = flag.Int("projects", defaultNumProjects, "Number of synthetic projects to generate")
		spanDays    = flag.Int("span", defaultSpanDays, "How many days back the generated history reaches")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	events := generate(rng, *numProjects, *spanDays)

	client := &http.Client{Timeout: *timeout}
	sent := 0
	for start := 0; start < len(events); start += bulkBatchSize {
		end := start + bulkBatchSize
		if end > len(events) {
			end = len(events)
		}
		if err := postBulk(client, *baseURL, events[start:end]); err != nil {
			os.Stderr.WriteString("Seed failed: " + err.Error() + "\n")
			os.Exit(1)
		}
		sent += end - start
	}

	fmt.Printf("Seeded %d events across %d projects\n", sent, *numProjects)
}

// generate builds a plausible bid lifecycle per project: an RFP, usually a
// proposal a few days later, and for some projects a decision with a dollar
// amount. A slice of projects gets follow-ups and GC responses sprinkled in.
func generate(rng *rand.Rand, numProjects, spanDays int) []dto.PublishEventRequest {
	var events []dto.PublishEventRequest
	now := time.Now()

	for i := 0; i < numProjects; i++ {
		prefix := projectPrefixes[rng.Intn(len(projectPrefixes))]
		project := fmt.Sprintf("%s %s", prefix, uuid.NewString()[:8])
		assignee := assignees[rng.Intn(len(assignees))]

		rfpAt := now.AddDate(0, 0, -rng.Intn(spanDays)-14)
		events = append(events, dto.PublishEventRequest{
			EventType:   string(domain.EventRFPReceived),
			ProjectName: project,
			Assignee:    assignee,
			ScannedAt:   rfpAt,
		})

		// Roughly 1 in 10 RFPs never gets a proposal.
		if rng.Intn(10) == 0 {
			continue
		}

		proposalAt := rfpAt.AddDate(0, 0, 1+rng.Intn(9))
		events = append(events, dto.PublishEventRequest{
			EventType:   string(domain.EventProposalSent),
			ProjectName: project,
			Assignee:    assignee,
			ScannedAt:   proposalAt,
		})

		if rng.Intn(3) == 0 {
			events = append(events, dto.PublishEventRequest{
				EventType:   string(domain.EventGCResponse),
				ProjectName: project,
				Assignee:    assignee,
				ScannedAt:   proposalAt.AddDate(0, 0, 1+rng.Intn(5)),
			})
		}

		if rng.Intn(4) == 0 {
			events = append(events, dto.PublishEventRequest{
				EventType:   string(domain.EventFollowUp),
				ProjectName: project,
				Assignee:    assignee,
				ScannedAt:   proposalAt.AddDate(0, 0, 3+rng.Intn(10)),
			})
		}

		// About half the proposals reach a decision.
		if rng.Intn(2) == 0 {
			continue
		}

		decisionAt := proposalAt.AddDate(0, 0, 5+rng.Intn(30))
		if decisionAt.After(now) {
			continue
		}

		decisionType := domain.EventWon
		if rng.Intn(5) < 2 {
			decisionType = domain.EventLost
		}
		amount := float64(10000 + rng.Intn(190000))
		events = append(events, dto.PublishEventRequest{
			EventType:    string(decisionType),
			ProjectName:  project,
			Assignee:     assignee,
			ScannedAt:    decisionAt,
			DollarAmount: &amount,
		})
	}

	return events
}

func postBulk(client *http.Client, baseURL string, events []dto.PublishEventRequest) error {
	body, err := json.Marshal(dto.PublishEventsBulkRequest{Events: events})
	if err != nil {
		return fmt.Errorf("failed to marshal bulk request: %w", err)
	}

	resp, err := client.Post(baseURL+"/events/bulk", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to post bulk events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("bulk publish returned status %d", resp.StatusCode)
	}

	var bulkResp dto.PublishBulkEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if bulkResp.Rejected > 0 {
		fmt.Printf("Warning: %d events rejected\n", bulkResp.Rejected)
	}

	return nil
}
