package domain

// Pairing links a project's first RFP_RECEIVED event to its first
// PROPOSAL_SENT event and records the elapsed calendar days between them.
type Pairing struct {
	Actor       string `json:"actor"`
	Days        int    `json:"days"`
	ProjectName string `json:"project_name"`
}

// ActorMetrics is the per-actor aggregate derived from a full event snapshot.
// WinRate, AvgTurnaroundDays and AvgDealSize are pointers because "no data"
// must stay distinguishable from a genuine zero: an actor with no decided
// bids has a nil win rate, not 0%.
type ActorMetrics struct {
	Actor             string   `json:"actor"`
	TotalBids         int      `json:"total_bids"`
	RFPs              int      `json:"rfps"`
	Proposals         int      `json:"proposals"`
	Wins              int      `json:"wins"`
	Losses            int      `json:"losses"`
	WinRate           *int     `json:"win_rate"`
	AvgTurnaroundDays *float64 `json:"avg_turnaround_days"`
	AvgDealSize       *float64 `json:"avg_deal_size"`
}

// Totals are the dashboard-level counters across all actors.
type Totals struct {
	RFPs        int `json:"rfps"`
	Proposals   int `json:"proposals"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	FollowUps   int `json:"follow_ups"`
	GCResponses int `json:"gc_responses"`
}
