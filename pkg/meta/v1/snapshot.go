package v1

import "time"

// Activity is one entry in the recent-activity ring exposed to the polling UI.
type Activity struct {
	Endpoint string `json:"service"`

	URL string `json:"url"`

	Success bool `json:"success"`

	Outcome Outcome `json:"outcome"`

	LatencyMS int64 `json:"response_time_ms"`

	Timestamp string `json:"timestamp"`
}

// EndpointStats aggregates final outcomes per endpoint within one campaign.
type EndpointStats struct {
	Endpoint string `json:"service"`

	Attempts int `json:"attempts"`

	Successes int `json:"successes"`

	TotalLatencyMS int64 `json:"-"`

	AvgLatencyMS int64 `json:"avg_response_time_ms"`
}

// CampaignSnapshot is a consistent, point-in-time copy of campaign progress.
// It is what the polling UI reads; all fields of one update appear together.
type CampaignSnapshot struct {
	CampaignID string `json:"id"`

	Status CampaignStatus `json:"status"`

	Total int `json:"total"`

	Processed int `json:"processed"`

	Successful int `json:"successful"`

	Failed int `json:"failed"`

	Pending int `json:"pending"`

	Percentage float64 `json:"percentage"`

	SuccessRate float64 `json:"success_rate"`

	CurrentEndpoint string `json:"currentService"`

	CurrentURL string `json:"currentUrl"`

	RecentActivities []Activity `json:"recentActivities"`

	EndpointBreakdown []EndpointStats `json:"serviceBreakdown,omitempty"`

	// ProcessingRate is final pings per second since campaign start.
	ProcessingRate float64 `json:"processing_rate"`

	EstimatedTimeRemaining string `json:"estimatedTimeRemaining"`

	Elapsed string `json:"elapsed_time"`

	StartedAt time.Time `json:"started_at"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
