package objects

import (
	metav1 "pingerd/pkg/meta/v1"
)

type (
	ResponsePostCampaign struct {
		ID    string `json:"id"`
		Total int    `json:"total"`
	}
)

// AnalyticsOverview aggregates every campaign on record. Ping counts cover
// final results only, so each job contributes once.
type AnalyticsOverview struct {
	TotalCampaigns int `json:"total_campaigns"`
	TotalURLs      int `json:"total_urls"`

	SuccessfulPings int     `json:"successful_pings"`
	FailedPings     int     `json:"failed_pings"`
	SuccessRate     float64 `json:"success_rate"`

	StatusCounts map[metav1.CampaignStatus]int `json:"status_counts"`
}

// AnalyticsService is one endpoint's cross-campaign performance.
type AnalyticsService struct {
	EndpointID   string          `json:"endpoint_id"`
	EndpointName string          `json:"endpoint_name"`
	Category     metav1.Category `json:"category"`

	Attempts    int     `json:"attempts"`
	Successful  int     `json:"successful"`
	SuccessRate float64 `json:"success_rate"`

	AvgLatencyMS int64 `json:"avg_latency_ms"`
}

type ResponseAnalytics struct {
	Overview AnalyticsOverview `json:"overview"`

	// Services is ordered best first, by success rate then attempt volume.
	Services []AnalyticsService `json:"services"`
}
