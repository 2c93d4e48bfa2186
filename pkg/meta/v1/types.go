package v1

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryGoogle Category = "google"

	CategorySearchEngines Category = "search_engines"

	CategoryGlobalRSS Category = "global_rss"

	CategoryRegional Category = "regional"

	CategoryValidation Category = "validation"

	CategoryArchive Category = "archive"

	CategoryDirectories Category = "directories"
)

type CategoryList []Category

var CategoryListAll CategoryList = []Category{
	CategoryGoogle,
	CategorySearchEngines,
	CategoryGlobalRSS,
	CategoryRegional,
	CategoryValidation,
	CategoryArchive,
	CategoryDirectories,
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))

	for _, known := range CategoryListAll {
		if c == known {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown category: %q", s)
}

type Method string

const (
	MethodGet Method = "GET"

	MethodPost Method = "POST"

	MethodXMLRPC Method = "XMLRPC"
)

type TimeoutClass string

const (
	TimeoutClassDefault TimeoutClass = "default"

	TimeoutClassRSS TimeoutClass = "rss"

	TimeoutClassSitemap TimeoutClass = "sitemap"

	TimeoutClassArchive TimeoutClass = "archive"
)

// Duration maps a timeout class to the per-attempt deadline.
func (tc TimeoutClass) Duration() time.Duration {
	switch tc {
	case TimeoutClassRSS:
		return time.Second * 10
	case TimeoutClassSitemap:
		return time.Second * 15
	case TimeoutClassArchive:
		return time.Second * 30
	default:
		return time.Second * 10
	}
}

// Endpoint is one external ping target. Endpoints are immutable and loaded
// once at process start.
type Endpoint struct {
	ID string `json:"id"`

	Name string `json:"name"`

	Category Category `json:"category"`

	// URLTemplate is either a plain URL or a template with a single %s
	// placeholder which receives the escaped target URL.
	URLTemplate string `json:"url_template"`

	Method Method `json:"method"`

	TimeoutClass TimeoutClass `json:"timeout_class"`

	// Expects lists HTTP statuses counted as success. Empty means 200/201/202.
	Expects []int `json:"expects,omitempty"`
}

// Job is one (campaign, target url, endpoint) triple. A job is created by the
// campaign runner, consumed exactly once by a pool worker and terminal after
// success or attempt exhaustion.
type Job struct {
	ID string `json:"id"`

	CampaignID string `json:"campaign_id"`

	TargetURL string `json:"target_url"`

	Endpoint Endpoint `json:"endpoint"`
}

type Outcome string

const (
	OutcomeSuccess Outcome = "Success"

	OutcomeFailure Outcome = "Failure"

	OutcomeTimeout Outcome = "Timeout"
)

type ErrorKind string

const (
	ErrorKindNone ErrorKind = ""

	// ErrorKindNetwork covers connection refused/reset and DNS failures.
	ErrorKindNetwork ErrorKind = "network"

	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindClientRejected is a 4xx other than 429. Never retried.
	ErrorKindClientRejected ErrorKind = "client_rejected"

	// ErrorKindServer is a 5xx or 429. Retriable.
	ErrorKindServer ErrorKind = "server"
)

// PingResult is the immutable outcome of one ping attempt. Every attempt is
// appended to the durable result log; only results with Final=true feed
// campaign progress.
type PingResult struct {
	CampaignID string `json:"campaign_id" bson:"campaign_id"`

	JobID string `json:"job_id" bson:"job_id"`

	TargetURL string `json:"target_url" bson:"target_url"`

	EndpointID string `json:"endpoint_id" bson:"endpoint_id"`

	EndpointName string `json:"endpoint_name" bson:"endpoint_name"`

	Category Category `json:"category" bson:"category"`

	Attempt int `json:"attempt" bson:"attempt"`

	Final bool `json:"final" bson:"final"`

	Outcome Outcome `json:"outcome" bson:"outcome"`

	HTTPStatus int `json:"http_status,omitempty" bson:"http_status,omitempty"`

	LatencyMS int64 `json:"latency_ms" bson:"latency_ms"`

	ErrorKind ErrorKind `json:"error_kind,omitempty" bson:"error_kind,omitempty"`

	ErrorDetail string `json:"error_detail,omitempty" bson:"error_detail,omitempty"`

	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type CampaignStatus string

const (
	CampaignStatusPending CampaignStatus = "Pending"

	CampaignStatusRunning CampaignStatus = "Running"

	CampaignStatusCompleted CampaignStatus = "Completed"

	CampaignStatusPartiallyFailed CampaignStatus = "PartiallyFailed"

	CampaignStatusCancelled CampaignStatus = "Cancelled"
)

// Terminal reports whether no further progress mutations are possible.
func (s CampaignStatus) Terminal() bool {
	switch s {
	case CampaignStatusCompleted, CampaignStatusPartiallyFailed, CampaignStatusCancelled:
		return true
	}
	return false
}

type Campaign struct {
	ID string `json:"id" bson:"_id,omitempty"`

	URLs []string `json:"urls" bson:"urls"`

	Categories CategoryList `json:"categories" bson:"categories"`

	Status CampaignStatus `json:"status" bson:"status"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type CampaignCreate struct {
	URLs []string `json:"urls" bson:"urls"`

	Categories CategoryList `json:"categories" bson:"categories"`

	Status CampaignStatus `json:"status" bson:"status"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
