package v1

import (
	"pingerd/api/v1/objects"
	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/registry"
)

type Campaigns interface {
	Create(*objects.RequestPostCampaign) (*objects.ResponsePostCampaign, error)
	All() ([]metav1.Campaign, error)
	Progress(id string) (*metav1.CampaignSnapshot, error)

	// Results returns a campaign's result log, narrowed by query when
	// non-nil.
	Results(id string, query *objects.RequestGetResults) ([]metav1.PingResult, error)

	Cancel(id string) error
}

type Categories interface {
	Stats() (*registry.Stats, error)
}

type Analytics interface {
	Overview() (*objects.ResponseAnalytics, error)
}

// V1 is the client surface of the HTTP API.
type V1 interface {
	Campaigns() Campaigns
	Categories() Categories
	Analytics() Analytics
}
