package memstore

import (
	"context"
	"sync"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/store"
	"pingerd/pkg/util"
)

// NewStore returns an in-process repository. Used for development and tests;
// not durable across restarts.
func NewStore() store.Repository {
	return &mem{
		campaignrepo: &campaignrepo{
			campaigns: make(map[string]metav1.Campaign),
		},
		resultlogrepo: &resultlogrepo{},
	}
}

type mem struct {
	campaignrepo  *campaignrepo
	resultlogrepo *resultlogrepo
}

func (m *mem) Campaign() store.Campaign {
	return m.campaignrepo
}

func (m *mem) ResultLog() store.ResultLog {
	return m.resultlogrepo
}

type campaignrepo struct {
	mu        sync.RWMutex
	campaigns map[string]metav1.Campaign
}

func (c *campaignrepo) FindOneByID(_ context.Context, id string) (*metav1.Campaign, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	campaign, ok := c.campaigns[id]
	if !ok {
		return nil, store.ErrCampaignNotFound
	}

	return &campaign, nil
}

func (c *campaignrepo) FindAll(_ context.Context) ([]metav1.Campaign, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var campaigns []metav1.Campaign

	for _, campaign := range c.campaigns {
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func (c *campaignrepo) InsertOne(_ context.Context, campaign *metav1.CampaignCreate) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := util.RandomString(24)

	c.campaigns[id] = metav1.Campaign{
		ID:         id,
		URLs:       campaign.URLs,
		Categories: campaign.Categories,
		Status:     campaign.Status,
		CreatedAt:  campaign.CreatedAt,
	}

	return id, nil
}

func (c *campaignrepo) UpdateStatusByID(_ context.Context, id string, status metav1.CampaignStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	campaign, ok := c.campaigns[id]
	if !ok {
		return store.ErrCampaignNotFound
	}

	campaign.Status = status
	c.campaigns[id] = campaign

	return nil
}

type resultlogrepo struct {
	mu      sync.RWMutex
	results []metav1.PingResult
}

func (r *resultlogrepo) Append(_ context.Context, result *metav1.PingResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, *result)

	return nil
}

func (r *resultlogrepo) FindAll(_ context.Context) ([]metav1.PingResult, error) {
	return r.find(func(metav1.PingResult) bool {
		return true
	})
}

func (r *resultlogrepo) FindByCampaignID(_ context.Context, campaignID string) ([]metav1.PingResult, error) {
	return r.find(func(res metav1.PingResult) bool {
		return res.CampaignID == campaignID
	})
}

func (r *resultlogrepo) FindByJobID(_ context.Context, jobID string) ([]metav1.PingResult, error) {
	return r.find(func(res metav1.PingResult) bool {
		return res.JobID == jobID
	})
}

func (r *resultlogrepo) find(match func(metav1.PingResult) bool) ([]metav1.PingResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []metav1.PingResult

	for _, res := range r.results {
		if match(res) {
			out = append(out, res)
		}
	}

	return out, nil
}
