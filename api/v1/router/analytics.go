package router

import (
	"sort"

	"pingerd/api"
	"pingerd/api/v1/objects"
	metav1 "pingerd/pkg/meta/v1"
)

func (r *router) analyticsGet(c api.Context) {
	campaigns, err := r.store.Campaign().FindAll(c.RequestContext())
	if err != nil {
		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	results, err := r.store.ResultLog().FindAll(c.RequestContext())
	if err != nil {
		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	c.JSON(buildAnalytics(campaigns, results))
}

func buildAnalytics(campaigns []metav1.Campaign, results []metav1.PingResult) *objects.ResponseAnalytics {
	resp := &objects.ResponseAnalytics{}

	resp.Overview.TotalCampaigns = len(campaigns)
	resp.Overview.StatusCounts = make(map[metav1.CampaignStatus]int, len(campaigns))

	for _, campaign := range campaigns {
		resp.Overview.TotalURLs += len(campaign.URLs)
		resp.Overview.StatusCounts[campaign.Status]++
	}

	services := make(map[string]*objects.AnalyticsService)
	latency := make(map[string]int64)

	for _, res := range results {
		// Only final results count, so a retried job contributes once.
		if !res.Final {
			continue
		}

		s, ok := services[res.EndpointID]
		if !ok {
			s = &objects.AnalyticsService{
				EndpointID:   res.EndpointID,
				EndpointName: res.EndpointName,
				Category:     res.Category,
			}
			services[res.EndpointID] = s
		}

		s.Attempts++
		latency[res.EndpointID] += res.LatencyMS

		if res.Outcome == metav1.OutcomeSuccess {
			s.Successful++
			resp.Overview.SuccessfulPings++
		} else {
			resp.Overview.FailedPings++
		}
	}

	if processed := resp.Overview.SuccessfulPings + resp.Overview.FailedPings; processed > 0 {
		resp.Overview.SuccessRate = float64(resp.Overview.SuccessfulPings) / float64(processed) * 100
	}

	resp.Services = make([]objects.AnalyticsService, 0, len(services))

	for id, s := range services {
		if s.Attempts > 0 {
			s.SuccessRate = float64(s.Successful) / float64(s.Attempts) * 100
			s.AvgLatencyMS = latency[id] / int64(s.Attempts)
		}

		resp.Services = append(resp.Services, *s)
	}

	sort.Slice(resp.Services, func(i, j int) bool {
		a, b := resp.Services[i], resp.Services[j]

		if a.SuccessRate != b.SuccessRate {
			return a.SuccessRate > b.SuccessRate
		}

		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}

		return a.EndpointID < b.EndpointID
	})

	return resp
}
