package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"time"

	"pingerd/api"
	"pingerd/api/v1/objects"
	"pingerd/pkg/campaign"
	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/progress"
)

func (r *router) campaignsGetAll(c api.Context) {
	campaigns, err := r.store.Campaign().FindAll(c.RequestContext())
	if err != nil {
		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	if campaigns == nil {
		campaigns = []metav1.Campaign{}
	}

	c.JSON(campaigns)
}

func (r *router) campaignsCreate(c api.Context) {
	var req *objects.RequestPostCampaign

	data, err := ioutil.ReadAll(c.Request().Body)
	if data != nil && int64(len(data)) >= objects.DefaultMaxPOSTContentLength {
		c.RequestEntityTooLarge()
		return
	}

	if err != nil {
		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&req); err != nil {
		r.log.Error(err)
		c.BadRequest()
		return
	}

	categories := make(metav1.CategoryList, 0, len(req.Categories))

	for _, raw := range req.Categories {
		category, err := metav1.ParseCategory(raw)
		if err != nil {
			c.BadRequest().JSON(&objects.APIError{
				Type:    objects.ErrorTypeValidation,
				Message: err.Error(),
			})
			return
		}

		categories = append(categories, category)
	}

	var id string

	if err := r.storeRetry(func() error {
		var e error
		id, e = r.store.Campaign().InsertOne(c.RequestContext(), &metav1.CampaignCreate{
			URLs:       req.URLs,
			Categories: categories,
			Status:     metav1.CampaignStatusPending,
			CreatedAt:  time.Now(),
		})
		return e
	}); err != nil {
		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	total, err := r.runner.Start(c.RequestContext(), id, req.URLs, categories)
	if err != nil {
		r.log.Error(err)

		if errors.Is(err, campaign.ErrCampaignTooLarge) {
			c.UnprocessableEntity().JSON(&objects.APIError{
				Type:    objects.ErrorTypeValidation,
				Message: err.Error(),
			})
			return
		}

		c.BadRequest().JSON(&objects.APIError{
			Type:    objects.ErrorTypeValidation,
			Message: err.Error(),
		})
		return
	}

	c.Created().JSON(&objects.ResponsePostCampaign{
		ID:    id,
		Total: total,
	})
}

func (r *router) campaignsProgressGet(c api.Context) {
	snapshot, err := r.progress.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, progress.ErrCampaignNotFound) {
			c.NotFound().JSON(&objects.APIError{
				Type: objects.ErrorTypeNotFound,
			})
			return
		}

		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	c.JSON(snapshot)
}

func (r *router) campaignsResultsGet(c api.Context) {
	var query objects.RequestGetResults

	if err := c.BindQuery(&query); err != nil {
		c.BadRequest().JSON(&objects.APIError{
			Type:    objects.ErrorTypeValidation,
			Message: err.Error(),
		})
		return
	}

	results, err := r.store.ResultLog().FindByCampaignID(c.RequestContext(), c.Param("id"))
	if err != nil {
		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	results = filterResults(results, &query)

	if results == nil {
		results = []metav1.PingResult{}
	}

	c.JSON(results)
}

func filterResults(results []metav1.PingResult, query *objects.RequestGetResults) []metav1.PingResult {
	if query.Outcome == "" && query.Endpoint == "" {
		return results
	}

	out := make([]metav1.PingResult, 0, len(results))

	for _, res := range results {
		if query.Outcome != "" && res.Outcome != metav1.Outcome(query.Outcome) {
			continue
		}

		if query.Endpoint != "" && res.EndpointID != query.Endpoint {
			continue
		}

		out = append(out, res)
	}

	return out
}

func (r *router) campaignsCancel(c api.Context) {
	if err := r.runner.Cancel(c.Param("id")); err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			c.NotFound().JSON(&objects.APIError{
				Type: objects.ErrorTypeNotFound,
			})
			return
		}

		r.log.Error(err)
		c.InternalError().JSON(&objects.APIError{
			Type: objects.ErrorTypeInternal,
		})
		return
	}

	c.NoContent()
}
