package sdk

import (
	"fmt"
	"net/url"

	"pingerd/api/v1/objects"
	metav1 "pingerd/pkg/meta/v1"
)

type httpCampaigns struct {
	rest rest
}

func (c *httpCampaigns) Create(campaign *objects.RequestPostCampaign) (*objects.ResponsePostCampaign, error) {
	resp := &objects.ResponsePostCampaign{}

	if err := c.rest.post("", campaign, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *httpCampaigns) All() ([]metav1.Campaign, error) {
	resp := make([]metav1.Campaign, 0)

	if err := c.rest.get("", &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *httpCampaigns) Progress(id string) (*metav1.CampaignSnapshot, error) {
	resp := &metav1.CampaignSnapshot{}

	if err := c.rest.get(fmt.Sprintf("/%s/progress", id), resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *httpCampaigns) Results(id string, query *objects.RequestGetResults) ([]metav1.PingResult, error) {
	resource := fmt.Sprintf("/%s/results", id)

	if query != nil {
		values := url.Values{}

		if query.Outcome != "" {
			values.Set("outcome", query.Outcome)
		}

		if query.Endpoint != "" {
			values.Set("endpoint", query.Endpoint)
		}

		if encoded := values.Encode(); encoded != "" {
			resource += "?" + encoded
		}
	}

	resp := make([]metav1.PingResult, 0)

	if err := c.rest.get(resource, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *httpCampaigns) Cancel(id string) error {
	return c.rest.delete("/"+id, nil)
}
