package sdk

import (
	"pingerd/pkg/registry"
)

type httpCategories struct {
	client *httpClient
}

func (c *httpCategories) Stats() (*registry.Stats, error) {
	resp := &registry.Stats{}

	if err := c.client.get("/categories", resp); err != nil {
		return nil, err
	}

	return resp, nil
}
