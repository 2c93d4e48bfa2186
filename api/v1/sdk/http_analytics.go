package sdk

import (
	"pingerd/api/v1/objects"
)

type httpAnalytics struct {
	client *httpClient
}

func (a *httpAnalytics) Overview() (*objects.ResponseAnalytics, error) {
	resp := &objects.ResponseAnalytics{}

	if err := a.client.get("/analytics", resp); err != nil {
		return nil, err
	}

	return resp, nil
}
