package sdk

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	v1 "pingerd/api/v1"
	"pingerd/api/v1/objects"
)

type rest interface {
	get(resource string, outPtr interface{}) error

	post(resource string, body interface{}, outPtr interface{}) error

	delete(resource string, outPtr interface{}) error
}

type httpClient struct {
	apiURL string
	http   *http.Client

	campaigns  v1.Campaigns
	categories v1.Categories
	analytics  v1.Analytics
}

func newHTTPClient(apiURL string, http *http.Client) v1.V1 {
	c := &httpClient{
		apiURL: apiURL,
		http:   http,
	}

	c.campaigns = &httpCampaigns{
		rest: &httpClient{
			apiURL: apiURL + "/campaigns",
			http:   http,
		},
	}
	c.categories = &httpCategories{
		client: c,
	}
	c.analytics = &httpAnalytics{
		client: c,
	}

	return c
}

func (c *httpClient) Campaigns() v1.Campaigns {
	return c.campaigns
}

func (c *httpClient) Categories() v1.Categories {
	return c.categories
}

func (c *httpClient) Analytics() v1.Analytics {
	return c.analytics
}

func (c *httpClient) get(resource string, outPtr interface{}) error {
	return c.request(http.MethodGet, resource, nil, outPtr)
}

func (c *httpClient) post(resource string, body interface{}, outPtr interface{}) error {
	return c.request(http.MethodPost, resource, body, outPtr)
}

func (c *httpClient) delete(resource string, outPtr interface{}) error {
	return c.request(http.MethodDelete, resource, nil, outPtr)
}

func (c *httpClient) request(method, resource string, body interface{}, outPtr interface{}) error {
	var bodyReader io.Reader

	if body != nil {
		b, err := jsoniter.Marshal(body)
		if err != nil {
			return err
		}

		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.apiURL+resource, bodyReader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if outPtr != nil && resp.StatusCode != http.StatusNoContent {
			return jsoniter.NewDecoder(resp.Body).Decode(outPtr)
		}

		return nil
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < 600 {
		apiErr := &objects.APIError{}

		if err := jsoniter.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Type == "" {
			apiErr.Type = objects.ErrorTypeInternal
			apiErr.Message = resp.Status
		}

		return apiErr
	}

	return nil
}
