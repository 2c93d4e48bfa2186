package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"pingerd/api"
	v1 "pingerd/api/v1"
	"pingerd/api/v1/objects"
	"pingerd/api/v1/sdk"
	metav1 "pingerd/pkg/meta/v1"
	"pingerd/test"
)

func fakeEndpoints(serverURL string, n int) []metav1.Endpoint {
	endpoints := make([]metav1.Endpoint, 0, n)

	for i := 0; i < n; i++ {
		endpoints = append(endpoints, metav1.Endpoint{
			ID:           fmt.Sprintf("ep%d", i),
			Name:         fmt.Sprintf("Endpoint %d", i),
			Category:     metav1.CategoryGoogle,
			URLTemplate:  fmt.Sprintf("%s/ping/%d?url=%%s", serverURL, i),
			Method:       metav1.MethodGet,
			TimeoutClass: metav1.TimeoutClassDefault,
		})
	}

	return endpoints
}

func testAPI(t *testing.T, opts ...v1.Option) v1.V1 {
	t.Helper()

	apiV1, err := v1.New(append([]v1.Option{v1.WithMemoryStorage()}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}

	handler := api.New(chi.NewRouter())

	if err := apiV1.Setup(handler); err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(handler.Handler())
	t.Cleanup(server.Close)

	client, err := sdk.NewWithOpts(sdk.WithHTTPAddr(server.URL))
	if err != nil {
		t.Fatal(err)
	}

	return client
}

func waitStatus(t *testing.T, client v1.V1, id string, want metav1.CampaignStatus) *metav1.CampaignSnapshot {
	t.Helper()

	var snapshot *metav1.CampaignSnapshot

	ok := test.Eventually(time.Second*10, func() bool {
		s, err := client.Campaigns().Progress(id)
		if err != nil || s.Status != want {
			return false
		}

		snapshot = s
		return true
	})

	if !ok {
		t.Fatalf("campaign %s never reached %s", id, want)
	}

	return snapshot
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	pings := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer pings.Close()

	client := testAPI(t, v1.WithEndpoints(fakeEndpoints(pings.URL, 2)...))

	created, err := client.Campaigns().Create(&objects.RequestPostCampaign{
		URLs: []string{"http://blog1.example.com", "http://blog2.example.com"},
	})
	if err != nil {
		t.Error(err)
		return
	}

	if created.ID == "" {
		t.Error("empty campaign id")
	}

	test.Diff(t, "total jobs", 4, created.Total)

	snapshot := waitStatus(t, client, created.ID, metav1.CampaignStatusCompleted)

	test.Diff(t, "processed", 4, snapshot.Processed)
	test.Diff(t, "successful", 4, snapshot.Successful)

	results, err := client.Campaigns().Results(created.ID, nil)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "result count", 4, len(results))

	all, err := client.Campaigns().All()
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "campaign count", 1, len(all))
	test.Diff(t, "persisted status", metav1.CampaignStatusCompleted, all[0].Status)
}

func TestCampaignCancelOverHTTP(t *testing.T) {
	pings := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond * 50)
		w.WriteHeader(200)
	}))
	defer pings.Close()

	client := testAPI(t, v1.WithEndpoints(fakeEndpoints(pings.URL, 10)...))

	created, err := client.Campaigns().Create(&objects.RequestPostCampaign{
		URLs: []string{"http://blog1.example.com", "http://blog2.example.com"},
	})
	if err != nil {
		t.Error(err)
		return
	}

	if err := client.Campaigns().Cancel(created.ID); err != nil {
		t.Error(err)
		return
	}

	snapshot := waitStatus(t, client, created.ID, metav1.CampaignStatusCancelled)

	if snapshot.Processed >= created.Total {
		t.Errorf("cancel had no effect: %d of %d processed", snapshot.Processed, created.Total)
	}
}

func TestResultsFilteredByQuery(t *testing.T) {
	pings := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ping/0" {
			w.WriteHeader(410)
			return
		}
		w.WriteHeader(200)
	}))
	defer pings.Close()

	client := testAPI(t, v1.WithEndpoints(fakeEndpoints(pings.URL, 2)...), v1.WithMaxAttempts(1))

	created, err := client.Campaigns().Create(&objects.RequestPostCampaign{
		URLs: []string{"http://blog1.example.com"},
	})
	if err != nil {
		t.Error(err)
		return
	}

	waitStatus(t, client, created.ID, metav1.CampaignStatusPartiallyFailed)

	failures, err := client.Campaigns().Results(created.ID, &objects.RequestGetResults{
		Outcome: string(metav1.OutcomeFailure),
	})
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "failures", 1, len(failures))
	test.Diff(t, "failed endpoint", "ep0", failures[0].EndpointID)

	byEndpoint, err := client.Campaigns().Results(created.ID, &objects.RequestGetResults{
		Endpoint: "ep1",
	})
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "endpoint results", 1, len(byEndpoint))
	test.Diff(t, "outcome", metav1.OutcomeSuccess, byEndpoint[0].Outcome)

	both, err := client.Campaigns().Results(created.ID, &objects.RequestGetResults{
		Outcome:  string(metav1.OutcomeSuccess),
		Endpoint: "ep0",
	})
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "disjoint filter", 0, len(both))
}

func TestAnalyticsOverview(t *testing.T) {
	pings := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ping/0" {
			w.WriteHeader(410)
			return
		}
		w.WriteHeader(200)
	}))
	defer pings.Close()

	client := testAPI(t, v1.WithEndpoints(fakeEndpoints(pings.URL, 2)...), v1.WithMaxAttempts(1))

	created, err := client.Campaigns().Create(&objects.RequestPostCampaign{
		URLs: []string{"http://blog1.example.com", "http://blog2.example.com"},
	})
	if err != nil {
		t.Error(err)
		return
	}

	waitStatus(t, client, created.ID, metav1.CampaignStatusPartiallyFailed)

	analytics, err := client.Analytics().Overview()
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "campaigns", 1, analytics.Overview.TotalCampaigns)
	test.Diff(t, "urls", 2, analytics.Overview.TotalURLs)
	test.Diff(t, "successful", 2, analytics.Overview.SuccessfulPings)
	test.Diff(t, "failed", 2, analytics.Overview.FailedPings)
	test.Diff(t, "success rate", 50.0, analytics.Overview.SuccessRate)
	test.Diff(t, "status counts", map[metav1.CampaignStatus]int{
		metav1.CampaignStatusPartiallyFailed: 1,
	}, analytics.Overview.StatusCounts)

	test.Diff(t, "services", 2, len(analytics.Services))

	// Best performer first.
	test.Diff(t, "top service", "ep1", analytics.Services[0].EndpointID)
	test.Diff(t, "top rate", 100.0, analytics.Services[0].SuccessRate)
	test.Diff(t, "worst service", "ep0", analytics.Services[1].EndpointID)
	test.Diff(t, "worst attempts", 2, analytics.Services[1].Attempts)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	client := testAPI(t)

	_, err := client.Campaigns().Create(&objects.RequestPostCampaign{
		URLs:       []string{"http://blog.example.com"},
		Categories: []string{"social_media"},
	})

	apiErr, ok := err.(*objects.APIError)
	if !ok {
		t.Errorf("want APIError, got %v", err)
		return
	}

	test.Diff(t, "error type", objects.ErrorTypeValidation, apiErr.Type)
}

func TestCreateRejectsInvalidURLs(t *testing.T) {
	client := testAPI(t)

	_, err := client.Campaigns().Create(&objects.RequestPostCampaign{
		URLs: []string{"not a url"},
	})

	apiErr, ok := err.(*objects.APIError)
	if !ok {
		t.Errorf("want APIError, got %v", err)
		return
	}

	test.Diff(t, "error type", objects.ErrorTypeValidation, apiErr.Type)
}

func TestProgressUnknownCampaign(t *testing.T) {
	client := testAPI(t)

	_, err := client.Campaigns().Progress("missing")

	apiErr, ok := err.(*objects.APIError)
	if !ok {
		t.Errorf("want APIError, got %v", err)
		return
	}

	test.Diff(t, "error type", objects.ErrorTypeNotFound, apiErr.Type)
}

func TestCategoriesStats(t *testing.T) {
	client := testAPI(t)

	stats, err := client.Categories().Stats()
	if err != nil {
		t.Error(err)
		return
	}

	if stats.Total == 0 {
		t.Error("empty catalog")
	}

	test.Diff(t, "categories", len(metav1.CategoryListAll), len(stats.Categories))
}
