package progress

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"pingerd/internal/cache"
	metav1 "pingerd/pkg/meta/v1"
	"pingerd/test"
)

func finalResult(campaignID, jobID string, outcome metav1.Outcome) *metav1.PingResult {
	return &metav1.PingResult{
		CampaignID:   campaignID,
		JobID:        jobID,
		TargetURL:    "http://blog.example.com",
		EndpointName: "Test Endpoint",
		Outcome:      outcome,
		Final:        true,
		LatencyMS:    10,
		Timestamp:    time.Now(),
	}
}

func TestApplyCountsOutcomes(t *testing.T) {
	s := NewStore()

	if err := s.Start("c1", 3); err != nil {
		t.Error(err)
		return
	}

	s.Apply(finalResult("c1", "j1", metav1.OutcomeSuccess))
	applied, err := s.Apply(finalResult("c1", "j2", metav1.OutcomeFailure))
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "processed", 2, applied.Snapshot.Processed)
	test.Diff(t, "successful", 1, applied.Snapshot.Successful)
	test.Diff(t, "failed", 1, applied.Snapshot.Failed)
	test.Diff(t, "pending", 1, applied.Snapshot.Pending)
	test.Diff(t, "status", metav1.CampaignStatusRunning, applied.Snapshot.Status)
	test.Diff(t, "percentage", 66.7, applied.Snapshot.Percentage)
	test.Diff(t, "success rate", 50.0, applied.Snapshot.SuccessRate)
}

func TestApplyIsIdempotentPerJob(t *testing.T) {
	s := NewStore()

	if err := s.Start("c1", 2); err != nil {
		t.Error(err)
		return
	}

	first, err := s.Apply(finalResult("c1", "j1", metav1.OutcomeSuccess))
	if err != nil {
		t.Error(err)
		return
	}

	second, err := s.Apply(finalResult("c1", "j1", metav1.OutcomeSuccess))
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "first duplicate", false, first.Duplicate)
	test.Diff(t, "second duplicate", true, second.Duplicate)
	test.Diff(t, "processed", 1, second.Snapshot.Processed)
}

func TestApplyUnknownCampaign(t *testing.T) {
	s := NewStore()

	if _, err := s.Apply(finalResult("nope", "j1", metav1.OutcomeSuccess)); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("want ErrCampaignNotFound, got %v", err)
	}
}

func TestApplyDetectsCompletionExactlyOnce(t *testing.T) {
	s := NewStore()

	total := 200

	if err := s.Start("c1", total); err != nil {
		t.Error(err)
		return
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	completions := 0

	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			applied, err := s.Apply(finalResult("c1", fmt.Sprintf("j%d", i), metav1.OutcomeSuccess))
			if err != nil {
				t.Error(err)
				return
			}

			if applied.Completed {
				mu.Lock()
				completions++
				mu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	test.Diff(t, "completion observations", 1, completions)

	snapshot, err := s.Get("c1")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "status", metav1.CampaignStatusCompleted, snapshot.Status)
	test.Diff(t, "processed", total, snapshot.Processed)
	test.Diff(t, "pending", 0, snapshot.Pending)
	test.Diff(t, "eta", "0s", snapshot.EstimatedTimeRemaining)

	if snapshot.CompletedAt == nil {
		t.Error("completedAt not set")
	}
}

func TestApplyWithFailuresEndsPartiallyFailed(t *testing.T) {
	s := NewStore()

	if err := s.Start("c1", 2); err != nil {
		t.Error(err)
		return
	}

	s.Apply(finalResult("c1", "j1", metav1.OutcomeSuccess))
	applied, err := s.Apply(finalResult("c1", "j2", metav1.OutcomeTimeout))
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "completed", true, applied.Completed)
	test.Diff(t, "status", metav1.CampaignStatusPartiallyFailed, applied.Snapshot.Status)
}

func TestRecentActivitiesRingIsBounded(t *testing.T) {
	s := NewStore(WithRecentLimit(5))

	if err := s.Start("c1", 100); err != nil {
		t.Error(err)
		return
	}

	for i := 0; i < 20; i++ {
		result := finalResult("c1", fmt.Sprintf("j%d", i), metav1.OutcomeSuccess)
		result.TargetURL = fmt.Sprintf("http://blog.example.com/%d", i)
		s.Apply(result)
	}

	snapshot, err := s.Get("c1")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "ring size", 5, len(snapshot.RecentActivities))
	test.Diff(t, "newest first", "http://blog.example.com/19", snapshot.RecentActivities[0].URL)
}

func TestCancelDoesNotOverwriteTerminalStatus(t *testing.T) {
	s := NewStore()

	if err := s.Start("c1", 1); err != nil {
		t.Error(err)
		return
	}

	s.Apply(finalResult("c1", "j1", metav1.OutcomeSuccess))

	if err := s.Cancel("c1"); err != nil {
		t.Error(err)
		return
	}

	snapshot, err := s.Get("c1")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "status", metav1.CampaignStatusCompleted, snapshot.Status)
}

func TestCancelMarksRunningCampaign(t *testing.T) {
	s := NewStore()

	if err := s.Start("c1", 10); err != nil {
		t.Error(err)
		return
	}

	if err := s.Cancel("c1"); err != nil {
		t.Error(err)
		return
	}

	snapshot, err := s.Get("c1")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "status", metav1.CampaignStatusCancelled, snapshot.Status)

	if snapshot.CompletedAt == nil {
		t.Error("completedAt not set")
	}
}

func TestStartRejectsDuplicateCampaign(t *testing.T) {
	s := NewStore()

	if err := s.Start("c1", 1); err != nil {
		t.Error(err)
		return
	}

	if err := s.Start("c1", 1); !errors.Is(err, ErrCampaignExists) {
		t.Errorf("want ErrCampaignExists, got %v", err)
	}
}

func TestEvictedCampaignReadableFromArchive(t *testing.T) {
	archive, err := cache.NewSnapshotArchive(time.Minute)
	if err != nil {
		t.Error(err)
		return
	}

	s := NewStore(WithArchive(archive))
	defer s.Stop()

	if err := s.Start("c1", 1); err != nil {
		t.Error(err)
		return
	}

	s.Apply(finalResult("c1", "j1", metav1.OutcomeSuccess))

	if err := s.Evict("c1"); err != nil {
		t.Error(err)
		return
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("want ErrCampaignNotFound, got %v", err)
	}

	snapshot, err := s.Get("c1")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "archived status", metav1.CampaignStatusCompleted, snapshot.Status)
	test.Diff(t, "archived processed", 1, snapshot.Processed)
}

func TestAllOrdersByStart(t *testing.T) {
	s := NewStore()

	s.Start("c1", 1)
	time.Sleep(time.Millisecond * 2)
	s.Start("c2", 1)

	all := s.All()

	test.Diff(t, "count", 2, len(all))
	test.Diff(t, "first", "c1", all[0].CampaignID)
	test.Diff(t, "second", "c2", all[1].CampaignID)
}

func TestMarkDispatchedShowsCurrentWork(t *testing.T) {
	s := NewStore()

	s.Start("c1", 2)
	s.MarkDispatched("c1", "Google Sitemap Ping", "http://blog.example.com/sitemap.xml")

	snapshot, err := s.Get("c1")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "current endpoint", "Google Sitemap Ping", snapshot.CurrentEndpoint)
	test.Diff(t, "current url", "http://blog.example.com/sitemap.xml", snapshot.CurrentURL)
}
