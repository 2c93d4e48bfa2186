package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/pinger"
	"pingerd/pkg/progress"
	"pingerd/pkg/pubsub"
	"pingerd/pkg/registry"
	"pingerd/pkg/store"
	"pingerd/pkg/util"
)

const MaxURLsPerCampaign = 10000

// Runner orchestrates campaigns: it explodes urls x endpoints into a job set,
// feeds the worker pool and reacts to results. All blocking I/O happens
// inside the pool workers; the runner itself only enqueues and bookkeeps.
type Runner struct {
	registry *registry.Registry
	pool     *pinger.Pool
	progress *progress.Store
	repo     store.Repository
	pubsub   pubsub.PubSub

	mu     sync.Mutex
	active map[string]context.CancelFunc

	log *log.Entry
}

func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		active: make(map[string]context.CancelFunc),
		log: log.WithFields(map[string]interface{}{
			"service": "campaign",
		}),
	}

	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}

	if r.registry == nil {
		return nil, ErrRegistryIsRequired
	}
	if r.pool == nil {
		return nil, ErrPoolIsRequired
	}
	if r.progress == nil {
		return nil, ErrProgressIsRequired
	}
	if r.repo == nil {
		return nil, ErrStorageIsRequired
	}

	return r, nil
}

// Start validates the campaign, builds the job set and begins feeding it to
// the pool. It returns the job total immediately; callers poll progress.
// No job exists until every validation has passed.
func (r *Runner) Start(ctx context.Context, campaignID string, urls []string, categories metav1.CategoryList) (int, error) {
	if len(urls) == 0 {
		return 0, ErrNoURLs
	}

	if len(urls) > MaxURLsPerCampaign {
		return 0, fmt.Errorf("%w: %d urls, limit %d", ErrCampaignTooLarge, len(urls), MaxURLsPerCampaign)
	}

	var errs error

	for _, u := range urls {
		parsed, err := url.ParseRequestURI(u)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrInvalidURL, u))
		}
	}

	if errs != nil {
		return 0, errs
	}

	endpoints, err := r.registry.List(categories...)
	if err != nil {
		return 0, err
	}

	jobs := buildJobs(campaignID, urls, endpoints)

	// Shuffle across urls and endpoints both, so no remote host sees a
	// burst of consecutive requests.
	util.Shuffle(jobs)

	if err := r.progress.Start(campaignID, len(jobs)); err != nil {
		return 0, err
	}

	if err := r.repo.Campaign().UpdateStatusByID(ctx, campaignID, metav1.CampaignStatusRunning); err != nil {
		r.log.Error(err)
	}

	runCtx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	r.active[campaignID] = cancel
	r.mu.Unlock()

	r.publishCampaign(campaignID, metav1.CampaignStatusRunning)

	go r.feed(runCtx, campaignID, jobs)

	r.log.Infof("campaign %s started: %d urls x %d endpoints = %d jobs", campaignID, len(urls), len(endpoints), len(jobs))

	return len(jobs), nil
}

// Cancel stops feeding new jobs. In-flight jobs drain; the campaign turns
// terminal once they have. Idempotent.
func (r *Runner) Cancel(campaignID string) error {
	r.mu.Lock()
	cancel, ok := r.active[campaignID]
	r.mu.Unlock()

	if ok {
		cancel()
		return nil
	}

	if _, err := r.progress.Get(campaignID); err != nil {
		return ErrCampaignNotFound
	}

	return nil
}

func buildJobs(campaignID string, urls []string, endpoints []metav1.Endpoint) []*metav1.Job {
	jobs := make([]*metav1.Job, 0, len(urls)*len(endpoints))

	for i, u := range urls {
		for _, e := range endpoints {
			jobs = append(jobs, &metav1.Job{
				ID:         fmt.Sprintf("%s/%s/%d", campaignID, e.ID, i),
				CampaignID: campaignID,
				TargetURL:  u,
				Endpoint:   e,
			})
		}
	}

	return jobs
}

func (r *Runner) feed(ctx context.Context, campaignID string, jobs []*metav1.Job) {
	var wg sync.WaitGroup

	sink := &campaignSink{r: r, wg: &wg}

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)

		if err := r.pool.Submit(ctx, job, sink); err != nil {
			wg.Done()
			break
		}
	}

	wg.Wait()

	// When feeding stopped short the campaign cannot complete through Apply;
	// it turns Cancelled here after the in-flight drain. Cancel is a no-op
	// when the last Apply already made the campaign terminal.
	if err := r.progress.Cancel(campaignID); err == nil {
		if snapshot, err := r.progress.Get(campaignID); err == nil && snapshot.Status == metav1.CampaignStatusCancelled {
			r.persistStatus(campaignID, metav1.CampaignStatusCancelled)
			r.publishCampaign(campaignID, metav1.CampaignStatusCancelled)
		}
	}

	r.mu.Lock()
	delete(r.active, campaignID)
	r.mu.Unlock()
}

func (r *Runner) persistStatus(campaignID string, status metav1.CampaignStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if err := r.repo.Campaign().UpdateStatusByID(ctx, campaignID, status); err != nil {
		r.log.Error(err)
	}
}

func (r *Runner) publishCampaign(campaignID string, status metav1.CampaignStatus) {
	if r.pubsub == nil {
		return
	}

	b, err := json.Marshal(map[string]interface{}{
		"campaign_id": campaignID,
		"status":      status,
		"timestamp":   time.Now(),
	})
	if err != nil {
		r.log.Error(err)
		return
	}

	if err := r.pubsub.Publish(pubsub.TopicCampaign, b); err != nil {
		r.log.Error(err)
	}
}

func (r *Runner) publishActivity(result *metav1.PingResult) {
	if r.pubsub == nil {
		return
	}

	b, err := json.Marshal(result)
	if err != nil {
		r.log.Error(err)
		return
	}

	if err := r.pubsub.Publish(pubsub.TopicActivity, b); err != nil {
		r.log.Error(err)
	}
}

// campaignSink folds pool callbacks back into progress state. One sink per
// campaign; its WaitGroup is the drain barrier for cancellation.
type campaignSink struct {
	r  *Runner
	wg *sync.WaitGroup
}

func (s *campaignSink) Started(job *metav1.Job) {
	s.r.progress.MarkDispatched(job.CampaignID, job.Endpoint.Name, job.TargetURL)
}

func (s *campaignSink) Resolved(result *metav1.PingResult) {
	defer s.wg.Done()

	applied, err := s.r.progress.Apply(result)
	if err != nil {
		s.r.log.Error(err)
		return
	}

	if applied.Duplicate {
		return
	}

	s.r.publishActivity(result)

	if applied.Completed {
		s.r.persistStatus(result.CampaignID, applied.Snapshot.Status)
		s.r.publishCampaign(result.CampaignID, applied.Snapshot.Status)
	}
}

func (s *campaignSink) Skipped(_ *metav1.Job) {
	s.wg.Done()
}
