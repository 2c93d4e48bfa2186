package progress

import (
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"pingerd/internal/cache"
	metav1 "pingerd/pkg/meta/v1"
)

const (
	DefaultRecentLimit = 50

	DefaultRetention = time.Hour * 24

	janitorInterval = time.Minute
)

// Store is the process-wide campaign progress table. It is the only structure
// mutated by many pool workers concurrently; every mutation goes through one
// mutex so readers never observe a partially-updated snapshot.
type Store struct {
	mu        sync.Mutex
	campaigns map[string]*campaignState

	archive     cache.SnapshotArchive
	retention   time.Duration
	recentLimit int

	stopJanitor chan struct{}
	stopOnce    sync.Once

	log *log.Entry
}

type campaignState struct {
	campaignID string
	status     metav1.CampaignStatus

	total      int
	processed  int
	successful int
	failed     int

	currentEndpoint string
	currentURL      string

	recent    []metav1.Activity
	breakdown map[string]*metav1.EndpointStats

	startedAt   time.Time
	completedAt *time.Time

	// done tracks jobs whose final result has been applied, separately from
	// attempt counts, so retry races apply a job at most once.
	done map[string]struct{}
}

// Applied reports what a single Apply call did.
type Applied struct {
	Snapshot metav1.CampaignSnapshot

	// Duplicate means the job's final result was already applied before.
	Duplicate bool

	// Completed means this call moved the campaign into a terminal state.
	Completed bool
}

type Option func(*Store)

// WithArchive keeps terminal snapshots readable after eviction.
func WithArchive(archive cache.SnapshotArchive) Option {
	return func(s *Store) {
		s.archive = archive
	}
}

func WithRetention(d time.Duration) Option {
	return func(s *Store) {
		s.retention = d
	}
}

func WithRecentLimit(n int) Option {
	return func(s *Store) {
		s.recentLimit = n
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		campaigns:   make(map[string]*campaignState),
		retention:   DefaultRetention,
		recentLimit: DefaultRecentLimit,
		stopJanitor: make(chan struct{}),
		log: log.WithFields(map[string]interface{}{
			"service": "progress",
		}),
	}

	for _, o := range opts {
		o(s)
	}

	if s.archive != nil {
		go s.janitor()
	}

	return s
}

func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopJanitor)
	})
}

// Start registers a campaign with total jobs, all pending.
func (s *Store) Start(campaignID string, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[campaignID]; ok {
		return ErrCampaignExists
	}

	s.campaigns[campaignID] = &campaignState{
		campaignID: campaignID,
		status:     metav1.CampaignStatusRunning,
		total:      total,
		breakdown:  make(map[string]*metav1.EndpointStats),
		startedAt:  time.Now(),
		done:       make(map[string]struct{}),
	}

	return nil
}

// MarkDispatched records the most recently started job so the UI shows what
// is being pinged right now, not what last finished.
func (s *Store) MarkDispatched(campaignID, endpointName, targetURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.campaigns[campaignID]
	if !ok {
		return
	}

	st.currentEndpoint = endpointName
	st.currentURL = targetURL
}

// Apply folds one final ping result into the campaign. Idempotent per job.
// Completion is detected here, under the same lock as the counter update, so
// exactly one caller observes the transition.
func (s *Store) Apply(result *metav1.PingResult) (Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.campaigns[result.CampaignID]
	if !ok {
		return Applied{}, ErrCampaignNotFound
	}

	if _, dup := st.done[result.JobID]; dup {
		return Applied{Snapshot: s.snapshotLocked(st), Duplicate: true}, nil
	}
	st.done[result.JobID] = struct{}{}

	success := result.Outcome == metav1.OutcomeSuccess

	st.processed++
	if success {
		st.successful++
	} else {
		st.failed++
	}

	st.recent = append([]metav1.Activity{{
		Endpoint:  result.EndpointName,
		URL:       result.TargetURL,
		Success:   success,
		Outcome:   result.Outcome,
		LatencyMS: result.LatencyMS,
		Timestamp: result.Timestamp.Format("15:04:05"),
	}}, st.recent...)
	if len(st.recent) > s.recentLimit {
		st.recent = st.recent[:s.recentLimit]
	}

	stats, ok := st.breakdown[result.EndpointName]
	if !ok {
		stats = &metav1.EndpointStats{Endpoint: result.EndpointName}
		st.breakdown[result.EndpointName] = stats
	}
	stats.Attempts++
	stats.TotalLatencyMS += result.LatencyMS
	if success {
		stats.Successes++
	}

	completed := false

	if st.processed == st.total && !st.status.Terminal() {
		if st.failed > 0 {
			st.status = metav1.CampaignStatusPartiallyFailed
		} else {
			st.status = metav1.CampaignStatusCompleted
		}

		now := time.Now()
		st.completedAt = &now
		completed = true
	}

	return Applied{Snapshot: s.snapshotLocked(st), Completed: completed}, nil
}

// Get returns a point-in-time copy, falling back to the archive for evicted
// campaigns.
func (s *Store) Get(campaignID string) (*metav1.CampaignSnapshot, error) {
	s.mu.Lock()
	st, ok := s.campaigns[campaignID]
	if ok {
		snapshot := s.snapshotLocked(st)
		s.mu.Unlock()
		return &snapshot, nil
	}
	s.mu.Unlock()

	if s.archive != nil {
		snapshot, err := s.archive.Get(campaignID)
		if err == nil {
			return snapshot, nil
		}
	}

	return nil, ErrCampaignNotFound
}

// All returns snapshots of every campaign still held live.
func (s *Store) All() []metav1.CampaignSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]metav1.CampaignSnapshot, 0, len(s.campaigns))

	for _, st := range s.campaigns {
		out = append(out, s.snapshotLocked(st))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})

	return out
}

// Cancel marks the campaign terminal. No-op when already terminal, so a late
// cancel never overwrites a completed state.
func (s *Store) Cancel(campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.campaigns[campaignID]
	if !ok {
		return ErrCampaignNotFound
	}

	if st.status.Terminal() {
		return nil
	}

	st.status = metav1.CampaignStatusCancelled

	now := time.Now()
	st.completedAt = &now

	return nil
}

// Evict archives a terminal campaign and drops its live entry.
func (s *Store) Evict(campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.evictLocked(campaignID)
}

func (s *Store) evictLocked(campaignID string) error {
	st, ok := s.campaigns[campaignID]
	if !ok {
		return ErrCampaignNotFound
	}

	if s.archive != nil {
		snapshot := s.snapshotLocked(st)
		if err := s.archive.Put(&snapshot); err != nil {
			return err
		}
	}

	delete(s.campaigns, campaignID)

	return nil
}

func (s *Store) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopJanitor:
			return
		}
	}
}

func (s *Store) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.retention)

	for id, st := range s.campaigns {
		if !st.status.Terminal() || st.completedAt == nil {
			continue
		}

		if st.completedAt.Before(cutoff) {
			if err := s.evictLocked(id); err != nil {
				s.log.Error(err)
			}
		}
	}
}

func (s *Store) snapshotLocked(st *campaignState) metav1.CampaignSnapshot {
	snapshot := metav1.CampaignSnapshot{
		CampaignID:      st.campaignID,
		Status:          st.status,
		Total:           st.total,
		Processed:       st.processed,
		Successful:      st.successful,
		Failed:          st.failed,
		Pending:         st.total - st.processed,
		CurrentEndpoint: st.currentEndpoint,
		CurrentURL:      st.currentURL,
		StartedAt:       st.startedAt,
	}

	if st.completedAt != nil {
		completedAt := *st.completedAt
		snapshot.CompletedAt = &completedAt
	}

	if st.total > 0 {
		snapshot.Percentage = round1(float64(st.processed) / float64(st.total) * 100)
	}
	if st.processed > 0 {
		snapshot.SuccessRate = round1(float64(st.successful) / float64(st.processed) * 100)
	}

	snapshot.RecentActivities = make([]metav1.Activity, len(st.recent))
	copy(snapshot.RecentActivities, st.recent)

	for _, stats := range st.breakdown {
		entry := *stats
		if entry.Attempts > 0 {
			entry.AvgLatencyMS = entry.TotalLatencyMS / int64(entry.Attempts)
		}
		snapshot.EndpointBreakdown = append(snapshot.EndpointBreakdown, entry)
	}
	sort.Slice(snapshot.EndpointBreakdown, func(i, j int) bool {
		a, b := snapshot.EndpointBreakdown[i], snapshot.EndpointBreakdown[j]
		if a.Successes != b.Successes {
			return a.Successes > b.Successes
		}
		return a.Endpoint < b.Endpoint
	})

	end := time.Now()
	if st.completedAt != nil {
		end = *st.completedAt
	}

	elapsed := end.Sub(st.startedAt)
	snapshot.Elapsed = formatDuration(elapsed)

	if elapsed > 0 && st.processed > 0 {
		rate := float64(st.processed) / elapsed.Seconds()
		snapshot.ProcessingRate = round2(rate)

		if snapshot.Pending > 0 && rate > 0 {
			eta := time.Duration(float64(snapshot.Pending)/rate) * time.Second
			snapshot.EstimatedTimeRemaining = formatDuration(eta)
		}
	}

	if snapshot.EstimatedTimeRemaining == "" {
		if st.status.Terminal() || snapshot.Pending == 0 {
			snapshot.EstimatedTimeRemaining = "0s"
		} else {
			snapshot.EstimatedTimeRemaining = "unknown"
		}
	}

	return snapshot
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
