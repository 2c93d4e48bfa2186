package pinger

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/store"
	"pingerd/pkg/util"
)

const (
	DefaultMaxAttempts = 3

	DefaultBackoffBase = time.Second

	// maxBodyRead bounds how much of a ping response gets drained before the
	// connection is reused.
	maxBodyRead = 64 << 10
)

// Pinger executes one job end to end: sequential attempts against the job's
// endpoint with per-attempt timeout and exponential backoff between attempts.
// Errors never escape; they are captured into the returned PingResult.
type Pinger struct {
	http      *http.Client
	resultLog store.ResultLog

	maxAttempts int
	backoffBase time.Duration

	sleep func(context.Context, time.Duration) error

	log *log.Entry
}

type Option func(*Pinger)

func WithHTTPClient(c *http.Client) Option {
	return func(p *Pinger) {
		p.http = c
	}
}

// WithResultLog appends every attempt to the durable log.
func WithResultLog(resultLog store.ResultLog) Option {
	return func(p *Pinger) {
		p.resultLog = resultLog
	}
}

func WithMaxAttempts(n int) Option {
	return func(p *Pinger) {
		p.maxAttempts = n
	}
}

func WithBackoffBase(d time.Duration) Option {
	return func(p *Pinger) {
		p.backoffBase = d
	}
}

func NewPinger(opts ...Option) *Pinger {
	p := &Pinger{
		maxAttempts: DefaultMaxAttempts,
		backoffBase: DefaultBackoffBase,
		sleep:       sleepContext,
		log: log.WithFields(map[string]interface{}{
			"service": "pinger",
		}),
	}

	for _, o := range opts {
		o(p)
	}

	if p.http == nil {
		// No client-level timeout; each attempt carries its own deadline
		// from the endpoint's timeout class.
		p.http = &http.Client{}
	}

	return p
}

// Do resolves one job. The context gates retries only: an in-flight attempt is
// never interrupted by cancellation, but no further attempt starts after it.
func (p *Pinger) Do(ctx context.Context, job *metav1.Job) *metav1.PingResult {
	for attempt := 1; ; attempt++ {
		result := p.attempt(job, attempt)
		result.Final = !retriable(result) || attempt >= p.maxAttempts

		p.append(result)

		if result.Final {
			return result
		}

		if err := p.sleep(ctx, BackoffDelay(p.backoffBase, attempt)); err != nil {
			// Cancellation during backoff promotes the last attempt to the
			// job's final result, so the log has to carry that promotion too.
			final := *result
			final.Final = true
			p.append(&final)
			return &final
		}
	}
}

func (p *Pinger) attempt(job *metav1.Job, attempt int) *metav1.PingResult {
	result := &metav1.PingResult{
		CampaignID:   job.CampaignID,
		JobID:        job.ID,
		TargetURL:    job.TargetURL,
		EndpointID:   job.Endpoint.ID,
		EndpointName: job.Endpoint.Name,
		Category:     job.Endpoint.Category,
		Attempt:      attempt,
		Timestamp:    time.Now(),
	}

	// Attempts run detached from the campaign context so cancellation drains
	// in-flight work instead of killing it mid-request.
	attemptCtx, cancel := context.WithTimeout(context.Background(), job.Endpoint.TimeoutClass.Duration())
	defer cancel()

	req, err := NewRequest(attemptCtx, job)
	if err != nil {
		result.Outcome = metav1.OutcomeFailure
		result.ErrorKind = metav1.ErrorKindNetwork
		result.ErrorDetail = err.Error()
		return result
	}

	start := time.Now()
	resp, err := p.http.Do(req)
	result.LatencyMS = time.Since(start).Milliseconds()

	if err != nil {
		if isTimeout(err) || attemptCtx.Err() == context.DeadlineExceeded {
			result.Outcome = metav1.OutcomeTimeout
			result.ErrorKind = metav1.ErrorKindTimeout
		} else {
			result.Outcome = metav1.OutcomeFailure
			result.ErrorKind = metav1.ErrorKindNetwork
		}
		result.ErrorDetail = err.Error()
		return result
	}

	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyRead))

	result.HTTPStatus = resp.StatusCode

	switch {
	case expected(resp.StatusCode, job.Endpoint.Expects):
		result.Outcome = metav1.OutcomeSuccess

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		result.Outcome = metav1.OutcomeFailure
		result.ErrorKind = metav1.ErrorKindServer
		result.ErrorDetail = resp.Status

	default:
		result.Outcome = metav1.OutcomeFailure
		result.ErrorKind = metav1.ErrorKindClientRejected
		result.ErrorDetail = resp.Status
	}

	return result
}

func (p *Pinger) append(result *metav1.PingResult) {
	if p.resultLog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := p.resultLog.Append(ctx, result); err != nil {
		p.log.Error(err)
	}
}

// retriable implements the strict policy: timeouts, network-level failures,
// 429 and 5xx retry; any other 4xx is a client error that will not change.
func retriable(result *metav1.PingResult) bool {
	if result.Outcome == metav1.OutcomeSuccess {
		return false
	}

	switch result.ErrorKind {
	case metav1.ErrorKindTimeout, metav1.ErrorKindNetwork, metav1.ErrorKindServer:
		return true
	}

	return false
}

func expected(status int, expects []int) bool {
	if len(expects) == 0 {
		expects = []int{http.StatusOK, http.StatusCreated, http.StatusAccepted}
	}

	for _, s := range expects {
		if status == s {
			return true
		}
	}

	return false
}

// BackoffDelay is the pause after a failed attempt: base * 2^(attempt-1) plus
// jitter in [0, base), so delays never decrease across attempts.
func BackoffDelay(base time.Duration, attempt int) time.Duration {
	return base*(1<<(attempt-1)) + util.RandomJitter(base)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
