package pinger

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gopkg.in/h2non/gock.v1"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/store/memstore"
	"pingerd/test"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func testJob(method metav1.Method, template string) *metav1.Job {
	return &metav1.Job{
		ID:         "c1/ep1/0",
		CampaignID: "c1",
		TargetURL:  "http://blog.example.com/feed",
		Endpoint: metav1.Endpoint{
			ID:           "ep1",
			Name:         "Test Endpoint",
			Category:     metav1.CategoryGoogle,
			URLTemplate:  template,
			Method:       method,
			TimeoutClass: metav1.TimeoutClassDefault,
		},
	}
}

func testPinger(t *testing.T, opts ...Option) (*Pinger, *[]time.Duration) {
	t.Helper()

	client := &http.Client{}
	gock.InterceptClient(client)

	sleeps := &[]time.Duration{}

	p := NewPinger(append([]Option{WithHTTPClient(client)}, opts...)...)
	p.sleep = func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return nil
	}

	return p, sleeps
}

func TestDoClientRejectionIsTerminal(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Reply(403)

	p, sleeps := testPinger(t)

	result := p.Do(context.Background(), testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	test.Diff(t, "attempt", 1, result.Attempt)
	test.Diff(t, "final", true, result.Final)
	test.Diff(t, "outcome", metav1.OutcomeFailure, result.Outcome)
	test.Diff(t, "error kind", metav1.ErrorKindClientRejected, result.ErrorKind)
	test.Diff(t, "sleeps", 0, len(*sleeps))
}

func TestDoRetriesServerErrorsWithGrowingBackoff(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Times(3).
		Reply(500)

	p, sleeps := testPinger(t, WithBackoffBase(time.Millisecond*100))

	result := p.Do(context.Background(), testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	test.Diff(t, "attempt", 3, result.Attempt)
	test.Diff(t, "final", true, result.Final)
	test.Diff(t, "error kind", metav1.ErrorKindServer, result.ErrorKind)
	test.Diff(t, "http status", 500, result.HTTPStatus)
	test.Diff(t, "sleeps", 2, len(*sleeps))

	base := time.Millisecond * 100
	for i, d := range *sleeps {
		lo := base * (1 << i)
		if d < lo || d >= lo+base {
			t.Errorf("sleep %d out of range: got %v, want [%v, %v)", i, d, lo, lo+base)
		}
	}

	for i := 1; i < len(*sleeps); i++ {
		if (*sleeps)[i] < (*sleeps)[i-1] {
			t.Errorf("backoff decreased: %v after %v", (*sleeps)[i], (*sleeps)[i-1])
		}
	}
}

func TestDoRecoversAfterTimeouts(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Times(2).
		ReplyError(timeoutError{})

	gock.New("http://ping.example.com").
		Post("/rpc").
		Reply(200)

	p, _ := testPinger(t)

	result := p.Do(context.Background(), testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	test.Diff(t, "attempt", 3, result.Attempt)
	test.Diff(t, "outcome", metav1.OutcomeSuccess, result.Outcome)
	test.Diff(t, "final", true, result.Final)
}

func TestDoRespectsMaxAttempts(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Times(5).
		Reply(503)

	p, sleeps := testPinger(t, WithMaxAttempts(5))

	result := p.Do(context.Background(), testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	test.Diff(t, "attempt", 5, result.Attempt)
	test.Diff(t, "sleeps", 4, len(*sleeps))
}

func TestDoStopsRetryingOnCancelledContext(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Reply(500)

	client := &http.Client{}
	gock.InterceptClient(client)

	p := NewPinger(WithHTTPClient(client))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Do(ctx, testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	test.Diff(t, "attempt", 1, result.Attempt)
	test.Diff(t, "final", true, result.Final)
	test.Diff(t, "error kind", metav1.ErrorKindServer, result.ErrorKind)
}

func TestDoLogsFinalResultWhenCancelledDuringBackoff(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Reply(500)

	client := &http.Client{}
	gock.InterceptClient(client)

	resultLog := memstore.NewStore().ResultLog()

	p := NewPinger(WithHTTPClient(client), WithResultLog(resultLog))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Do(ctx, testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	test.Diff(t, "final", true, result.Final)

	logged, err := resultLog.FindByJobID(context.Background(), "c1/ep1/0")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "logged entries", 2, len(logged))
	test.Diff(t, "attempt final", false, logged[0].Final)
	test.Diff(t, "promoted final", true, logged[1].Final)
	test.Diff(t, "promoted attempt", 1, logged[1].Attempt)
}

func TestDoAppendsEveryAttemptToResultLog(t *testing.T) {
	defer gock.Off()

	gock.New("http://ping.example.com").
		Post("/rpc").
		Times(2).
		Reply(500)

	gock.New("http://ping.example.com").
		Post("/rpc").
		Reply(200)

	resultLog := memstore.NewStore().ResultLog()

	p, _ := testPinger(t, WithResultLog(resultLog))

	p.Do(context.Background(), testJob(metav1.MethodPost, "http://ping.example.com/rpc"))

	logged, err := resultLog.FindByJobID(context.Background(), "c1/ep1/0")
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "logged attempts", 3, len(logged))
	test.Diff(t, "first final", false, logged[0].Final)
	test.Diff(t, "last final", true, logged[2].Final)
	test.Diff(t, "last outcome", metav1.OutcomeSuccess, logged[2].Outcome)
}

func TestExpectedStatuses(t *testing.T) {
	test.Diff(t, "default 200", true, expected(200, nil))
	test.Diff(t, "default 202", true, expected(202, nil))
	test.Diff(t, "default 204", false, expected(204, nil))
	test.Diff(t, "explicit", true, expected(204, []int{204}))
	test.Diff(t, "explicit misses default", false, expected(200, []int{204}))
}

func TestBackoffDelayBounds(t *testing.T) {
	base := time.Second

	for attempt := 1; attempt <= 4; attempt++ {
		for i := 0; i < 50; i++ {
			d := BackoffDelay(base, attempt)
			lo := base * (1 << (attempt - 1))
			if d < lo || d >= lo+base {
				t.Fatalf("attempt %d: delay %v out of [%v, %v)", attempt, d, lo, lo+base)
			}
		}
	}
}
