package v1

import (
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v3"
	log "github.com/sirupsen/logrus"

	"pingerd/api"
	"pingerd/api/v1/router"
	"pingerd/internal/cache"
	"pingerd/pkg/campaign"
	"pingerd/pkg/pinger"
	"pingerd/pkg/progress"
	"pingerd/pkg/pubsub"
	"pingerd/pkg/registry"
	"pingerd/pkg/store"
)

type v1 struct {
	store store.Repository
	pub   pubsub.PubSub

	registry *registry.Registry
	progress *progress.Store
	pool     *pinger.Pool
	runner   *campaign.Runner

	workers      int
	perHostLimit int
	maxAttempts  int
	backoffBase  time.Duration
	retention    time.Duration

	storeBackoff *backoff.ExponentialBackOff

	log *log.Entry
}

func New(opts ...Option) (*v1, error) {
	v := &v1{
		workers:      pinger.DefaultWorkers,
		perHostLimit: pinger.DefaultPerHostLimit,
		retention:    progress.DefaultRetention,
		log: log.WithFields(map[string]interface{}{
			"service": "api",
		}),
	}

	for _, o := range opts {
		if err := o(v); err != nil {
			return nil, err
		}
	}

	{
		bo := backoff.NewExponentialBackOff()
		bo.MaxInterval = time.Second * 2
		bo.MaxElapsedTime = time.Second * 15

		v.storeBackoff = bo
	}

	return v, nil
}

func (apiv1 *v1) Serve(addr string, v1 api.API) error {
	if err := apiv1.Setup(v1); err != nil {
		return err
	}

	apiv1.log.Info("listening on: ", addr)

	return http.ListenAndServe(addr, v1.Handler())
}

// Setup wires the engine behind the given router without binding a listener.
func (apiv1 *v1) Setup(v1 api.API) error {
	if apiv1.store == nil {
		return ErrNoStorage
	}

	if apiv1.registry == nil {
		reg, err := registry.New()
		if err != nil {
			return err
		}

		apiv1.registry = reg
	}

	if apiv1.progress == nil {
		archive, err := cache.NewSnapshotArchive(apiv1.retention)
		if err != nil {
			return err
		}

		apiv1.progress = progress.NewStore(
			progress.WithArchive(archive),
			progress.WithRetention(apiv1.retention),
		)
	}

	if apiv1.pool == nil {
		pingOpts := []pinger.Option{
			pinger.WithResultLog(apiv1.store.ResultLog()),
		}
		if apiv1.maxAttempts > 0 {
			pingOpts = append(pingOpts, pinger.WithMaxAttempts(apiv1.maxAttempts))
		}
		if apiv1.backoffBase > 0 {
			pingOpts = append(pingOpts, pinger.WithBackoffBase(apiv1.backoffBase))
		}

		apiv1.pool = pinger.NewPool(
			pinger.NewPinger(pingOpts...),
			pinger.WithWorkers(apiv1.workers),
			pinger.WithPerHostLimit(apiv1.perHostLimit),
		)
	}

	runnerOpts := []campaign.Option{
		campaign.WithRegistry(apiv1.registry),
		campaign.WithPool(apiv1.pool),
		campaign.WithProgress(apiv1.progress),
		campaign.WithRepository(apiv1.store),
	}
	if apiv1.pub != nil {
		runnerOpts = append(runnerOpts, campaign.WithPubSub(apiv1.pub))
	}

	runner, err := campaign.New(runnerOpts...)
	if err != nil {
		return err
	}

	apiv1.runner = runner

	return router.New(v1, apiv1.store, apiv1.registry, apiv1.progress, apiv1.runner, apiv1.storeRetry, apiv1.log)
}

func (apiv1 *v1) Store() store.Repository {
	return apiv1.store
}

func (apiv1 *v1) storeRetry(f func() error) error {
	return backoff.Retry(f, apiv1.storeBackoff)
}
