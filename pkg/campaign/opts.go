package campaign

import (
	"pingerd/pkg/pinger"
	"pingerd/pkg/progress"
	"pingerd/pkg/pubsub"
	"pingerd/pkg/registry"
	"pingerd/pkg/store"
)

type Option func(*Runner) error

func WithRegistry(reg *registry.Registry) Option {
	return func(r *Runner) error {
		r.registry = reg
		return nil
	}
}

func WithPool(pool *pinger.Pool) Option {
	return func(r *Runner) error {
		r.pool = pool
		return nil
	}
}

func WithProgress(store *progress.Store) Option {
	return func(r *Runner) error {
		r.progress = store
		return nil
	}
}

func WithRepository(repo store.Repository) Option {
	return func(r *Runner) error {
		r.repo = repo
		return nil
	}
}

// WithPubSub publishes final results and campaign transitions for external
// consumers. Optional.
func WithPubSub(pub pubsub.PubSub) Option {
	return func(r *Runner) error {
		r.pubsub = pub
		return nil
	}
}
