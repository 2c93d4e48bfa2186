package v1

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/options"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/pubsub"
	"pingerd/pkg/registry"
	"pingerd/pkg/store/memstore"
	"pingerd/pkg/store/mgostore"
)

type Option func(*v1) error

func WithMongoDBStorage(dbName string, opts ...*options.ClientOptions) Option {
	return func(a *v1) error {
		client, err := mgostore.NewClient(opts...)
		if err != nil {
			return err
		}

		if dbName != "" {
			client.SetDatabaseName(dbName)
		}

		a.store = mgostore.NewStore(client.DB())

		return nil
	}
}

func WithMemoryStorage() Option {
	return func(a *v1) error {
		a.store = memstore.NewStore()
		return nil
	}
}

// WithEndpoints replaces the built-in ping catalog.
func WithEndpoints(endpoints ...metav1.Endpoint) Option {
	return func(a *v1) error {
		reg, err := registry.New(endpoints...)
		if err != nil {
			return err
		}

		a.registry = reg

		return nil
	}
}

func WithPubSub(pub pubsub.PubSub) Option {
	return func(a *v1) error {
		a.pub = pub
		return nil
	}
}

func WithNATSPubSub(url string) Option {
	return func(a *v1) error {
		pub, err := pubsub.NewNATS(url)
		if err != nil {
			return err
		}

		a.pub = pub

		return nil
	}
}

func WithKafkaPubSub(broker string) Option {
	return func(a *v1) error {
		pub, err := pubsub.NewKafka(broker)
		if err != nil {
			return err
		}

		a.pub = pub

		return nil
	}
}

func WithWorkers(n int) Option {
	return func(a *v1) error {
		if n > 0 {
			a.workers = n
		}
		return nil
	}
}

func WithPerHostLimit(n int) Option {
	return func(a *v1) error {
		if n > 0 {
			a.perHostLimit = n
		}
		return nil
	}
}

func WithMaxAttempts(n int) Option {
	return func(a *v1) error {
		a.maxAttempts = n
		return nil
	}
}

func WithBackoffBase(d time.Duration) Option {
	return func(a *v1) error {
		a.backoffBase = d
		return nil
	}
}

func WithRetention(d time.Duration) Option {
	return func(a *v1) error {
		if d > 0 {
			a.retention = d
		}
		return nil
	}
}
