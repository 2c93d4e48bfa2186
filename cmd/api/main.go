package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pingerd/api"
	v1 "pingerd/api/v1"
	"pingerd/pkg/pubsub"
)

func main() {
	var (
		dbName string

		mongo     bool
		mongoHost string
		mongoPort string

		natsURL      string
		natsEmbedded string
		kafkaBroker  string

		workers      int
		perHostLimit int
		maxAttempts  int
		backoffBase  time.Duration
		retention    time.Duration

		addr string
	)

	flag.StringVar(&dbName, "db", "pingerd", "database name")
	flag.BoolVar(&mongo, "mongo", true, "use mongodb as a database source")
	flag.StringVar(&mongoHost, "mongo-host", "", "mongo host")
	flag.StringVar(&mongoPort, "mongo-port", "27017", "mongo port")
	flag.StringVar(&natsURL, "nats", "", "nats server url for live activity events")
	flag.StringVar(&natsEmbedded, "nats-embedded", "", "start an embedded nats server from this config file")
	flag.StringVar(&kafkaBroker, "kafka", "", "kafka broker addr for live activity events")
	flag.IntVar(&workers, "workers", 0, "dispatch worker count")
	flag.IntVar(&perHostLimit, "per-host-limit", 0, "max concurrent requests per remote host")
	flag.IntVar(&maxAttempts, "max-attempts", 0, "max delivery attempts per job")
	flag.DurationVar(&backoffBase, "backoff-base", 0, "retry backoff base delay")
	flag.DurationVar(&retention, "retention", 0, "terminal campaign retention window")
	flag.StringVar(&addr, "addr", ":8080", "http server addr")

	flag.Parse()

	var opts []v1.Option

	if mongo {
		if mongoHost == "" {
			opts = append(opts, v1.WithMongoDBStorage(dbName))
		} else {
			opts = append(opts, v1.WithMongoDBStorage(dbName, options.Client().ApplyURI(
				fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort),
			)))
		}
	} else {
		opts = append(opts, v1.WithMemoryStorage())
	}

	if natsEmbedded != "" {
		if err := pubsub.NewNATSServer(natsEmbedded); err != nil {
			panic(err)
		}

		opts = append(opts, v1.WithNATSPubSub(natsURL))
	} else if natsURL != "" {
		opts = append(opts, v1.WithNATSPubSub(natsURL))
	} else if kafkaBroker != "" {
		opts = append(opts, v1.WithKafkaPubSub(kafkaBroker))
	}

	opts = append(opts,
		v1.WithWorkers(workers),
		v1.WithPerHostLimit(perHostLimit),
		v1.WithMaxAttempts(maxAttempts),
		v1.WithBackoffBase(backoffBase),
		v1.WithRetention(retention),
	)

	apiV1, err := v1.New(opts...)
	if err != nil {
		panic(err)
	}

	if err := apiV1.Serve(addr, api.New(chi.NewRouter())); err != nil {
		panic(err)
	}
}
