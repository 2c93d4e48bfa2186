package main

import (
	"flag"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pingerd/api"
	v1 "pingerd/api/v1"
)

func main() {
	var (
		dbName    string
		mongo     bool
		mongoHost string
		natsURL   string
		addr      string
	)

	flag.StringVar(&dbName, "db", "pingerd", "database name")
	flag.BoolVar(&mongo, "mongo", true, "use mongodb as a database source")
	flag.StringVar(&mongoHost, "mongo-host", "", "mongo host")
	flag.StringVar(&natsURL, "nats", "", "nats server url for live activity events")
	flag.StringVar(&addr, "addr", ":8080", "http server addr")

	flag.Parse()

	var opts []v1.Option

	if mongo {
		if mongoHost == "" {
			opts = append(opts, v1.WithMongoDBStorage(dbName))
		} else {
			opts = append(opts, v1.WithMongoDBStorage(dbName, options.Client().ApplyURI(
				fmt.Sprintf("mongodb://%s:27017", mongoHost),
			)))
		}
	} else {
		opts = append(opts, v1.WithMemoryStorage())
	}

	if natsURL != "" {
		opts = append(opts, v1.WithNATSPubSub(natsURL))
	}

	apiV1, err := v1.New(opts...)
	if err != nil {
		panic(err)
	}

	if err := apiV1.Serve(addr, api.New(chi.NewMux())); err != nil {
		panic(err)
	}
}
