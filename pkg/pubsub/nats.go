package pubsub

import (
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

type natsPubSub struct {
	client *nats.Conn
}

// NewNATSServer starts an embedded NATS server from a config file. Meant for
// single-binary deployments where no broker runs alongside pingerd.
func NewNATSServer(configFile string) error {
	s, err := server.NewServer(&server.Options{
		ConfigFile: configFile,
	})
	if err != nil {
		return err
	}
	s.Start()
	return s.Reload()
}

func NewNATS(url string) (PubSub, error) {
	if url == "" {
		url = nats.DefaultURL
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	return &natsPubSub{
		client: nc,
	}, nil
}

func (n *natsPubSub) Publish(subj string, data []byte) error {
	return n.client.Publish(subj, data)
}

func (n *natsPubSub) Subscribe(subj string, cb func([]byte)) error {
	_, err := n.client.Subscribe(subj, func(msg *nats.Msg) {
		cb(msg.Data)
	})

	return err
}
