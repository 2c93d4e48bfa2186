package pubsub

import (
	"context"
	"sync"

	"github.com/segmentio/kafka-go"
)

type kafkaPubSub struct {
	broker string

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

func NewKafka(broker string) (PubSub, error) {
	return &kafkaPubSub{
		broker:  broker,
		writers: make(map[string]*kafka.Writer),
	}, nil
}

func (k *kafkaPubSub) writer(topic string) *kafka.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	w, ok := k.writers[topic]
	if !ok {
		w = &kafka.Writer{
			Addr:     kafka.TCP(k.broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
		k.writers[topic] = w
	}

	return w
}

func (k *kafkaPubSub) Publish(topic string, data []byte) error {
	return k.writer(topic).WriteMessages(context.Background(), kafka.Message{
		Value: data,
	})
}

func (k *kafkaPubSub) Subscribe(topic string, cb func([]byte)) error {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{k.broker},
		Topic:   topic,
		GroupID: "pingerd",
	})

	go func() {
		for {
			msg, err := r.ReadMessage(context.Background())
			if err != nil {
				return
			}
			cb(msg.Value)
		}
	}()

	return nil
}
