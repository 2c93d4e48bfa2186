package pubsub

const (
	// TopicActivity carries one message per final ping result.
	TopicActivity = "pingerd.activity"

	// TopicCampaign carries campaign lifecycle transitions.
	TopicCampaign = "pingerd.campaign"
)

type PubSub interface {
	Publish(topic string, data []byte) error
	Subscribe(topic string, cb func([]byte)) error
}
