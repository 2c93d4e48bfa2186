package mgostore

const (
	DefaultMongoAddr    = "mongodb://localhost:27017"
	DefaultDatabaseName = "pingerd"

	DefaultCollectionCampaignName   = "campaigns"
	DefaultCollectionPingResultName = "ping_results"
)
