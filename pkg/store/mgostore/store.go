package mgostore

import (
	"go.mongodb.org/mongo-driver/mongo"

	"pingerd/pkg/store"
)

type mgo struct {
	campaignrepo  store.Campaign
	resultlogrepo store.ResultLog
}

func NewStore(db *mongo.Database) store.Repository {
	return &mgo{
		campaignrepo:  NewCampaignRepository(db.Collection(DefaultCollectionCampaignName)),
		resultlogrepo: NewResultLogRepository(db.Collection(DefaultCollectionPingResultName)),
	}
}

func (m *mgo) Campaign() store.Campaign {
	return m.campaignrepo
}

func (m *mgo) ResultLog() store.ResultLog {
	return m.resultlogrepo
}
