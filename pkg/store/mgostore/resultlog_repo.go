package mgostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/store"
)

type resultlogrepo struct {
	coll *mongo.Collection
}

func NewResultLogRepository(coll *mongo.Collection) store.ResultLog {
	return &resultlogrepo{
		coll: coll,
	}
}

func (r *resultlogrepo) Append(ctx context.Context, result *metav1.PingResult) error {
	_, err := r.coll.InsertOne(ctx, result)

	return err
}

func (r *resultlogrepo) FindAll(ctx context.Context) ([]metav1.PingResult, error) {
	return r.find(ctx, bson.M{})
}

func (r *resultlogrepo) FindByCampaignID(ctx context.Context, campaignID string) ([]metav1.PingResult, error) {
	return r.find(ctx, bson.M{
		"campaign_id": campaignID,
	})
}

func (r *resultlogrepo) FindByJobID(ctx context.Context, jobID string) ([]metav1.PingResult, error) {
	return r.find(ctx, bson.M{
		"job_id": jobID,
	})
}

func (r *resultlogrepo) find(ctx context.Context, filter bson.M) ([]metav1.PingResult, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{
		"timestamp": 1,
	}))
	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	var results []metav1.PingResult

	for cursor.Next(ctx) {
		var result metav1.PingResult

		if err := cursor.Decode(&result); err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
