package mgostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/store"
)

type campaignrepo struct {
	coll *mongo.Collection
}

func NewCampaignRepository(coll *mongo.Collection) store.Campaign {
	return &campaignrepo{
		coll: coll,
	}
}

func (c *campaignrepo) FindOneByID(ctx context.Context, id string) (*metav1.Campaign, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrCampaignNotFound
	}

	cursor := c.coll.FindOne(ctx, bson.M{
		"_id": objID,
	})

	var doc campaignDocument

	if err := cursor.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrCampaignNotFound
		}
		return nil, err
	}

	campaign := doc.campaign()

	return &campaign, nil
}

func (c *campaignrepo) FindAll(ctx context.Context) ([]metav1.Campaign, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	var campaigns []metav1.Campaign

	for cursor.Next(ctx) {
		var doc campaignDocument

		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, doc.campaign())
	}

	return campaigns, nil
}

func (c *campaignrepo) InsertOne(ctx context.Context, campaign *metav1.CampaignCreate) (string, error) {
	resp, err := c.coll.InsertOne(ctx, campaign)
	if err != nil {
		return "", err
	}

	if oid, ok := resp.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}

	return "", nil
}

func (c *campaignrepo) UpdateStatusByID(ctx context.Context, id string, status metav1.CampaignStatus) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrCampaignNotFound
	}

	_, err = c.coll.UpdateByID(ctx, objID, bson.M{"$set": bson.M{
		"status": status,
	}})

	return err
}

// campaignDocument exists to map the ObjectID primary key back to the hex id
// the rest of the system uses.
type campaignDocument struct {
	ID primitive.ObjectID `bson:"_id"`

	URLs []string `bson:"urls"`

	Categories metav1.CategoryList `bson:"categories"`

	Status metav1.CampaignStatus `bson:"status"`

	CreatedAt primitive.DateTime `bson:"created_at"`
}

func (d campaignDocument) campaign() metav1.Campaign {
	return metav1.Campaign{
		ID:         d.ID.Hex(),
		URLs:       d.URLs,
		Categories: d.Categories,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt.Time(),
	}
}
