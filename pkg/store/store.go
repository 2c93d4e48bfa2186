package store

import (
	"context"

	metav1 "pingerd/pkg/meta/v1"
)

// Campaign persists campaign definitions and their terminal status.
type Campaign interface {
	FindOneByID(ctx context.Context, id string) (*metav1.Campaign, error)
	FindAll(ctx context.Context) ([]metav1.Campaign, error)

	InsertOne(ctx context.Context, campaign *metav1.CampaignCreate) (string, error)

	UpdateStatusByID(ctx context.Context, id string, status metav1.CampaignStatus) error
}

// ResultLog is the durable, append-only log of ping attempts. Append must be
// safe for concurrent use by many pool workers.
type ResultLog interface {
	Append(ctx context.Context, result *metav1.PingResult) error

	FindAll(ctx context.Context) ([]metav1.PingResult, error)
	FindByCampaignID(ctx context.Context, campaignID string) ([]metav1.PingResult, error)
	FindByJobID(ctx context.Context, jobID string) ([]metav1.PingResult, error)
}

type Repository interface {
	Campaign() Campaign
	ResultLog() ResultLog
}
