package router

import (
	log "github.com/sirupsen/logrus"

	"pingerd/api"
	"pingerd/api/v1/objects"
	"pingerd/pkg/campaign"
	"pingerd/pkg/progress"
	"pingerd/pkg/registry"
	"pingerd/pkg/store"
)

type router struct {
	store store.Repository

	registry *registry.Registry
	progress *progress.Store
	runner   *campaign.Runner

	storeRetry func(func() error) error

	log *log.Entry
}

func New(apiv1 api.API, store store.Repository, registry *registry.Registry, progress *progress.Store, runner *campaign.Runner, storeRetry func(func() error) error, log *log.Entry) error {
	r := &router{
		store:      store,
		registry:   registry,
		progress:   progress,
		runner:     runner,
		storeRetry: storeRetry,
		log:        log,
	}

	v1Path := "/v1"
	campaignsPath := v1Path + "/campaigns"
	categoriesPath := v1Path + "/categories"
	analyticsPath := v1Path + "/analytics"

	// campaigns
	apiv1.Get(campaignsPath, r.campaignsGetAll)
	apiv1.Post(campaignsPath, r.campaignsCreate, api.WithMaxBytes(objects.DefaultMaxPOSTContentLength))
	apiv1.Get(campaignsPath+"/{id}/progress", r.campaignsProgressGet)
	apiv1.Get(campaignsPath+"/{id}/results", r.campaignsResultsGet)
	apiv1.Delete(campaignsPath+"/{id}", r.campaignsCancel)

	// categories
	apiv1.Get(categoriesPath, r.categoriesGet)

	// analytics
	apiv1.Get(analyticsPath, r.analyticsGet)

	return nil
}
