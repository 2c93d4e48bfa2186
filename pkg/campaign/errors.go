package campaign

import "errors"

var (
	ErrCampaignTooLarge = errors.New("campaign exceeds the url limit")
	ErrNoURLs           = errors.New("no urls")
	ErrInvalidURL       = errors.New("invalid url")
	ErrCampaignNotFound = errors.New("campaign not found")

	ErrRegistryIsRequired = errors.New("registry is required")
	ErrPoolIsRequired     = errors.New("pool is required")
	ErrProgressIsRequired = errors.New("progress store is required")
	ErrStorageIsRequired  = errors.New("storage is required")
)
