package store

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
)
