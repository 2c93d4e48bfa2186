package progress

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign progress not found")
	ErrCampaignExists   = errors.New("campaign progress already exists")
)
