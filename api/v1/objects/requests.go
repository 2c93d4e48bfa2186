package objects

// DefaultMaxPOSTContentLength bounds campaign submissions. 10k urls of
// reasonable length fit well below this.
const DefaultMaxPOSTContentLength int64 = 4 << 20

type RequestPostCampaign struct {
	URLs []string `json:"urls"`

	// Categories filters the endpoint catalog. Empty means every category.
	Categories []string `json:"categories"`
}

// RequestGetResults narrows a campaign's result log. A zero value on either
// field means no filtering on that dimension.
type RequestGetResults struct {
	Outcome  string `schema:"outcome"`
	Endpoint string `schema:"endpoint"`
}
