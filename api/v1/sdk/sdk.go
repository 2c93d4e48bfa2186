package sdk

import (
	"errors"
	"net/http"
	"time"

	v1 "pingerd/api/v1"
)

func NewWithOpts(opts ...Option) (v1.V1, error) {
	opt := &options{}

	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		return nil, errors.New("api url is not defined")
	}

	httpc := opt.http
	if httpc == nil {
		httpc = &http.Client{
			Timeout: time.Second * 15,
		}
	}

	return newHTTPClient(opt.addr+"/v1", httpc), nil
}
