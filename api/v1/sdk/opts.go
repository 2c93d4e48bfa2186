package sdk

import "net/http"

type Option func(*options)

type options struct {
	addr string
	http *http.Client
}

func WithHTTPAddr(apiAddr string) Option {
	return func(o *options) {
		o.addr = apiAddr
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.http = c
	}
}
