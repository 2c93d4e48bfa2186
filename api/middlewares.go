package api

import (
	"net/http"
)

type MiddleWare func(w http.ResponseWriter, r *http.Request)

func WithMaxBytes(n int64) MiddleWare {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
	}
}
