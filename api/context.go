package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
)

type ContextFn func(ctx Context)

var decoder = schema.NewDecoder()

type Context interface {
	Created() Context
	NoContent() Context
	BadRequest() Context
	NotFound() Context
	RequestEntityTooLarge() Context
	UnprocessableEntity() Context
	InternalError() Context

	RequestContext() context.Context

	ResponseWriter() http.ResponseWriter
	Request() *http.Request

	Bind(interface{}) error
	BindQuery(i interface{}) error

	Param(key string) string

	JSON(interface{}) error
}

type ctx struct {
	writer  http.ResponseWriter
	request *http.Request
}

func (c ctx) Created() Context {
	c.writer.WriteHeader(http.StatusCreated)
	return c
}

func (c ctx) NoContent() Context {
	c.writer.WriteHeader(http.StatusNoContent)
	return c
}

func (c ctx) BadRequest() Context {
	c.writer.WriteHeader(http.StatusBadRequest)
	return c
}

func (c ctx) NotFound() Context {
	c.writer.WriteHeader(http.StatusNotFound)
	return c
}

func (c ctx) RequestEntityTooLarge() Context {
	c.writer.WriteHeader(http.StatusRequestEntityTooLarge)
	return c
}

func (c ctx) UnprocessableEntity() Context {
	c.writer.WriteHeader(http.StatusUnprocessableEntity)
	return c
}

func (c ctx) InternalError() Context {
	c.writer.WriteHeader(http.StatusInternalServerError)
	return c
}

func (c ctx) Bind(i interface{}) error {
	if err := json.NewDecoder(c.request.Body).Decode(&i); err != nil {
		return err
	}

	return nil
}

func (c ctx) BindQuery(i interface{}) error {
	values := c.request.URL.Query()
	if len(values) == 0 {
		return nil
	}

	return decoder.Decode(i, values)
}

func (c ctx) ResponseWriter() http.ResponseWriter {
	return c.writer
}

func (c ctx) Request() *http.Request {
	return c.request
}

func (c ctx) Param(key string) string {
	return chi.URLParam(c.request, key)
}

func (c ctx) JSON(i interface{}) error {
	c.writer.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(i)

	if err != nil {
		return err
	}

	_, err = c.writer.Write(b)

	return err
}

func (c ctx) RequestContext() context.Context {
	return c.request.Context()
}
