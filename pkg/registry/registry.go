package registry

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/util"
)

// Registry is the static catalog of ping endpoints grouped by category.
// It is loaded once at process start and never mutated afterwards.
type Registry struct {
	byCategory map[metav1.Category][]metav1.Endpoint
	total      int

	log *log.Entry
}

// Stats is the per-category endpoint count exposed to the UI.
type Stats struct {
	Categories map[metav1.Category]int `json:"categories"`
	Total      int                     `json:"total"`
}

// New builds a registry from the given endpoints, or from the built-in
// catalog when none are given. Endpoint ids must be unique and every
// category must be a known one.
func New(endpoints ...metav1.Endpoint) (*Registry, error) {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints()
	}

	r := &Registry{
		byCategory: make(map[metav1.Category][]metav1.Endpoint),
		log: log.WithFields(map[string]interface{}{
			"service": "registry",
		}),
	}

	var errs error

	seen := make(map[string]struct{}, len(endpoints))

	for _, e := range endpoints {
		if _, ok := seen[e.ID]; ok {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrDuplicateEndpointID, e.ID))
			continue
		}
		seen[e.ID] = struct{}{}

		if _, err := metav1.ParseCategory(string(e.Category)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("endpoint %s: %w: %s", e.ID, ErrUnknownCategory, e.Category))
			continue
		}

		r.byCategory[e.Category] = append(r.byCategory[e.Category], e)
		r.total++
	}

	if errs != nil {
		return nil, errs
	}

	if r.total == 0 {
		return nil, ErrNoEndpoints
	}

	r.log.Infof("loaded %d ping endpoints in %d categories", r.total, len(r.byCategory))

	return r, nil
}

// List returns the endpoints of the given categories, all of them when none
// are given. The filter has set semantics: a category named more than once
// contributes its endpoints once. Order is randomized per call so remote
// services never see a fixed request pattern.
func (r *Registry) List(categories ...metav1.Category) ([]metav1.Endpoint, error) {
	if len(categories) == 0 {
		categories = metav1.CategoryListAll
	}

	var errs error

	var out []metav1.Endpoint

	seen := make(map[metav1.Category]struct{}, len(categories))

	for _, c := range categories {
		if _, err := metav1.ParseCategory(string(c)); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s", ErrUnknownCategory, c))
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}

		out = append(out, r.byCategory[c]...)
	}

	if errs != nil {
		return nil, errs
	}

	util.Shuffle(out)

	return out, nil
}

func (r *Registry) Stats() Stats {
	s := Stats{
		Categories: make(map[metav1.Category]int, len(r.byCategory)),
		Total:      r.total,
	}

	for c, endpoints := range r.byCategory {
		s.Categories[c] = len(endpoints)
	}

	return s
}
