package registry

import (
	"errors"
	"sort"
	"testing"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/test"
)

func endpointIDs(endpoints []metav1.Endpoint) []string {
	ids := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		ids = append(ids, e.ID)
	}

	sort.Strings(ids)

	return ids
}

func TestNewLoadsBuiltinCatalog(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Error(err)
		return
	}

	stats := r.Stats()

	if stats.Total == 0 {
		t.Error("builtin catalog is empty")
	}

	test.Diff(t, "categories", len(metav1.CategoryListAll), len(stats.Categories))

	sum := 0
	for _, n := range stats.Categories {
		sum += n
	}

	test.Diff(t, "total vs per-category sum", stats.Total, sum)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		metav1.Endpoint{ID: "a", Category: metav1.CategoryGoogle, URLTemplate: "http://x/1", Method: metav1.MethodGet},
		metav1.Endpoint{ID: "a", Category: metav1.CategoryGoogle, URLTemplate: "http://x/2", Method: metav1.MethodGet},
	)

	if !errors.Is(err, ErrDuplicateEndpointID) {
		t.Errorf("want ErrDuplicateEndpointID, got %v", err)
	}
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	_, err := New(
		metav1.Endpoint{ID: "a", Category: "social_media", URLTemplate: "http://x/1", Method: metav1.MethodGet},
	)

	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("want ErrUnknownCategory, got %v", err)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	r, err := New(
		metav1.Endpoint{ID: "g1", Category: metav1.CategoryGoogle, URLTemplate: "http://x/1", Method: metav1.MethodGet},
		metav1.Endpoint{ID: "g2", Category: metav1.CategoryGoogle, URLTemplate: "http://x/2", Method: metav1.MethodGet},
		metav1.Endpoint{ID: "a1", Category: metav1.CategoryArchive, URLTemplate: "http://x/3", Method: metav1.MethodGet},
	)
	if err != nil {
		t.Error(err)
		return
	}

	google, err := r.List(metav1.CategoryGoogle)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "google endpoints", []string{"g1", "g2"}, endpointIDs(google))

	all, err := r.List()
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "all endpoints", []string{"a1", "g1", "g2"}, endpointIDs(all))
}

func TestListRepeatedCategoryYieldsEachEndpointOnce(t *testing.T) {
	r, err := New(
		metav1.Endpoint{ID: "g1", Category: metav1.CategoryGoogle, URLTemplate: "http://x/1", Method: metav1.MethodGet},
		metav1.Endpoint{ID: "g2", Category: metav1.CategoryGoogle, URLTemplate: "http://x/2", Method: metav1.MethodGet},
		metav1.Endpoint{ID: "a1", Category: metav1.CategoryArchive, URLTemplate: "http://x/3", Method: metav1.MethodGet},
	)
	if err != nil {
		t.Error(err)
		return
	}

	out, err := r.List(metav1.CategoryGoogle, metav1.CategoryGoogle, metav1.CategoryArchive, metav1.CategoryGoogle)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "endpoints", []string{"a1", "g1", "g2"}, endpointIDs(out))
}

func TestListUnknownCategory(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Error(err)
		return
	}

	if _, err := r.List(metav1.Category("bogus")); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("want ErrUnknownCategory, got %v", err)
	}
}

func TestListShufflesButKeepsSet(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Error(err)
		return
	}

	first, err := r.List()
	if err != nil {
		t.Error(err)
		return
	}

	second, err := r.List()
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "endpoint set", endpointIDs(first), endpointIDs(second))
}
