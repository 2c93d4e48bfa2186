package pinger

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	metav1 "pingerd/pkg/meta/v1"
)

const UserAgent = "pingerd/1.0"

// NewRequest builds the outbound ping request for a job. Each protocol
// variant carries the target differently: GET endpoints substitute it into
// the URL, POST endpoints take a form body, XML-RPC endpoints a
// weblogUpdates.ping envelope.
func NewRequest(ctx context.Context, job *metav1.Job) (*http.Request, error) {
	switch job.Endpoint.Method {
	case metav1.MethodGet:
		return newGetRequest(ctx, job)
	case metav1.MethodPost:
		return newFormRequest(ctx, job)
	case metav1.MethodXMLRPC:
		return newXMLRPCRequest(ctx, job)
	default:
		return nil, fmt.Errorf("unsupported method: %s", job.Endpoint.Method)
	}
}

func newGetRequest(ctx context.Context, job *metav1.Job) (*http.Request, error) {
	target := job.Endpoint.URLTemplate

	if strings.Contains(target, "%s") {
		target = fmt.Sprintf(target, url.QueryEscape(job.TargetURL))
	} else {
		target += url.QueryEscape(job.TargetURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	return req, nil
}

func newFormRequest(ctx context.Context, job *metav1.Job) (*http.Request, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		job.Endpoint.URLTemplate,
		strings.NewReader(formValues(job).Encode()),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req, nil
}

// formValues mirrors what the aggregators historically accept. Ping-O-Matic
// wants its per-downstream checkboxes; everyone else understands the
// name/url/changesURL triple.
func formValues(job *metav1.Job) url.Values {
	if strings.Contains(job.Endpoint.URLTemplate, "pingomatic") {
		return url.Values{
			"title":          {"pingerd campaign"},
			"blogurl":        {job.TargetURL},
			"rssurl":         {job.TargetURL},
			"chk_weblogscom": {"1"},
			"chk_blogs":      {"1"},
			"chk_technorati": {"1"},
			"chk_feedburner": {"1"},
			"chk_syndic8":    {"1"},
			"chk_newsgator":  {"1"},
			"chk_myyahoo":    {"1"},
			"chk_pubsubcom":  {"1"},
			"chk_blogdigger": {"1"},
			"chk_weblogalot": {"1"},
			"chk_feedshark":  {"1"},
			"chk_newsisfree": {"1"},
			"chk_icerocket":  {"1"},
		}
	}

	return url.Values{
		"name":       {"pingerd campaign"},
		"url":        {job.TargetURL},
		"changesURL": {job.TargetURL},
		"rssurl":     {job.TargetURL},
	}
}

func newXMLRPCRequest(ctx context.Context, job *metav1.Job) (*http.Request, error) {
	body := fmt.Sprintf(`<?xml version="1.0"?>
<methodCall>
  <methodName>weblogUpdates.ping</methodName>
  <params>
    <param><value>pingerd campaign</value></param>
    <param><value>%s</value></param>
  </params>
</methodCall>`, xmlEscape(job.TargetURL))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		job.Endpoint.URLTemplate,
		strings.NewReader(body),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Content-Type", "text/xml")

	return req, nil
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)

	return r.Replace(s)
}
