package pinger

import (
	"context"
	"io/ioutil"
	"net/http"
	"strings"
	"testing"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/test"
)

func TestNewRequestGetSubstitutesTemplate(t *testing.T) {
	job := testJob(metav1.MethodGet, "http://www.google.com/ping?sitemap=%s")

	req, err := NewRequest(context.Background(), job)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "method", http.MethodGet, req.Method)
	test.Diff(t, "url", "http://www.google.com/ping?sitemap=http%3A%2F%2Fblog.example.com%2Ffeed", req.URL.String())
	test.Diff(t, "user agent", UserAgent, req.Header.Get("User-Agent"))
}

func TestNewRequestGetAppendsWithoutPlaceholder(t *testing.T) {
	job := testJob(metav1.MethodGet, "http://web.archive.org/save/")

	req, err := NewRequest(context.Background(), job)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "url", "http://web.archive.org/save/http%3A%2F%2Fblog.example.com%2Ffeed", req.URL.String())
}

func TestNewRequestFormCarriesTarget(t *testing.T) {
	job := testJob(metav1.MethodPost, "http://pingomatic.com/ping/")

	req, err := NewRequest(context.Background(), job)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "content type", "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

	if err := req.ParseForm(); err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "blogurl", job.TargetURL, req.PostForm.Get("blogurl"))
	test.Diff(t, "weblogs checkbox", "1", req.PostForm.Get("chk_weblogscom"))
}

func TestNewRequestFormGenericFields(t *testing.T) {
	job := testJob(metav1.MethodPost, "http://ping.example.org/ping")

	req, err := NewRequest(context.Background(), job)
	if err != nil {
		t.Error(err)
		return
	}

	if err := req.ParseForm(); err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "url", job.TargetURL, req.PostForm.Get("url"))
	test.Diff(t, "changesURL", job.TargetURL, req.PostForm.Get("changesURL"))
}

func TestNewRequestXMLRPCEnvelope(t *testing.T) {
	job := testJob(metav1.MethodXMLRPC, "http://rpc.weblogs.com/RPC2")
	job.TargetURL = `http://blog.example.com/?a=1&b="2"`

	req, err := NewRequest(context.Background(), job)
	if err != nil {
		t.Error(err)
		return
	}

	test.Diff(t, "content type", "text/xml", req.Header.Get("Content-Type"))

	body, err := ioutil.ReadAll(req.Body)
	if err != nil {
		t.Error(err)
		return
	}

	if !strings.Contains(string(body), "<methodName>weblogUpdates.ping</methodName>") {
		t.Errorf("missing method name in body:\n%s", body)
	}

	if !strings.Contains(string(body), "http://blog.example.com/?a=1&amp;b=&quot;2&quot;") {
		t.Errorf("target url not escaped in body:\n%s", body)
	}

	if strings.Contains(string(body), `b="2"`) {
		t.Errorf("raw quotes leaked into body:\n%s", body)
	}
}

func TestNewRequestUnsupportedMethod(t *testing.T) {
	job := testJob(metav1.Method("PUT"), "http://ping.example.org/ping")

	if _, err := NewRequest(context.Background(), job); err == nil {
		t.Error("expected error for unsupported method")
	}
}
