// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// stubRoundTripper allows controlling the response and error returned by RoundTrip.
type stubRoundTripper struct {
	resp  *http.Response
	err   error
	calls int
}

func (s *stubRoundTripper) RoundTrip(_ *http.Request) (*http.Response, error) {
	s.calls++
	return s.resp, s.err
}

func makeRequest(ctx context.Context, method, url string) *http.Request {
	req, _ := http.NewRequestWithContext(ctx, method, url, nil)
	return req
}

func TestMetricsTransport_Passthrough(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusOK}
	base := &stubRoundTripper{resp: resp}
	mt := NewMetricsTransport(base, WithMetricsTransportTarget(ContextRequestTargetCluster),
		WithTracePattern(regexp.MustCompile("svm")))
	req := makeRequest(context.Background(), http.MethodGet, "https://cluster.local/api/svm/svms")

	gotResp, gotErr := mt.RoundTrip(req)

	assert.NoError(t, gotErr)
	assert.Equal(t, resp, gotResp)
	assert.Equal(t, 1, base.calls)
	assert.Equal(t, float64(0), testutil.ToFloat64(outgoingAPIRequestsInFlight.WithLabelValues(
		ContextRequestTargetCluster, "cluster.local", http.MethodGet)), "in-flight gauge not released")
}

func TestMetricsTransport_ErrorPassthrough(t *testing.T) {
	someErr := errors.New("boom")
	base := &stubRoundTripper{err: someErr}
	mt := NewMetricsTransport(base, WithTracePattern(regexp.MustCompile("(.*)")))
	req := makeRequest(context.Background(), http.MethodDelete, "https://cluster.local/api/storage/volumes/1")

	gotResp, gotErr := mt.RoundTrip(req)

	assert.Nil(t, gotResp)
	assert.Equal(t, someErr, gotErr)
}

func TestMetricsTransport_DefaultTarget(t *testing.T) {
	mt := NewMetricsTransport(nil, WithMetricsTransportTarget(""))

	transport, ok := mt.(*MetricsTransport)
	assert.True(t, ok)
	assert.Equal(t, "unknown", transport.target)
	assert.Equal(t, http.DefaultTransport, transport.base)
	assert.Nil(t, transport.tracePattern)
}
