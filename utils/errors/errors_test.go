// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors(t *testing.T) {
	cause := New("connection refused")

	tests := []struct {
		name    string
		err     error
		check   func(error) bool
		message string
	}{
		{"NotFound", NotFoundError("volume %s not found", "v1"), IsNotFoundError, "volume v1 not found"},
		{"NotFoundWrapped", WrapWithNotFoundError(cause, "lookup"), IsNotFoundError, "lookup; connection refused"},
		{"Config", ConfigError("missing option %s", "auth.username"), IsConfigError, "missing option auth.username"},
		{"ConfigWrapped", WrapWithConfigError(cause, ""), IsConfigError, "connection refused"},
		{"ClusterUnavailable", WrapWithClusterUnavailableError(cause, "GET /api/cluster"), IsClusterUnavailableError,
			"GET /api/cluster; connection refused"},
		{"SVMNotFound", SVMNotFoundError("os-abc"), IsSVMNotFoundError, "SVM os-abc not found"},
		{"DriverNotInitialized", DriverNotInitializedError("no client for %s", "os-abc"), IsDriverNotInitializedError,
			"no client for os-abc"},
		{"InvalidInput", InvalidInputError("bad host"), IsInvalidInputError, "bad host"},
		{"ProvisioningConflict", ProvisioningConflictError("conflict"), IsProvisioningConflictError, "conflict"},
		{"UnsupportedIPPattern", UnsupportedIPPatternError("octet %d", 64), IsUnsupportedIPPatternError, "octet 64"},
		{"NodeNotFound", NodeNotFoundError("no node"), IsNodeNotFoundError, "no node"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.check(test.err))
			assert.True(t, test.check(fmt.Errorf("outer: %w", test.err)), "wrapped error not detected")
			assert.False(t, test.check(nil))
			assert.False(t, test.check(cause))
			assert.Equal(t, test.message, test.err.Error())
		})
	}
}

func TestWrappedCauseIsReachable(t *testing.T) {
	cause := New("boom")

	assert.True(t, Is(WrapWithClusterUnavailableError(cause, "retries exhausted"), cause))
	assert.True(t, Is(WrapWithConfigError(cause, "parse"), cause))
	assert.True(t, Is(WrapWithNotFoundError(cause, "lookup"), cause))
}

func TestClusterRequestError(t *testing.T) {
	err := ClusterRequestError(409, "1", "name", "duplicate entry")

	assert.True(t, IsClusterRequestError(err))
	assert.False(t, IsClusterUnavailableError(err))
	assert.Equal(t, "1", ClusterErrorCode(err))
	assert.Equal(t, 409, ClusterStatusCode(err))
	assert.Equal(t, "cluster request failed with status 409, code 1: duplicate entry (target name)", err.Error())

	assert.Equal(t, "", ClusterErrorCode(New("other")))
	assert.Equal(t, 0, ClusterStatusCode(nil))
	assert.Equal(t, "cluster request failed with status 404", ClusterRequestError(404, "", "", "").Error())
}

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))

	e1, e2 := New("one"), New("two")
	combined := Combine(e1, nil, e2)
	assert.Len(t, Errors(combined), 2)
	assert.True(t, Is(combined, e1))
	assert.True(t, Is(combined, e2))
}
