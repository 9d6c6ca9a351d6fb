// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/multisvm/utils/errors"
)

const testNamespaceRecord = `{"records":[{"name":"/vol/pool1/volume-1","uuid":"ns1","space":{"size":1073741824}}]}`

func TestSvmCapabilities(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/svm/svms",
		httpmock.NewStringResponder(http.StatusOK, `{"records":[{"name":"os-tenant","nvme":{"enabled":true}}]}`))

	svm, err := c.SvmCapabilities(context.Background())
	require.NoError(t, err)
	assert.True(t, svm.NVMeEnabled())

	httpmock.Reset()
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/svm/svms",
		httpmock.NewStringResponder(http.StatusOK, `{"records":[]}`))

	_, err = c.SvmCapabilities(context.Background())
	assert.True(t, errors.IsSVMNotFoundError(err))
}

func TestFlexvolList(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/volumes",
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			assert.Equal(t, "os-tenant", query.Get("svm.name"))
			assert.Equal(t, "flexvol", query.Get("style"))
			assert.Equal(t, "false", query.Get("is_svm_root"))
			return httpmock.NewStringResponse(http.StatusOK, `{"records":[
				{"name":"pool1","space":{"size":1000,"available":400},"metric":{"iops":{"total":12.5}}}
			]}`), nil
		})

	volumes, err := c.FlexvolList(context.Background())
	require.NoError(t, err)
	require.Len(t, volumes, 1)
	assert.Equal(t, int64(400), volumes[0].Space.Available)
	assert.Equal(t, 12.5, volumes[0].Metric.IOPS.Total)
}

func TestNVMeNamespaceCreate(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/storage/namespaces",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, "/vol/pool1/volume-1", body["name"])
			assert.Equal(t, "linux", body["os_type"])
			assert.Equal(t, float64(1<<30), body["space"].(map[string]interface{})["size"])
			return httpmock.NewStringResponse(http.StatusCreated, ``), nil
		})
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/namespaces",
		httpmock.NewStringResponder(http.StatusOK, testNamespaceRecord))

	ns, err := c.NVMeNamespaceCreate(context.Background(), NVMeNamespaceSpec{
		Path:   "/vol/pool1/volume-1",
		OsType: "linux",
		Size:   1 << 30,
	})
	require.NoError(t, err)
	assert.Equal(t, "ns1", ns.UUID)
}

func TestNVMeNamespaceClone(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/storage/namespaces",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			clone := body["clone"].(map[string]interface{})
			assert.Equal(t, "/vol/pool1/volume-1", clone["source"].(map[string]interface{})["name"])
			return httpmock.NewStringResponse(http.StatusAccepted, `{"job":{"uuid":"j1"}}`), nil
		})
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/cluster/jobs/j1",
		httpmock.NewStringResponder(http.StatusOK, `{"uuid":"j1","state":"success"}`))
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/namespaces",
		httpmock.NewStringResponder(http.StatusOK,
			`{"records":[{"name":"/vol/pool1/snapshot-1","uuid":"ns2"}]}`))

	ns, err := c.NVMeNamespaceClone(context.Background(), "/vol/pool1/volume-1", "/vol/pool1/snapshot-1")
	require.NoError(t, err)
	assert.Equal(t, "ns2", ns.UUID)
}

func TestNVMeNamespaceResize(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/namespaces",
		httpmock.NewStringResponder(http.StatusOK, testNamespaceRecord))
	httpmock.RegisterResponder(http.MethodPatch, testBaseURL+"/api/storage/namespaces/ns1",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, float64(2<<30), body["space"].(map[string]interface{})["size"])
			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})

	require.NoError(t, c.NVMeNamespaceResize(context.Background(), "/vol/pool1/volume-1", 2<<30))
}

func TestNVMeNamespaceResize_NotFound(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/namespaces",
		httpmock.NewStringResponder(http.StatusOK, `{"records":[]}`))

	err := c.NVMeNamespaceResize(context.Background(), "/vol/pool1/volume-1", 2<<30)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestNVMeNamespaceDelete(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/namespaces",
		httpmock.NewStringResponder(http.StatusOK, testNamespaceRecord))
	httpmock.RegisterResponder(http.MethodDelete, testBaseURL+"/api/storage/namespaces/ns1",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	deleted, err := c.NVMeNamespaceDelete(context.Background(), "/vol/pool1/volume-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	httpmock.Reset()
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/storage/namespaces",
		httpmock.NewStringResponder(http.StatusOK, `{"records":[]}`))

	deleted, err = c.NVMeNamespaceDelete(context.Background(), "/vol/pool1/volume-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestNVMeSubsystemGetOrCreate(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	lookups := 0
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/protocols/nvme/subsystems",
		func(req *http.Request) (*http.Response, error) {
			lookups++
			if lookups == 1 {
				return httpmock.NewStringResponse(http.StatusOK, `{"records":[]}`), nil
			}
			return httpmock.NewStringResponse(http.StatusOK,
				`{"records":[{"name":"linux_host1","uuid":"s1","target_nqn":"nqn.1992-08.com.netapp:sn.x"}]}`), nil
		})
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/protocols/nvme/subsystems",
		httpmock.NewStringResponder(http.StatusConflict,
			`{"error":{"message":"already exists","code":"1"}}`))

	subsystem, err := c.NVMeSubsystemGetOrCreate(context.Background(), "linux_host1", "linux")
	require.NoError(t, err)
	assert.Equal(t, "s1", subsystem.UUID)
	assert.Equal(t, 2, lookups)
}

func TestNVMeSubsystemHosts(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/protocols/nvme/subsystems/s1/hosts",
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":{"message":"duplicate","code":"1"}}`))
	httpmock.RegisterResponder(http.MethodDelete,
		testBaseURL+"/api/protocols/nvme/subsystems/s1/hosts/nqn.2014-08.org.nvmexpress:uuid:h1",
		httpmock.NewStringResponder(http.StatusNotFound, `{"error":{"message":"missing","code":"4"}}`))

	assert.NoError(t, c.NVMeAddHostToSubsystem(context.Background(), "s1", "nqn.2014-08.org.nvmexpress:uuid:h1"))
	assert.NoError(t, c.NVMeRemoveHostFromSubsystem(context.Background(), "s1",
		"nqn.2014-08.org.nvmexpress:uuid:h1"))
}

func TestNVMeEnsureNamespaceMapped(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/protocols/nvme/subsystem-maps",
		httpmock.NewStringResponder(http.StatusOK,
			`{"records":[{"subsystem":{"name":"linux_host1","uuid":"s1"},"namespace":{"uuid":"ns1"}}]}`))

	// Already mapped to s1, nothing is created
	require.NoError(t, c.NVMeEnsureNamespaceMapped(context.Background(), "s1", "ns1"))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/protocols/nvme/subsystem-maps",
		func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, "s2", body["subsystem"].(map[string]interface{})["uuid"])
			assert.Equal(t, "ns1", body["namespace"].(map[string]interface{})["uuid"])
			return httpmock.NewStringResponse(http.StatusCreated, ``), nil
		})

	require.NoError(t, c.NVMeEnsureNamespaceMapped(context.Background(), "s2", "ns1"))
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["POST "+testBaseURL+"/api/protocols/nvme/subsystem-maps"])
}

func TestNVMeEnsureNamespaceUnmapped(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodDelete, testBaseURL+"/api/protocols/nvme/subsystem-maps/s1/ns1",
		httpmock.NewStringResponder(http.StatusNotFound, `{"error":{"message":"not mapped","code":"4"}}`))

	assert.NoError(t, c.NVMeEnsureNamespaceUnmapped(context.Background(), "s1", "ns1"))
}

func TestNVMeDataLIFs(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/network/ip/interfaces",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "data_nvme_tcp", req.URL.Query().Get("services"))
			return httpmock.NewStringResponse(http.StatusOK, `{"records":[
				{"name":"lif1","ip":{"address":"100.64.0.10"},"enabled":true},
				{"name":"lif2","ip":{"address":"100.64.0.11"},"enabled":false},
				{"name":"lif3","ip":{"address":"100.64.0.12"}}
			]}`), nil
		})

	lifs, err := c.NVMeDataLIFs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"100.64.0.10", "100.64.0.12"}, lifs)
}

func TestNVMeSubsystemMapCount(t *testing.T) {
	c := newTestClient(t, "os-tenant")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/protocols/nvme/subsystem-maps",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "s1", req.URL.Query().Get("subsystem.uuid"))
			return httpmock.NewStringResponse(http.StatusOK,
				`{"records":[{"namespace":{"uuid":"ns1"}},{"namespace":{"uuid":"ns2"}}]}`), nil
		})

	count, err := c.NVMeSubsystemMapCount(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
