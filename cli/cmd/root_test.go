// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockapi "github.com/netapp/multisvm/mocks/mock_storage_drivers/mock_ontap"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

const testBackendsYAML = `
backends:
  nvme:
    connection.host: 10.0.0.1
    auth.username: admin
    auth.password: secret
    svm_prefix: os-
    aggregate: aggr1
    volume_size: 1GB
    output_dir: /var/run/multisvm
`

// setupTest resets the command globals, installs an in-memory filesystem holding the backend
// configuration and points the cluster client at a mock.
func setupTest(t *testing.T, backends string) (*mockapi.MockRestClientInterface, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, DefaultConfigPath, []byte(backends), 0o600))

	mockCtrl := gomock.NewController(t)
	mockAPI := mockapi.NewMockRestClientInterface(mockCtrl)

	previousFs, previousClient := AppFs, newClusterClient
	AppFs = fs
	newClusterClient = func(context.Context, *drivers.DriverConfig) (api.RestClientInterface, error) {
		return mockAPI, nil
	}
	t.Cleanup(func() {
		AppFs, newClusterClient = previousFs, previousClient
	})

	ExitCode = ExitCodeSuccess
	Debug = false
	ConfigPath = DefaultConfigPath
	BackendName = ""
	OutputFormat = ""
	projectID = ""
	networkDataPath = ""
	eventFile = "-"
	eventTags = nil
	eventOutputDir = ""

	return mockAPI, fs
}

func runCommand(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetIn(&bytes.Buffer{})
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestGetExitCodeFromError(t *testing.T) {
	assert.Equal(t, ExitCodeSuccess, GetExitCodeFromError(nil))
	assert.Equal(t, ExitCodeFailure, GetExitCodeFromError(errors.New("boom")))
	assert.Equal(t, ExitCodeNoHandler, GetExitCodeFromError(withExitCode(ExitCodeNoHandler, errors.New("x"))))

	wrapped := fmt.Errorf("outer; %w", withExitCode(ExitCodeHandlerError, errors.New("x")))
	assert.Equal(t, ExitCodeHandlerError, GetExitCodeFromError(wrapped))
	assert.NoError(t, withExitCode(ExitCodeParseError, nil))

	SetExitCodeFromError(withExitCode(ExitCodeClientError, errors.New("x")))
	assert.Equal(t, ExitCodeClientError, ExitCode)
}

func TestLoadBackend(t *testing.T) {
	setupTest(t, testBackendsYAML)

	group, driverConfig, err := loadBackend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nvme", group.Name)
	assert.Equal(t, "os-", driverConfig.SVMPrefix)
	assert.Equal(t, uint64(1000000000), driverConfig.VolumeSizeBytes)
}

func TestLoadBackend_MultipleNeedsName(t *testing.T) {
	setupTest(t, testBackendsYAML+`
  other:
    connection.host: 10.0.0.2
    auth.username: admin
    auth.password: secret
`)

	_, _, err := loadBackend(context.Background())
	assert.True(t, errors.IsConfigError(err))

	BackendName = "other"
	group, _, err := loadBackend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "other", group.Name)

	BackendName = "missing"
	_, _, err = loadBackend(context.Background())
	assert.True(t, errors.IsConfigError(err))
}

func TestClusterClient_Error(t *testing.T) {
	setupTest(t, testBackendsYAML)
	newClusterClient = func(context.Context, *drivers.DriverConfig) (api.RestClientInterface, error) {
		return nil, errors.ClusterUnavailableError("down")
	}

	_, err := runCommand("provision", "tenant", "abc")
	assert.True(t, errors.IsClusterUnavailableError(err))
	assert.Equal(t, ExitCodeClientError, GetExitCodeFromError(err))
}

func TestVersionCmd(t *testing.T) {
	setupTest(t, testBackendsYAML)

	out, err := runCommand("version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"goVersion"`)
}
