// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/netapp/multisvm/config"
	"github.com/netapp/multisvm/logging"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

const (
	FormatJSON = "json"
	FormatName = "name"
	FormatWide = "wide"
	FormatYAML = "yaml"

	DefaultConfigPath = "/etc/multisvm/backends.yaml"

	ExitCodeSuccess      = 0
	ExitCodeFailure      = 1
	ExitCodeParseError   = 5
	ExitCodeNoHandler    = 6
	ExitCodeClientError  = 7
	ExitCodeHandlerError = 8
)

var (
	ExitCode int

	Debug        bool
	ConfigPath   string
	BackendName  string
	LogFormat    string
	LogLevel     string
	OutputFormat string

	// AppFs is the filesystem configuration, network data and outputs are read from and written to.
	AppFs = afero.NewOsFs()

	// newClusterClient builds the cluster-scoped client for a backend.
	newClusterClient = func(ctx context.Context, driverConfig *drivers.DriverConfig) (api.RestClientInterface, error) {
		return api.NewRestClientFromDriverConfig(ctx, driverConfig)
	}
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "multisvm",
	Short:        "A CLI tool for the NetApp multi-SVM NVMe/TCP driver",
	Long: `A CLI tool for inspecting the SVMs served by a dynamic multi-SVM NVMe/TCP backend, and for
provisioning and removing the per-tenant SVMs, volumes and networking it relies on`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initCmdLogging()
	},
}

func init() {
	RootCmd.Version = config.OrchestratorVersion
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", DefaultConfigPath, "Path to the backend configuration file")
	RootCmd.PersistentFlags().StringVarP(&BackendName, "backend", "b", "", "Backend group to use (default: the only one configured)")
	RootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", logging.TextFormat, "Log format. One of text|json")
	RootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "", "Output format. One of json|yaml|name|wide|ps (default)")
}

func initCmdLogging() error {
	if err := logging.InitLogging(Debug, LogLevel, LogFormat); err != nil {
		return fmt.Errorf("could not initialize logging; %v", err)
	}
	return nil
}

func cmdContext() context.Context {
	return logging.GenerateRequestContext(context.Background(), "", logging.ContextSourceCLI)
}

// loadBackend returns the selected backend group and its driver config. With no --backend the
// configuration must hold exactly one group.
func loadBackend(ctx context.Context) (*drivers.BackendGroup, *drivers.DriverConfig, error) {
	var group *drivers.BackendGroup
	if BackendName != "" {
		var err error
		if group, err = drivers.LoadBackendGroup(AppFs, ConfigPath, BackendName); err != nil {
			return nil, nil, err
		}
	} else {
		groups, err := drivers.LoadBackendGroups(AppFs, ConfigPath)
		if err != nil {
			return nil, nil, err
		}
		if len(groups) != 1 {
			return nil, nil, errors.ConfigError("%s defines %d backends; choose one with --backend",
				ConfigPath, len(groups))
		}
		for _, g := range groups {
			group = g
		}
	}

	driverConfig, err := drivers.NewDriverConfig(ctx, group)
	if err != nil {
		return nil, nil, err
	}
	return group, driverConfig, nil
}

// clusterClient loads the selected backend and connects to its cluster.
func clusterClient(ctx context.Context) (*drivers.BackendGroup, *drivers.DriverConfig, api.RestClientInterface, error) {
	group, driverConfig, err := loadBackend(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	client, err := newClusterClient(ctx, driverConfig)
	if err != nil {
		return nil, nil, nil, err
	}
	return group, driverConfig, client, nil
}

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Default to 1 in case we can't determine a process exit code
	return ExitCodeFailure
}
