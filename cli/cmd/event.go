// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/netapp/multisvm/config"
	"github.com/netapp/multisvm/frontend/events"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/provisioning"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

var (
	eventFile      string
	eventTags      []string
	eventOutputDir string

	serveAddress   string
	serveRateLimit float64
	serveBurst     int
)

func init() {
	RootCmd.AddCommand(eventCmd)
	eventCmd.AddCommand(eventHandleCmd)
	eventCmd.AddCommand(eventServeCmd)

	eventHandleCmd.Flags().StringVarP(&eventFile, "file", "f", "-", "Event file, or - for stdin")
	eventHandleCmd.Flags().StringSliceVar(&eventTags, "tags", nil,
		"Project tags to use when the event carries none")
	eventHandleCmd.Flags().StringVar(&eventOutputDir, "output-dir", "",
		"Directory for output files (default: the backend's output_dir)")

	eventServeCmd.Flags().StringVar(&serveAddress, "address", config.DefaultEventServerAddress, "Listen address")
	eventServeCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", 0,
		"Maximum event requests per second (0 for no limit)")
	eventServeCmd.Flags().IntVar(&serveBurst, "burst", 1, "Event request burst size")
}

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Handle project lifecycle events",
}

var eventHandleCmd = &cobra.Command{
	Use:   "handle",
	Short: "Handle one project event read from a file or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readEvent(cmd.InOrStdin())
		if err != nil {
			return withExitCode(ExitCodeParseError, err)
		}
		event, err := events.ParseEvent(data)
		if err != nil {
			return withExitCode(ExitCodeParseError, err)
		}
		if !event.Handled() {
			return withExitCode(ExitCodeNoHandler, errors.InvalidInputError("no handler for event type %s",
				event.EventType))
		}

		ctx := cmdContext()
		_, driverConfig, client, err := clusterClient(ctx)
		if err != nil {
			return withExitCode(ExitCodeClientError, err)
		}

		outputDir := eventOutputDir
		if outputDir == "" {
			outputDir = driverConfig.OutputDir
		}
		handler := newEventHandler(client, driverConfig,
			events.WithOutputWriter(events.NewOutputWriter(AppFs, outputDir)))

		result, err := handler.Handle(ctx, event)
		if err != nil {
			return withExitCode(ExitCodeHandlerError, err)
		}

		if OutputFormat == FormatYAML {
			WriteYAML(cmd.OutOrStdout(), result)
		} else {
			WriteJSON(cmd.OutOrStdout(), result)
		}
		return nil
	},
}

var eventServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve project events over HTTP while keeping the backend's SVM registry current",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext()
		group, driverConfig, client, err := clusterClient(ctx)
		if err != nil {
			return withExitCode(ExitCodeClientError, err)
		}

		driver, err := newDriver(ctx, group, client)
		if err != nil {
			return err
		}
		if err = driver.Setup(ctx); err != nil {
			return err
		}
		if err = driver.CheckForSetupError(ctx); err != nil {
			return err
		}
		defer driver.Teardown(ctx)

		options := []events.ServerOption{events.WithStatsProvider(driver)}
		if serveRateLimit > 0 {
			options = append(options, events.WithRateLimit(rate.Limit(serveRateLimit), serveBurst))
		}
		server := events.NewServer(newEventHandler(client, driverConfig), serveAddress, options...)
		if err = server.Activate(); err != nil {
			return err
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		<-signals
		Logc(ctx).Info("Shutting down.")

		return server.Deactivate()
	},
}

func newEventHandler(
	client api.RestClientInterface, driverConfig *drivers.DriverConfig, options ...events.HandlerOption,
) *events.Handler {
	if len(eventTags) > 0 {
		options = append(options, events.WithTagSource(events.StaticTagSource(eventTags)))
	}
	manager := provisioning.NewManager(client, provisioning.NewConfig(driverConfig))
	return events.NewHandler(manager, driverConfig.SVMProjectTag, driverConfig.SVMPrefix, options...)
}

func readEvent(stdin io.Reader) ([]byte, error) {
	if eventFile == "" || eventFile == "-" {
		return io.ReadAll(io.LimitReader(stdin, config.MaxEventRequestSize))
	}
	return afero.ReadFile(AppFs, eventFile)
}
