// Copyright 2025 NetApp, Inc. All Rights Reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/netapp/multisvm/config"
	"github.com/netapp/multisvm/frontend"
	"github.com/netapp/multisvm/frontend/events"
	"github.com/netapp/multisvm/frontend/metrics"
	"github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/provisioning"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

var (
	// Logging
	debug     = flag.Bool("debug", false, "Enable debugging output")
	logLevel  = flag.String("log_level", "info", "Logging level (trace, debug, info, warn, error, fatal)")
	logFormat = flag.String("log_format", logging.TextFormat, "Logging format (text, json)")

	// Backend
	configPath  = flag.String("config", "/etc/multisvm/backends.yaml", "Path to the backend configuration file")
	backendName = flag.String("backend", "", "Backend group to serve (default: the only one configured)")

	// Event frontend
	address     = flag.String("address", config.DefaultEventServerAddress, "Event frontend listen address")
	rateLimit   = flag.Float64("rate_limit", 0, "Maximum event requests per second (0 for no limit)")
	burst       = flag.Int("burst", 1, "Event request burst size")
	defaultTags = flag.StringSlice("default_tags", nil, "Project tags to use for events that carry none")

	// Metrics frontend
	metricsAddress = flag.String("metrics_address", config.DefaultMetricsAddress,
		"Metrics frontend listen address (empty to disable)")

	appFs = afero.NewOsFs()
)

func printFlag(f *flag.Flag) {
	log.WithFields(log.Fields{
		"name":  f.Name,
		"value": f.Value,
	}).Debug("Flag")
}

// selectBackendGroup returns the named group, or the only group when no name is given.
func selectBackendGroup(groups map[string]*drivers.BackendGroup, name string) (*drivers.BackendGroup, error) {
	if name != "" {
		group, ok := groups[name]
		if !ok {
			return nil, errors.ConfigError("backend %s is not configured", name)
		}
		return group, nil
	}
	if len(groups) != 1 {
		names := make([]string, 0, len(groups))
		for groupName := range groups {
			names = append(names, groupName)
		}
		sort.Strings(names)
		return nil, errors.ConfigError("%d backends configured (%s); choose one with --backend",
			len(groups), strings.Join(names, ", "))
	}
	for _, group := range groups {
		return group, nil
	}
	return nil, nil
}

func processCmdLineArgs(ctx context.Context) (*drivers.BackendGroup, *drivers.DriverConfig, error) {
	flag.Visit(printFlag)

	if *burst < 1 {
		return nil, nil, errors.ConfigError("burst must be at least 1")
	}
	if *rateLimit < 0 {
		return nil, nil, errors.ConfigError("rate_limit must not be negative")
	}

	groups, err := drivers.LoadBackendGroups(appFs, *configPath)
	if err != nil {
		return nil, nil, err
	}
	group, err := selectBackendGroup(groups, *backendName)
	if err != nil {
		return nil, nil, err
	}
	driverConfig, err := drivers.NewDriverConfig(ctx, group)
	if err != nil {
		return nil, nil, err
	}
	return group, driverConfig, nil
}

func eventServerOptions(driver *ontap.DynamicSVMDriver) []events.ServerOption {
	options := []events.ServerOption{events.WithStatsProvider(driver)}
	if *rateLimit > 0 {
		options = append(options, events.WithRateLimit(rate.Limit(*rateLimit), *burst))
	}
	return options
}

func main() {
	flag.Parse()

	if err := logging.InitLogging(*debug, *logLevel, *logFormat); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.WithFields(log.Fields{
		"version":    config.OrchestratorVersion,
		"build_time": config.BuildTime,
		"binary":     os.Args[0],
	}).Info("Running multi-SVM NVMe driver.")

	ctx := logging.GenerateRequestContext(context.Background(), "", logging.ContextSourceInternal)

	group, driverConfig, err := processCmdLineArgs(ctx)
	if err != nil {
		log.Fatalf("Invalid configuration. %v", err)
	}

	client, err := api.NewRestClientFromDriverConfig(ctx, driverConfig)
	if err != nil {
		log.Fatalf("Unable to create the cluster client. %v", err)
	}

	driver, err := ontap.NewDynamicSVMDriver(ctx, group, ontap.WithClusterClient(client))
	if err != nil {
		log.Fatalf("Unable to create the driver. %v", err)
	}
	if err = driver.Setup(ctx); err != nil {
		log.Fatalf("Unable to set up the driver. %v", err)
	}
	if err = driver.CheckForSetupError(ctx); err != nil {
		log.Fatalf("Driver setup failed. %v", err)
	}

	var handlerOptions []events.HandlerOption
	if len(*defaultTags) > 0 {
		handlerOptions = append(handlerOptions, events.WithTagSource(events.StaticTagSource(*defaultTags)))
	}
	manager := provisioning.NewManager(client, provisioning.NewConfig(driverConfig))
	handler := events.NewHandler(manager, driverConfig.SVMProjectTag, driverConfig.SVMPrefix, handlerOptions...)

	frontends := []frontend.Plugin{events.NewServer(handler, *address, eventServerOptions(driver)...)}
	if *metricsAddress != "" && *metricsAddress != *address {
		frontends = append(frontends, metrics.NewMetricsServer(*metricsAddress))
	}

	for _, f := range frontends {
		if err = f.Activate(); err != nil {
			log.Fatalf("Unable to activate the %s frontend. %v", f.GetName(), err)
		}
		log.WithFields(log.Fields{"name": f.GetName(), "version": f.Version()}).Info("Activated frontend.")
	}

	// Register and wait for a shutdown signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	log.Info("Shutting down.")
	for _, f := range frontends {
		if err = f.Deactivate(); err != nil {
			log.WithError(err).WithField("name", f.GetName()).Warning("Could not deactivate frontend.")
		}
	}
	driver.Teardown(ctx)
}
