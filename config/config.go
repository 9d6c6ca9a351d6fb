// Copyright 2018 NetApp, Inc. All Rights Reserved.

package config

import (
	"fmt"
	"time"
)

type Protocol string

const (
	/* Misc. orchestrator constants */
	OrchestratorName    = "multisvm"
	orchestratorVersion = "25.10.0"
	VendorName          = "NetApp"
	DriverName          = "DynamicSVMNVMeDriver"

	NVMe Protocol = "NVMe"

	/* Discovery and client defaults */
	DefaultSVMPrefix           = "os-"
	DefaultDiscoveryInterval   = 300 * time.Second
	DefaultAsyncRESTTimeout    = 60 * time.Second
	DefaultPerfSampleInterval  = 60 * time.Second
	DefaultStatsWorkers        = 8
	DefaultNamespaceOSType     = "linux"
	DefaultHostType            = "linux"
	DefaultAPITracePattern     = "(.*)"
	DefaultMaxOverSubscription = 20.0
	DefaultReservedPercentage  = 0
	DefaultRESTPort            = 443
	DefaultRESTTransport       = "https"
	RESTRetryAttempts          = 3
	RESTRetryInitialInterval   = 500 * time.Millisecond
	RESTJobPollInitialInterval = 1 * time.Second
	HTTPClientTimeout          = 60 * time.Second
	PoolSeparator              = "+"
	HostPoolSeparator          = "#"
	HostBackendSeparator       = "@"
	DerivedGroupSeparator      = "_"
	TenantFilterPredicate      = "capabilities.tenant_id == volume.project_id"
	CapacityUnknown            = "unknown"
	DefaultNVMeServicePolicy   = "default-data-nvme-tcp"
	DefaultBroadcastIPSpace    = "Default"
	DefaultNICSlotPrefix       = "e4"
	DefaultVolumeSize          = "1GB"
	DefaultSVMProjectTag       = "UNDERSTACK_SVM"
	DefaultOutputDir           = "/tmp"
	DefaultSVMLanguage         = "c.utf_8"
	DefaultRootSecurityStyle   = "unix"
	DefaultEventServerAddress  = ":8443"
	MaxEventRequestSize        = 1 << 20
	EventServerReadTimeout     = 30 * time.Second
	EventServerWriteTimeout    = 5 * time.Minute
	DefaultMetricsAddress      = ":8001"
	MetricsServerTimeout       = 90 * time.Second
)

// OrchestratorAPIVersion is the version of the HTTP frontends.
const OrchestratorAPIVersion = "1"

var (
	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	OrchestratorVersion = version()
)

func version() string {

	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", orchestratorVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", orchestratorVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = orchestratorVersion
	}

	return version
}
