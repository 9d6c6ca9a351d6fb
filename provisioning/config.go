// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	multisvmconfig "github.com/netapp/multisvm/config"
	drivers "github.com/netapp/multisvm/storage_drivers"
)

// Config holds the settings shared by the provisioning services.
type Config struct {
	SVMPrefix       string
	Aggregate       string
	VolumeSizeBytes uint64
	NICSlotPrefix   string
	ServicePolicy   string
	IPSpace         string
	Language        string
	SecurityStyle   string
}

// NewConfig takes the provisioning settings from a backend group's driver config.
func NewConfig(driverConfig *drivers.DriverConfig) Config {
	return Config{
		SVMPrefix:       driverConfig.SVMPrefix,
		Aggregate:       driverConfig.Aggregate,
		VolumeSizeBytes: driverConfig.VolumeSizeBytes,
		NICSlotPrefix:   driverConfig.NICSlotPrefix,
		ServicePolicy:   multisvmconfig.DefaultNVMeServicePolicy,
		IPSpace:         multisvmconfig.DefaultBroadcastIPSpace,
		Language:        multisvmconfig.DefaultSVMLanguage,
		SecurityStyle:   multisvmconfig.DefaultRootSecurityStyle,
	}
}
