// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"context"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/utils/errors"
)

// networkInterfaceDocument is one entry of a network data file.
type networkInterfaceDocument struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	VLAN    int    `json:"vlan"`
}

type networkDataDocument struct {
	Interfaces []networkInterfaceDocument `json:"interfaces"`
}

// ParseNetworkData parses a YAML or JSON network data document of the form
//
//	interfaces:
//	  - name: N1-lif-A
//	    address: 100.127.0.21/29
//	    vlan: 2002
//
// Every interface is validated; all problems are reported together.
func ParseNetworkData(data []byte, nicSlotPrefix string) ([]*NetworkInterfaceConfig, error) {
	var document networkDataDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, errors.InvalidInputError("could not parse network data: %v", err)
	}
	if len(document.Interfaces) == 0 {
		return nil, errors.InvalidInputError("network data defines no interfaces")
	}

	var (
		configs []*NetworkInterfaceConfig
		errs    []error
		seen    = make(map[string]struct{}, len(document.Interfaces))
	)
	for _, entry := range document.Interfaces {
		if _, ok := seen[entry.Name]; ok {
			errs = append(errs, errors.InvalidInputError("interface %s is defined more than once", entry.Name))
			continue
		}
		seen[entry.Name] = struct{}{}

		config, err := NewNetworkInterfaceConfig(entry.Name, entry.Address, entry.VLAN, nicSlotPrefix)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		configs = append(configs, config)
	}
	if err := errors.Combine(errs...); err != nil {
		return nil, err
	}
	return configs, nil
}

// LoadNetworkData reads and parses a network data file.
func LoadNetworkData(ctx context.Context, fs afero.Fs, path, nicSlotPrefix string) ([]*NetworkInterfaceConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read network data %s; %w", path, err)
	}

	configs, err := ParseNetworkData(data, nicSlotPrefix)
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"path":       path,
		"interfaces": len(configs),
	}).Debug("Loaded network data.")
	return configs, nil
}
