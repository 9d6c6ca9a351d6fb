// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"context"
	"fmt"
	"strings"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

// LifService creates the VLAN ports and data LIFs of a tenant SVM.
type LifService struct {
	client api.RestClientInterface
	svms   *SvmService
	config Config
}

func NewLifService(client api.RestClientInterface, svms *SvmService, config Config) *LifService {
	return &LifService{client: client, svms: svms, config: config}
}

// IdentifyHomeNode returns the first cluster node whose name ends with the two-digit node number of
// the interface, e.g. -01 for N1-lif-A.
func (s *LifService) IdentifyHomeNode(ctx context.Context, iface *NetworkInterfaceConfig) (*api.Node, error) {
	nodes, err := s.client.NodeList(ctx)
	if err != nil {
		return nil, err
	}

	suffix := fmt.Sprintf("-%02d", iface.HomeNodeNumber())
	for i := range nodes {
		if strings.HasSuffix(nodes[i].Name, suffix) {
			Logc(ctx).WithFields(LogFields{
				"interface": iface.Name,
				"node":      nodes[i].Name,
			}).Debug("Identified home node.")
			return &nodes[i], nil
		}
	}
	return nil, errors.NodeNotFoundError("no node name ends with %s for interface %s", suffix, iface.Name)
}

// CreateHomePort returns the VLAN port for the interface on node, creating it if needed.
func (s *LifService) CreateHomePort(
	ctx context.Context, iface *NetworkInterfaceConfig, node *api.Node,
) (*api.Port, error) {
	port, err := s.client.NetworkPortGetVLAN(ctx, node.Name, iface.BasePortName(), iface.VLANID)
	if err != nil {
		return nil, err
	}
	if port != nil {
		Logc(ctx).WithFields(LogFields{
			"node": node.Name,
			"port": port.Name,
		}).Debug("VLAN port already exists.")
		return port, nil
	}

	port, err = s.client.NetworkPortCreateVLAN(ctx, api.PortSpec{
		Node:            node.Name,
		BasePort:        iface.BasePortName(),
		VlanID:          iface.VLANID,
		BroadcastDomain: iface.BroadcastDomainName(),
		IPSpace:         s.config.IPSpace,
	})
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"node":            node.Name,
		"port":            port.Name,
		"uuid":            port.UUID,
		"broadcastDomain": iface.BroadcastDomainName(),
	}).Info("Created VLAN port.")
	return port, nil
}

// CreateLIF creates the data LIF for the interface on the tenant's SVM. The SVM must exist; a LIF
// with the same name is left alone.
func (s *LifService) CreateLIF(
	ctx context.Context, tenantID string, iface *NetworkInterfaceConfig,
) (*api.IPInterface, error) {
	svmName := s.svms.SVMName(tenantID)
	ctx = WithSVM(ctx, svmName)

	svm, err := s.client.SvmGetByName(ctx, svmName)
	if err != nil {
		return nil, err
	}
	if svm == nil {
		return nil, errors.SVMNotFoundError(svmName)
	}

	existing, err := s.client.NetworkIPInterfaceGetByName(ctx, svmName, iface.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		Logc(ctx).WithField("lif", iface.Name).Info("LIF already exists.")
		return existing, nil
	}

	node, err := s.IdentifyHomeNode(ctx, iface)
	if err != nil {
		return nil, err
	}
	port, err := s.CreateHomePort(ctx, iface, node)
	if err != nil {
		return nil, err
	}

	lif, err := s.client.NetworkIPInterfaceCreate(ctx, api.IPInterfaceSpec{
		Name:            iface.Name,
		SVM:             svmName,
		Address:         iface.Address.String(),
		Netmask:         iface.Netmask(),
		HomePortUUID:    port.UUID,
		BroadcastDomain: iface.BroadcastDomainName(),
		ServicePolicy:   s.config.ServicePolicy,
	})
	if err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"lif":     iface.Name,
		"address": iface.Address.String(),
		"node":    node.Name,
		"vlan":    iface.VLANID,
	}).Info("Created LIF.")
	return lif, nil
}
