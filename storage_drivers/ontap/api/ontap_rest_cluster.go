// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/utils/errors"
)

const (
	svmFields         = "name,uuid,state,subtype,language,nvme.enabled,nvme.allowed,aggregates.name"
	portFields        = "name,uuid,type,node.name,vlan.tag,vlan.base_port.name,broadcast_domain.name"
	ipInterfaceFields = "name,uuid,ip.address,ip.netmask,svm.name,location.home_port.uuid,service_policy.name,enabled"
	routeFields       = "uuid,svm.name,gateway,destination.address,destination.netmask"
	volumeFields      = "name,uuid,state,style,type,svm.name,aggregates.name,space.size,space.available,space.used"
	namespaceFields   = "name,uuid,os_type,svm.name,status.state,status.mapped,space.size,location.volume.name"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////
// SVM operations
////////////////////////////////////////////////////////////////////////////////////////////////////////

// SvmList returns the SVMs matching filter.
func (c *RestClient) SvmList(ctx context.Context, filter SvmFilter) ([]Svm, error) {
	query := url.Values{"fields": []string{svmFields}}
	if filter.NamePattern != "" {
		query.Set("name", filter.NamePattern)
	}
	if filter.State != "" {
		query.Set("state", filter.State)
	}
	if filter.NVMeEnabled != nil {
		query.Set("nvme.enabled", strconv.FormatBool(*filter.NVMeEnabled))
	}

	svms, err := getAll[Svm](ctx, c, "/api/svm/svms", query)
	if err != nil {
		return nil, err
	}

	// The cluster applies the filter, but a filter it ignores must not leak unrelated SVMs.
	result := make([]Svm, 0, len(svms))
	for _, svm := range svms {
		if filter.State != "" && svm.State != "" && svm.State != filter.State {
			continue
		}
		if filter.NVMeEnabled != nil && svm.Nvme != nil && svm.NVMeEnabled() != *filter.NVMeEnabled {
			continue
		}
		result = append(result, svm)
	}
	return result, nil
}

// SvmGetByName returns the named SVM, or nil if it does not exist.
func (c *RestClient) SvmGetByName(ctx context.Context, name string) (*Svm, error) {
	query := url.Values{"name": []string{name}, "fields": []string{svmFields}}
	return getOne[Svm](ctx, c, "/api/svm/svms", query)
}

// SvmCreate creates an SVM and waits for the creation job to finish.
func (c *RestClient) SvmCreate(ctx context.Context, spec SvmSpec) (*Svm, error) {
	if spec.Name == "" {
		return nil, errors.InvalidInputError("SVM name is required")
	}

	Logc(ctx).WithFields(LogFields{
		"svm":        spec.Name,
		"aggregates": spec.Aggregates,
		"protocols":  spec.AllowedProtocols,
	}).Debug("Creating SVM.")

	if err := c.modify(ctx, http.MethodPost, "/api/svm/svms", nil, spec, nil); err != nil {
		return nil, err
	}

	svm, err := c.SvmGetByName(ctx, spec.Name)
	if err != nil {
		return nil, err
	}
	if svm == nil {
		return nil, errors.SVMNotFoundError(spec.Name)
	}
	return svm, nil
}

// SvmDelete deletes the named SVM. It returns false if the SVM did not exist.
func (c *RestClient) SvmDelete(ctx context.Context, name string) (bool, error) {
	svm, err := c.SvmGetByName(ctx, name)
	if err != nil {
		return false, err
	}
	if svm == nil {
		return false, nil
	}

	if err = c.modify(ctx, http.MethodDelete, "/api/svm/svms/"+url.PathEscape(svm.UUID), nil, nil, nil); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// Node and network operations
////////////////////////////////////////////////////////////////////////////////////////////////////////

// NodeList returns every node in the cluster.
func (c *RestClient) NodeList(ctx context.Context) ([]Node, error) {
	return getAll[Node](ctx, c, "/api/cluster/nodes", url.Values{"fields": []string{"name,uuid"}})
}

// NetworkPortGetVLAN returns the VLAN port on node with the given base port and tag, or nil.
func (c *RestClient) NetworkPortGetVLAN(ctx context.Context, node, basePort string, vlanID int) (*Port, error) {
	query := url.Values{
		"type":                []string{"vlan"},
		"node.name":           []string{node},
		"vlan.base_port.name": []string{basePort},
		"vlan.tag":            []string{strconv.Itoa(vlanID)},
		"fields":              []string{portFields},
	}
	return getOne[Port](ctx, c, "/api/network/ethernet/ports", query)
}

// NetworkPortCreateVLAN creates a tagged VLAN port in a broadcast domain.
func (c *RestClient) NetworkPortCreateVLAN(ctx context.Context, spec PortSpec) (*Port, error) {
	if spec.VlanID < 1 || spec.VlanID > 4094 {
		return nil, errors.InvalidInputError("VLAN ID %d is out of range", spec.VlanID)
	}
	ipspace := spec.IPSpace
	if ipspace == "" {
		ipspace = config.DefaultBroadcastIPSpace
	}

	port := Port{
		Type: "vlan",
		Vlan: &Vlan{
			Tag:      spec.VlanID,
			BasePort: &BasePort{Name: spec.BasePort, Node: &NamedReference{Name: spec.Node}},
		},
		BroadcastDomain: &BroadcastDomain{
			Name:    spec.BroadcastDomain,
			IPSpace: &NamedReference{Name: ipspace},
		},
	}

	Logc(ctx).WithFields(LogFields{
		"node":            spec.Node,
		"basePort":        spec.BasePort,
		"vlan":            spec.VlanID,
		"broadcastDomain": spec.BroadcastDomain,
	}).Debug("Creating VLAN port.")

	var created collection[Port]
	query := url.Values{"return_records": []string{"true"}}
	if err := c.modify(ctx, http.MethodPost, "/api/network/ethernet/ports", query, port, &created); err != nil {
		return nil, err
	}
	if len(created.Records) > 0 && created.Records[0].UUID != "" {
		return &created.Records[0], nil
	}

	result, err := c.NetworkPortGetVLAN(ctx, spec.Node, spec.BasePort, spec.VlanID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.NotFoundError("VLAN port %s-%d not found on node %s after creation",
			spec.BasePort, spec.VlanID, spec.Node)
	}
	return result, nil
}

// NetworkIPInterfaceGetByName returns the named LIF on svm, or nil.
func (c *RestClient) NetworkIPInterfaceGetByName(ctx context.Context, svm, name string) (*IPInterface, error) {
	query := url.Values{
		"svm.name": []string{svm},
		"name":     []string{name},
		"fields":   []string{ipInterfaceFields},
	}
	return getOne[IPInterface](ctx, c, "/api/network/ip/interfaces", query)
}

// NetworkIPInterfaceList returns every LIF on svm.
func (c *RestClient) NetworkIPInterfaceList(ctx context.Context, svm string) ([]IPInterface, error) {
	query := url.Values{"svm.name": []string{svm}, "fields": []string{ipInterfaceFields}}
	return getAll[IPInterface](ctx, c, "/api/network/ip/interfaces", query)
}

// NetworkIPInterfaceCreate creates a LIF on an SVM, homed on the given port.
func (c *RestClient) NetworkIPInterfaceCreate(ctx context.Context, spec IPInterfaceSpec) (*IPInterface, error) {
	lif := IPInterface{
		Name: spec.Name,
		IP:   &IPInfo{Address: spec.Address, Netmask: spec.Netmask},
		Svm:  &NamedReference{Name: spec.SVM},
		Location: &InterfaceLocation{
			AutoRevert:      ToBoolPointer(false),
			HomePort:        &NamedReference{UUID: spec.HomePortUUID},
			BroadcastDomain: &BroadcastDomain{Name: spec.BroadcastDomain},
		},
		ServicePolicy: &NamedReference{Name: spec.ServicePolicy},
	}

	Logc(ctx).WithFields(LogFields{
		"svm":     spec.SVM,
		"lif":     spec.Name,
		"address": spec.Address,
		"port":    spec.HomePortUUID,
	}).Debug("Creating IP interface.")

	var created collection[IPInterface]
	query := url.Values{"return_records": []string{"true"}}
	if err := c.modify(ctx, http.MethodPost, "/api/network/ip/interfaces", query, lif, &created); err != nil {
		return nil, err
	}
	if len(created.Records) > 0 && created.Records[0].UUID != "" {
		return &created.Records[0], nil
	}

	result, err := c.NetworkIPInterfaceGetByName(ctx, spec.SVM, spec.Name)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.NotFoundError("IP interface %s not found on SVM %s after creation", spec.Name, spec.SVM)
	}
	return result, nil
}

// NetworkRouteList returns the static routes of svm.
func (c *RestClient) NetworkRouteList(ctx context.Context, svm string) ([]Route, error) {
	query := url.Values{"svm.name": []string{svm}, "fields": []string{routeFields}}
	return getAll[Route](ctx, c, "/api/network/ip/routes", query)
}

// NetworkRouteCreate creates a static route on an SVM.
func (c *RestClient) NetworkRouteCreate(ctx context.Context, spec RouteSpec) (*Route, error) {
	_, destination, err := net.ParseCIDR(spec.Destination)
	if err != nil {
		return nil, errors.InvalidInputError("invalid route destination %s: %v", spec.Destination, err)
	}
	if net.ParseIP(spec.Gateway) == nil {
		return nil, errors.InvalidInputError("invalid route gateway %s", spec.Gateway)
	}
	ones, _ := destination.Mask.Size()

	route := Route{
		Svm:     &NamedReference{Name: spec.SVM},
		Gateway: spec.Gateway,
		Destination: &RouteDestination{
			Address: destination.IP.String(),
			Netmask: strconv.Itoa(ones),
		},
	}

	Logc(ctx).WithFields(LogFields{
		"svm":         spec.SVM,
		"gateway":     spec.Gateway,
		"destination": spec.Destination,
	}).Debug("Creating route.")

	var created collection[Route]
	query := url.Values{"return_records": []string{"true"}}
	if err = c.modify(ctx, http.MethodPost, "/api/network/ip/routes", query, route, &created); err != nil {
		return nil, err
	}
	if len(created.Records) > 0 {
		return &created.Records[0], nil
	}
	return &route, nil
}

// CIDR returns the route destination in CIDR notation.
func (r *Route) CIDR() string {
	if r == nil || r.Destination == nil {
		return ""
	}
	netmask := r.Destination.Netmask
	if strings.Contains(netmask, ".") {
		if ip := net.ParseIP(netmask).To4(); ip != nil {
			ones, _ := net.IPv4Mask(ip[0], ip[1], ip[2], ip[3]).Size()
			netmask = strconv.Itoa(ones)
		}
	}
	return fmt.Sprintf("%s/%s", r.Destination.Address, netmask)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// Volume operations
////////////////////////////////////////////////////////////////////////////////////////////////////////

// VolumeGetByName returns the named volume on svm, or nil.
func (c *RestClient) VolumeGetByName(ctx context.Context, svm, name string) (*Volume, error) {
	query := url.Values{
		"svm.name": []string{svm},
		"name":     []string{name},
		"fields":   []string{volumeFields},
	}
	return getOne[Volume](ctx, c, "/api/storage/volumes", query)
}

// VolumeCreate creates a FlexVol and waits for the creation job to finish.
func (c *RestClient) VolumeCreate(ctx context.Context, spec VolumeSpec) error {
	volume := struct {
		Name       string           `json:"name"`
		Svm        NamedReference   `json:"svm"`
		Aggregates []NamedReference `json:"aggregates,omitempty"`
		Size       uint64           `json:"size,omitempty"`
	}{
		Name: spec.Name,
		Svm:  NamedReference{Name: spec.SVM},
		Size: spec.Size,
	}
	if spec.Aggregate != "" {
		volume.Aggregates = []NamedReference{{Name: spec.Aggregate}}
	}

	Logc(ctx).WithFields(LogFields{
		"svm":       spec.SVM,
		"volume":    spec.Name,
		"aggregate": spec.Aggregate,
		"size":      spec.Size,
	}).Debug("Creating volume.")

	return c.modify(ctx, http.MethodPost, "/api/storage/volumes", nil, volume, nil)
}

// VolumeDelete deletes the named volume on svm. It returns false if the volume did not exist.
func (c *RestClient) VolumeDelete(ctx context.Context, svm, name string, force bool) (bool, error) {
	volume, err := c.VolumeGetByName(ctx, svm, name)
	if err != nil {
		return false, err
	}
	if volume == nil {
		return false, nil
	}

	var query url.Values
	if force {
		query = url.Values{"force": []string{"true"}}
	}
	if err = c.modify(ctx, http.MethodDelete, "/api/storage/volumes/"+url.PathEscape(volume.UUID), query, nil,
		nil); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NVMeNamespaceList returns the namespaces of svm, optionally restricted to one volume.
func (c *RestClient) NVMeNamespaceList(ctx context.Context, svm, volume string) ([]NVMeNamespace, error) {
	query := url.Values{"svm.name": []string{svm}, "fields": []string{namespaceFields}}
	if volume != "" {
		query.Set("location.volume.name", volume)
	}
	return getAll[NVMeNamespace](ctx, c, "/api/storage/namespaces", query)
}
