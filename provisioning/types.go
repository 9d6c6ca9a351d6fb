// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

const (
	minVLANID = 1
	maxVLANID = 4094

	broadcastDomainPrefix = "Fabric-"
	rootVolumeSuffix      = "_root"
	volumePrefix          = "vol_"
)

var interfaceNameRegex = regexp.MustCompile(`^N(\d)-lif-(A|B)$`)

// Route rule: next-hops live in the carrier-grade NAT range and pick one of two destination halves
// by their third octet.
var (
	nexthopRange = mustParseCIDR("100.64.0.0/10")
	destinations = map[byte]*net.IPNet{
		0:   mustParseCIDR("100.126.0.0/17"),
		128: mustParseCIDR("100.126.128.0/17"),
	}
)

func mustParseCIDR(cidr string) *net.IPNet {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}
	return network
}

// TeardownResult reports the outcome of a tenant cleanup. A resource that did not exist counts as
// successfully removed.
type TeardownResult struct {
	Volume bool `json:"volume" yaml:"volume"`
	SVM    bool `json:"svm" yaml:"svm"`
}

// NetworkInterfaceConfig is one data LIF to create for a tenant SVM.
type NetworkInterfaceConfig struct {
	Name          string
	Address       net.IP
	Network       *net.IPNet
	VLANID        int
	NICSlotPrefix string
}

// NewNetworkInterfaceConfig validates and builds an interface config. address is in CIDR notation.
func NewNetworkInterfaceConfig(name, address string, vlanID int, nicSlotPrefix string) (*NetworkInterfaceConfig, error) {
	if !interfaceNameRegex.MatchString(name) {
		return nil, errors.InvalidInputError("interface name %q does not match %s", name,
			interfaceNameRegex.String())
	}
	if vlanID < minVLANID || vlanID > maxVLANID {
		return nil, errors.InvalidInputError("VLAN ID %d of interface %s is outside %d..%d", vlanID, name,
			minVLANID, maxVLANID)
	}
	ip, network, err := net.ParseCIDR(address)
	if err != nil {
		return nil, errors.InvalidInputError("invalid address %q for interface %s: %v", address, name, err)
	}
	if ip.To4() == nil {
		return nil, errors.InvalidInputError("address %s of interface %s is not IPv4", address, name)
	}

	return &NetworkInterfaceConfig{
		Name:          name,
		Address:       ip.To4(),
		Network:       network,
		VLANID:        vlanID,
		NICSlotPrefix: nicSlotPrefix,
	}, nil
}

// Side is the fabric side, A or B.
func (c *NetworkInterfaceConfig) Side() string {
	return c.Name[len(c.Name)-1:]
}

// HomeNodeNumber is the k of the Nk- name prefix.
func (c *NetworkInterfaceConfig) HomeNodeNumber() int {
	match := interfaceNameRegex.FindStringSubmatch(c.Name)
	if match == nil {
		return 0
	}
	number, _ := strconv.Atoi(match[1])
	return number
}

// BasePortName is the physical port the VLAN is tagged on, e.g. e4a.
func (c *NetworkInterfaceConfig) BasePortName() string {
	return c.NICSlotPrefix + strings.ToLower(c.Side())
}

func (c *NetworkInterfaceConfig) BroadcastDomainName() string {
	return broadcastDomainPrefix + c.Side()
}

// Netmask returns the dotted-quad netmask of the interface network.
func (c *NetworkInterfaceConfig) Netmask() string {
	return net.IP(c.Network.Mask).String()
}

// RouteNexthop is the first host address of the interface network.
func (c *NetworkInterfaceConfig) RouteNexthop() net.IP {
	base := c.Network.IP.To4()
	nexthop := make(net.IP, len(base))
	copy(nexthop, base)
	nexthop[len(nexthop)-1]++
	return nexthop
}

// RouteSpec is a static route to create on a tenant SVM.
type RouteSpec struct {
	SVMName     string
	Gateway     net.IP
	Destination *net.IPNet
}

// RouteSpecFromNexthop derives the route for a next-hop. The next-hop must be an IPv4 address
// inside 100.64.0.0/10 with a third octet of 0 or 128.
func RouteSpecFromNexthop(svm string, nexthop net.IP) (*RouteSpec, error) {
	ip := nexthop.To4()
	if ip == nil {
		return nil, errors.UnsupportedIPPatternError("next-hop %s is not an IPv4 address", nexthop)
	}
	if !nexthopRange.Contains(ip) {
		return nil, errors.UnsupportedIPPatternError("next-hop %s is outside %s", ip, nexthopRange)
	}
	destination, ok := destinations[ip[2]]
	if !ok {
		return nil, errors.UnsupportedIPPatternError(
			"next-hop %s has third octet %d; only 0 and 128 are supported", ip, ip[2])
	}
	return &RouteSpec{SVMName: svm, Gateway: ip, Destination: destination}, nil
}

func (r *RouteSpec) String() string {
	return fmt.Sprintf("%s via %s on %s", r.Destination, r.Gateway, r.SVMName)
}

func (r *RouteSpec) apiSpec() api.RouteSpec {
	return api.RouteSpec{SVM: r.SVMName, Gateway: r.Gateway.String(), Destination: r.Destination.String()}
}
