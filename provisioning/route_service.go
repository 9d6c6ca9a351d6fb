// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"bytes"
	"context"
	"net"
	"slices"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

// RouteService creates the static routes of a tenant SVM.
type RouteService struct {
	client api.RestClientInterface
	svms   *SvmService
}

func NewRouteService(client api.RestClientInterface, svms *SvmService) *RouteService {
	return &RouteService{client: client, svms: svms}
}

// Nexthops returns the unique next-hops of the interfaces in ascending order.
func Nexthops(ifaces []*NetworkInterfaceConfig) []net.IP {
	seen := make(map[string]struct{}, len(ifaces))
	nexthops := make([]net.IP, 0, len(ifaces))
	for _, iface := range ifaces {
		nexthop := iface.RouteNexthop()
		if _, ok := seen[nexthop.String()]; ok {
			continue
		}
		seen[nexthop.String()] = struct{}{}
		nexthops = append(nexthops, nexthop)
	}
	slices.SortFunc(nexthops, func(a, b net.IP) int {
		return bytes.Compare(a.To16(), b.To16())
	})
	return nexthops
}

// Plan builds one route per unique next-hop. Every next-hop is checked before any route is
// returned, so a single bad next-hop fails the whole batch.
func (s *RouteService) Plan(tenantID string, ifaces []*NetworkInterfaceConfig) ([]*RouteSpec, error) {
	svmName := s.svms.SVMName(tenantID)

	var (
		routes []*RouteSpec
		errs   []error
	)
	for _, nexthop := range Nexthops(ifaces) {
		route, err := RouteSpecFromNexthop(svmName, nexthop)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		routes = append(routes, route)
	}
	if err := errors.Combine(errs...); err != nil {
		return nil, err
	}
	return routes, nil
}

// CreateRoutes creates the routes for the interfaces on the tenant's SVM. Routes already present
// with the same gateway and destination are skipped. It returns the routes that were created.
func (s *RouteService) CreateRoutes(
	ctx context.Context, tenantID string, ifaces []*NetworkInterfaceConfig,
) ([]*RouteSpec, error) {
	routes, err := s.Plan(tenantID, ifaces)
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, nil
	}

	svmName := s.svms.SVMName(tenantID)
	ctx = WithSVM(ctx, svmName)

	existing, err := s.client.NetworkRouteList(ctx, svmName)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(existing))
	for i := range existing {
		present[existing[i].Gateway+" "+existing[i].CIDR()] = struct{}{}
	}

	created := make([]*RouteSpec, 0, len(routes))
	for _, route := range routes {
		if _, ok := present[route.Gateway.String()+" "+route.Destination.String()]; ok {
			Logc(ctx).WithField("route", route.String()).Debug("Route already exists.")
			continue
		}
		if _, err = s.client.NetworkRouteCreate(ctx, route.apiSpec()); err != nil {
			return created, err
		}
		Logc(ctx).WithField("route", route.String()).Info("Created route.")
		created = append(created, route)
	}
	return created, nil
}
