// Copyright 2021 NetApp, Inc. All Rights Reserved.

package api

// Documents exchanged with the cluster REST API. Only the fields this module reads or writes are
// modeled; unknown fields are ignored on decode.

type Href struct {
	Href string `json:"href,omitempty"`
}

type Links struct {
	Self *Href `json:"self,omitempty"`
	Next *Href `json:"next,omitempty"`
}

// collection is the envelope of every list response.
type collection[T any] struct {
	Records    []T    `json:"records"`
	NumRecords int    `json:"num_records"`
	Links      *Links `json:"_links,omitempty"`
}

type NamedReference struct {
	Name string `json:"name,omitempty"`
	UUID string `json:"uuid,omitempty"`
}

type JobReference struct {
	UUID  string `json:"uuid"`
	Links *Links `json:"_links,omitempty"`
}

// jobLinkResponse is returned by every asynchronous operation (HTTP 202).
type jobLinkResponse struct {
	Job *JobReference `json:"job,omitempty"`
}

const (
	JobStateQueued  = "queued"
	JobStateRunning = "running"
	JobStatePaused  = "paused"
	JobStateSuccess = "success"
	JobStateFailure = "failure"
)

type Job struct {
	UUID        string `json:"uuid"`
	Description string `json:"description,omitempty"`
	State       string `json:"state"`
	Message     string `json:"message,omitempty"`
	Code        int    `json:"code,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
}

type errorPayload struct {
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Target  string `json:"target,omitempty"`
	} `json:"error,omitempty"`
}

type ClusterVersion struct {
	Full       string `json:"full,omitempty"`
	Generation int    `json:"generation"`
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
}

type Cluster struct {
	Name    string          `json:"name,omitempty"`
	UUID    string          `json:"uuid,omitempty"`
	Version *ClusterVersion `json:"version,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// SVMs
////////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	SvmStateRunning = "running"
	SvmStateStopped = "stopped"
)

type ProtocolState struct {
	Enabled *bool `json:"enabled,omitempty"`
	Allowed *bool `json:"allowed,omitempty"`
}

type Svm struct {
	Name       string           `json:"name"`
	UUID       string           `json:"uuid,omitempty"`
	State      string           `json:"state,omitempty"`
	Subtype    string           `json:"subtype,omitempty"`
	Language   string           `json:"language,omitempty"`
	Nvme       *ProtocolState   `json:"nvme,omitempty"`
	Iscsi      *ProtocolState   `json:"iscsi,omitempty"`
	Nfs        *ProtocolState   `json:"nfs,omitempty"`
	Aggregates []NamedReference `json:"aggregates,omitempty"`
}

// NVMeEnabled reports whether the SVM serves NVMe.
func (s *Svm) NVMeEnabled() bool {
	return s != nil && s.Nvme != nil && s.Nvme.Enabled != nil && *s.Nvme.Enabled
}

// SvmFilter narrows an SVM listing. Empty fields do not filter.
type SvmFilter struct {
	NamePattern string
	State       string
	NVMeEnabled *bool
}

type RootVolumeSpec struct {
	Name          string `json:"name"`
	SecurityStyle string `json:"security_style"`
}

// SvmSpec describes an SVM to create.
type SvmSpec struct {
	Name             string           `json:"name"`
	Language         string           `json:"language,omitempty"`
	Aggregates       []NamedReference `json:"aggregates,omitempty"`
	AllowedProtocols []string         `json:"allowed_protocols,omitempty"`
	RootVolume       *RootVolumeSpec  `json:"root_volume,omitempty"`
	Nvme             *ProtocolState   `json:"nvme,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// Cluster network
////////////////////////////////////////////////////////////////////////////////////////////////////////

type Node struct {
	Name string `json:"name"`
	UUID string `json:"uuid,omitempty"`
}

type BasePort struct {
	Name string          `json:"name"`
	Node *NamedReference `json:"node,omitempty"`
}

type Vlan struct {
	Tag      int       `json:"tag"`
	BasePort *BasePort `json:"base_port,omitempty"`
}

type BroadcastDomain struct {
	Name    string          `json:"name"`
	UUID    string          `json:"uuid,omitempty"`
	IPSpace *NamedReference `json:"ipspace,omitempty"`
}

type Port struct {
	Name            string           `json:"name,omitempty"`
	UUID            string           `json:"uuid,omitempty"`
	Type            string           `json:"type,omitempty"`
	Node            *NamedReference  `json:"node,omitempty"`
	Vlan            *Vlan            `json:"vlan,omitempty"`
	BroadcastDomain *BroadcastDomain `json:"broadcast_domain,omitempty"`
}

// PortSpec describes a VLAN port to create on a node.
type PortSpec struct {
	Node            string
	BasePort        string
	VlanID          int
	BroadcastDomain string
	IPSpace         string
}

type IPInfo struct {
	Address string `json:"address"`
	Netmask string `json:"netmask,omitempty"`
}

type InterfaceLocation struct {
	AutoRevert      *bool            `json:"auto_revert,omitempty"`
	HomePort        *NamedReference  `json:"home_port,omitempty"`
	HomeNode        *NamedReference  `json:"home_node,omitempty"`
	BroadcastDomain *BroadcastDomain `json:"broadcast_domain,omitempty"`
}

type IPInterface struct {
	Name          string             `json:"name"`
	UUID          string             `json:"uuid,omitempty"`
	IP            *IPInfo            `json:"ip,omitempty"`
	Svm           *NamedReference    `json:"svm,omitempty"`
	Location      *InterfaceLocation `json:"location,omitempty"`
	ServicePolicy *NamedReference    `json:"service_policy,omitempty"`
	Services      []string           `json:"services,omitempty"`
	Enabled       *bool              `json:"enabled,omitempty"`
}

// IPInterfaceSpec describes a LIF to create on an SVM.
type IPInterfaceSpec struct {
	Name            string
	SVM             string
	Address         string
	Netmask         string
	HomePortUUID    string
	BroadcastDomain string
	ServicePolicy   string
}

type RouteDestination struct {
	Address string `json:"address"`
	Netmask string `json:"netmask"`
	Family  string `json:"family,omitempty"`
}

type Route struct {
	UUID        string            `json:"uuid,omitempty"`
	Svm         *NamedReference   `json:"svm,omitempty"`
	Gateway     string            `json:"gateway"`
	Destination *RouteDestination `json:"destination"`
}

// RouteSpec describes a static route on an SVM. Destination is in CIDR notation.
type RouteSpec struct {
	SVM         string
	Gateway     string
	Destination string
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// Volumes and namespaces
////////////////////////////////////////////////////////////////////////////////////////////////////////

type VolumeSpace struct {
	Size      int64 `json:"size,omitempty"`
	Available int64 `json:"available,omitempty"`
	Used      int64 `json:"used,omitempty"`
}

type MetricValue struct {
	Read  float64 `json:"read,omitempty"`
	Write float64 `json:"write,omitempty"`
	Other float64 `json:"other,omitempty"`
	Total float64 `json:"total,omitempty"`
}

type VolumeMetric struct {
	Status     string       `json:"status,omitempty"`
	Duration   string       `json:"duration,omitempty"`
	Latency    *MetricValue `json:"latency,omitempty"`
	IOPS       *MetricValue `json:"iops,omitempty"`
	Throughput *MetricValue `json:"throughput,omitempty"`
}

type Volume struct {
	Name       string           `json:"name"`
	UUID       string           `json:"uuid,omitempty"`
	State      string           `json:"state,omitempty"`
	Style      string           `json:"style,omitempty"`
	Type       string           `json:"type,omitempty"`
	Svm        *NamedReference  `json:"svm,omitempty"`
	Aggregates []NamedReference `json:"aggregates,omitempty"`
	Space      *VolumeSpace     `json:"space,omitempty"`
	Metric     *VolumeMetric    `json:"metric,omitempty"`
}

// VolumeSpec describes a FlexVol to create. Size is in bytes.
type VolumeSpec struct {
	Name      string
	SVM       string
	Aggregate string
	Size      uint64
}

type NamespaceStatus struct {
	State    string `json:"state,omitempty"`
	Mapped   bool   `json:"mapped"`
	ReadOnly bool   `json:"read_only,omitempty"`
}

type NamespaceSpace struct {
	Size      int64 `json:"size,omitempty"`
	BlockSize int64 `json:"block_size,omitempty"`
	Used      int64 `json:"used,omitempty"`
}

type NamespaceLocation struct {
	Volume    *NamedReference `json:"volume,omitempty"`
	Namespace string          `json:"namespace,omitempty"`
}

type NVMeNamespace struct {
	Name     string             `json:"name"`
	UUID     string             `json:"uuid,omitempty"`
	OsType   string             `json:"os_type,omitempty"`
	Svm      *NamedReference    `json:"svm,omitempty"`
	Status   *NamespaceStatus   `json:"status,omitempty"`
	Space    *NamespaceSpace    `json:"space,omitempty"`
	Location *NamespaceLocation `json:"location,omitempty"`
	Comment  string             `json:"comment,omitempty"`
}

// Mapped reports whether the namespace is mapped to any subsystem.
func (n *NVMeNamespace) Mapped() bool {
	return n != nil && n.Status != nil && n.Status.Mapped
}

// NVMeNamespaceSpec describes a namespace to create. Path is /vol/<volume>/<name>; Size is in bytes.
type NVMeNamespaceSpec struct {
	Path    string
	OsType  string
	Size    uint64
	Comment string
}

type NVMeSubsystemHost struct {
	NQN string `json:"nqn"`
}

type NVMeSubsystem struct {
	Name      string              `json:"name"`
	UUID      string              `json:"uuid,omitempty"`
	OsType    string              `json:"os_type,omitempty"`
	TargetNQN string              `json:"target_nqn,omitempty"`
	Svm       *NamedReference     `json:"svm,omitempty"`
	Hosts     []NVMeSubsystemHost `json:"hosts,omitempty"`
}

type NVMeSubsystemMap struct {
	Svm       *NamedReference `json:"svm,omitempty"`
	Subsystem *NamedReference `json:"subsystem,omitempty"`
	Namespace *NamedReference `json:"namespace,omitempty"`
	NSID      string          `json:"nsid,omitempty"`
}
