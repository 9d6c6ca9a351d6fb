// Copyright 2022 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/go-openapi/strfmt"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/spf13/afero"

	"github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/capacity"
	"github.com/netapp/multisvm/utils/errors"
)

// Option names recognized in a backend group
const (
	OptionSVMPrefix                = "svm_prefix"
	OptionSVMDiscoveryInterval     = "svm_discovery_interval"
	OptionConnectionHost           = "connection.host"
	OptionConnectionPort           = "connection.port"
	OptionConnectionTransport      = "connection.transport"
	OptionUsername                 = "auth.username"
	OptionPassword                 = "auth.password"
	OptionVServer                  = "vserver"
	OptionBackendName              = "backend_name"
	OptionNamespaceOSType          = "namespace_ostype"
	OptionHostType                 = "host_type"
	OptionAPITracePattern          = "api_trace_pattern"
	OptionAsyncRESTTimeout         = "async_rest_timeout"
	OptionFilterFunction           = "filter_function"
	OptionGoodnessFunction         = "goodness_function"
	OptionReservedPercentage       = "reserved_percentage"
	OptionMaxOverSubscriptionRatio = "max_over_subscription_ratio"
	OptionPerfSampleInterval       = "perf_sample_interval"
	OptionStatsWorkers             = "stats_workers"
	OptionRESTRateLimit            = "rest_rate_limit"
	OptionAggregate                = "aggregate"
	OptionVolumeSize               = "volume_size"
	OptionNICSlotPrefix            = "nic_slot_prefix"
	OptionSVMProjectTag            = "svm_project_tag"
	OptionOutputDir                = "output_dir"
	OptionTraceMethod              = "trace_method"
)

// optionDefaults holds every recognized option and its default value. An empty default means the
// option is unset unless the group provides it.
var optionDefaults = map[string]string{
	OptionSVMPrefix:                config.DefaultSVMPrefix,
	OptionSVMDiscoveryInterval:     strconv.Itoa(int(config.DefaultDiscoveryInterval.Seconds())),
	OptionConnectionHost:           "",
	OptionConnectionPort:           strconv.Itoa(config.DefaultRESTPort),
	OptionConnectionTransport:      config.DefaultRESTTransport,
	OptionUsername:                 "",
	OptionPassword:                 "",
	OptionVServer:                  "",
	OptionBackendName:              "",
	OptionNamespaceOSType:          config.DefaultNamespaceOSType,
	OptionHostType:                 config.DefaultHostType,
	OptionAPITracePattern:          config.DefaultAPITracePattern,
	OptionAsyncRESTTimeout:         strconv.Itoa(int(config.DefaultAsyncRESTTimeout.Seconds())),
	OptionFilterFunction:           "",
	OptionGoodnessFunction:         "",
	OptionReservedPercentage:       strconv.Itoa(config.DefaultReservedPercentage),
	OptionMaxOverSubscriptionRatio: strconv.FormatFloat(config.DefaultMaxOverSubscription, 'f', -1, 64),
	OptionPerfSampleInterval:       strconv.Itoa(int(config.DefaultPerfSampleInterval.Seconds())),
	OptionStatsWorkers:             strconv.Itoa(config.DefaultStatsWorkers),
	OptionRESTRateLimit:            "0",
	OptionAggregate:                "",
	OptionVolumeSize:               config.DefaultVolumeSize,
	OptionNICSlotPrefix:            config.DefaultNICSlotPrefix,
	OptionSVMProjectTag:            config.DefaultSVMProjectTag,
	OptionOutputDir:                config.DefaultOutputDir,
	OptionTraceMethod:              "false",
}

var configRedactList = [...]string{OptionUsername, OptionPassword}

// IsRecognizedOption reports whether name belongs to the backend option schema.
func IsRecognizedOption(name string) bool {
	_, ok := optionDefaults[name]
	return ok
}

// RecognizedOptions returns the sorted option schema.
func RecognizedOptions() []string {
	names := make([]string, 0, len(optionDefaults))
	for name := range optionDefaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BackendGroup is a named set of backend options.
type BackendGroup struct {
	Name    string `hash:"ignore"`
	Options map[string]string
}

// NewBackendGroup returns a group holding a copy of options.
func NewBackendGroup(name string, options map[string]string) *BackendGroup {
	group := &BackendGroup{Name: name, Options: make(map[string]string, len(options))}
	for k, v := range options {
		group.Options[k] = v
	}
	return group
}

// Get returns the value explicitly set for an option.
func (g *BackendGroup) Get(name string) (string, bool) {
	value, ok := g.Options[name]
	return value, ok
}

// Value returns the option's value, falling back to the schema default.
func (g *BackendGroup) Value(name string) string {
	if value, ok := g.Options[name]; ok {
		return value
	}
	return optionDefaults[name]
}

// EffectiveOptions returns every option of the schema and every explicitly set option with its
// effective value. Credentials are redacted.
func (g *BackendGroup) EffectiveOptions() map[string]string {
	options := make(map[string]string, len(optionDefaults)+len(g.Options))
	for name := range optionDefaults {
		options[name] = g.Value(name)
	}
	for name, value := range g.Options {
		options[name] = value
	}
	for _, redacted := range configRedactList {
		if _, ok := options[redacted]; ok {
			options[redacted] = "<REDACTED>"
		}
	}
	return options
}

// Fingerprint hashes the group's options; two groups with equal options share a fingerprint.
func (g *BackendGroup) Fingerprint() (uint64, error) {
	return hashstructure.Hash(g, hashstructure.FormatV2, nil)
}

// String implements fmt.Stringer, redacting credentials.
func (g *BackendGroup) String() string {
	keys := make([]string, 0, len(g.Options))
	for k := range g.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		value := g.Options[k]
		for _, redacted := range configRedactList {
			if k == redacted {
				value = "<REDACTED>"
			}
		}
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, value))
	}
	return fmt.Sprintf("%s{%s}", g.Name, strings.Join(pairs, ", "))
}

// GoString implements fmt.GoStringer so that %#v never prints credentials.
func (g *BackendGroup) GoString() string {
	return g.String()
}

// backendsFile is the on-disk layout of the backend configuration file.
type backendsFile struct {
	Backends map[string]map[string]interface{} `json:"backends"`
}

// LoadBackendGroups reads a YAML or JSON backend configuration file.
func LoadBackendGroups(fs afero.Fs, path string) (map[string]*BackendGroup, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WrapWithConfigError(err, "could not read backend configuration %s", path)
	}

	var file backendsFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapWithConfigError(err, "could not parse backend configuration %s", path)
	}
	if len(file.Backends) == 0 {
		return nil, errors.ConfigError("no backends defined in %s", path)
	}

	groups := make(map[string]*BackendGroup, len(file.Backends))
	for name, options := range file.Backends {
		group := &BackendGroup{Name: name, Options: make(map[string]string, len(options))}
		for k, v := range options {
			if v == nil {
				continue
			}
			group.Options[k] = fmt.Sprint(v)
		}
		groups[name] = group
	}
	return groups, nil
}

// LoadBackendGroup reads the backend configuration file and returns the named group.
func LoadBackendGroup(fs afero.Fs, path, name string) (*BackendGroup, error) {
	groups, err := LoadBackendGroups(fs, path)
	if err != nil {
		return nil, err
	}
	group, ok := groups[name]
	if !ok {
		return nil, errors.ConfigError("backend %s not found in %s", name, path)
	}
	return group, nil
}

// DriverConfig is the typed view of one backend group. It is built once from a group and passed
// explicitly to every component that needs it.
type DriverConfig struct {
	GroupName                string
	BackendName              string
	SVMPrefix                string
	DiscoveryInterval        time.Duration
	ManagementLIF            string
	Port                     int
	Transport                string
	Username                 string
	Password                 string
	SVM                      string
	NamespaceOSType          string
	HostType                 string
	APITracePattern          *regexp.Regexp
	AsyncRESTTimeout         time.Duration
	FilterFunction           string
	GoodnessFunction         string
	ReservedPercentage       int
	MaxOverSubscriptionRatio float64
	PerfSampleInterval       time.Duration
	StatsWorkers             int
	RESTRateLimit            float64
	Aggregate                string
	VolumeSize               string
	VolumeSizeBytes          uint64
	NICSlotPrefix            string
	SVMProjectTag            string
	OutputDir                string
	TraceMethod              bool
}

// NewDriverConfig validates a backend group and returns its typed view.
func NewDriverConfig(ctx context.Context, group *BackendGroup) (*DriverConfig, error) {
	if group == nil {
		return nil, errors.ConfigError("missing backend group")
	}

	for name := range group.Options {
		if !IsRecognizedOption(name) {
			Logc(ctx).WithFields(LogFields{
				"group":  group.Name,
				"option": name,
			}).Debug("Ignoring unrecognized backend option.")
		}
	}

	var err error
	c := &DriverConfig{
		GroupName:        group.Name,
		BackendName:      group.Value(OptionBackendName),
		SVMPrefix:        group.Value(OptionSVMPrefix),
		ManagementLIF:    strings.TrimSpace(group.Value(OptionConnectionHost)),
		Transport:        strings.ToLower(group.Value(OptionConnectionTransport)),
		Username:         group.Value(OptionUsername),
		Password:         group.Value(OptionPassword),
		SVM:              group.Value(OptionVServer),
		NamespaceOSType:  group.Value(OptionNamespaceOSType),
		HostType:         group.Value(OptionHostType),
		FilterFunction:   group.Value(OptionFilterFunction),
		GoodnessFunction: group.Value(OptionGoodnessFunction),
		Aggregate:        group.Value(OptionAggregate),
		VolumeSize:       group.Value(OptionVolumeSize),
		NICSlotPrefix:    group.Value(OptionNICSlotPrefix),
		SVMProjectTag:    group.Value(OptionSVMProjectTag),
		OutputDir:        group.Value(OptionOutputDir),
	}
	if c.BackendName == "" {
		c.BackendName = group.Name
	}

	if c.SVMPrefix == "" {
		return nil, errors.ConfigError("%s must not be empty", OptionSVMPrefix)
	}
	if strings.Contains(c.SVMPrefix, config.PoolSeparator) ||
		strings.Contains(c.SVMPrefix, config.HostPoolSeparator) {
		return nil, errors.ConfigError("%s must not contain %q or %q", OptionSVMPrefix,
			config.PoolSeparator, config.HostPoolSeparator)
	}
	if c.ManagementLIF == "" {
		return nil, errors.ConfigError("%s is required", OptionConnectionHost)
	}
	if net.ParseIP(c.ManagementLIF) == nil && !strfmt.IsHostname(c.ManagementLIF) {
		return nil, errors.ConfigError("%s %q is not a valid hostname or IP address", OptionConnectionHost,
			c.ManagementLIF)
	}
	if c.Username == "" || c.Password == "" {
		return nil, errors.ConfigError("%s and %s are required", OptionUsername, OptionPassword)
	}
	if c.Transport != "https" && c.Transport != "http" {
		return nil, errors.ConfigError("%s must be https or http, not %q", OptionConnectionTransport, c.Transport)
	}

	if c.Port, err = parseInt(group, OptionConnectionPort); err != nil {
		return nil, err
	}
	if c.Port <= 0 || c.Port > 65535 {
		return nil, errors.ConfigError("%s %d is out of range", OptionConnectionPort, c.Port)
	}
	if c.DiscoveryInterval, err = parseSeconds(group, OptionSVMDiscoveryInterval); err != nil {
		return nil, err
	}
	if c.AsyncRESTTimeout, err = parseSeconds(group, OptionAsyncRESTTimeout); err != nil {
		return nil, err
	}
	if c.AsyncRESTTimeout <= 0 {
		return nil, errors.ConfigError("%s must be positive", OptionAsyncRESTTimeout)
	}
	if c.PerfSampleInterval, err = parseSeconds(group, OptionPerfSampleInterval); err != nil {
		return nil, err
	}
	if c.ReservedPercentage, err = parseInt(group, OptionReservedPercentage); err != nil {
		return nil, err
	}
	if c.ReservedPercentage < 0 || c.ReservedPercentage > 100 {
		return nil, errors.ConfigError("%s must be between 0 and 100", OptionReservedPercentage)
	}
	if c.StatsWorkers, err = parseInt(group, OptionStatsWorkers); err != nil {
		return nil, err
	}
	if c.StatsWorkers < 1 {
		c.StatsWorkers = 1
	}
	if c.MaxOverSubscriptionRatio, err = parseFloat(group, OptionMaxOverSubscriptionRatio); err != nil {
		return nil, err
	}
	if c.RESTRateLimit, err = parseFloat(group, OptionRESTRateLimit); err != nil {
		return nil, err
	}
	if c.TraceMethod, err = strconv.ParseBool(group.Value(OptionTraceMethod)); err != nil {
		return nil, errors.WrapWithConfigError(err, "invalid value for %s", OptionTraceMethod)
	}
	if c.APITracePattern, err = regexp.Compile(group.Value(OptionAPITracePattern)); err != nil {
		return nil, errors.WrapWithConfigError(err, "invalid value for %s", OptionAPITracePattern)
	}
	if c.VolumeSizeBytes, err = capacity.ParseSize(c.VolumeSize); err != nil {
		return nil, errors.WrapWithConfigError(err, "invalid value for %s", OptionVolumeSize)
	}

	Logc(ctx).WithFields(LogFields{
		"group":   group.Name,
		"backend": c.BackendName,
		"svm":     c.SVM,
	}).Debug("Parsed backend configuration.")

	return c, nil
}

// ManagementURL returns the base URL of the cluster REST endpoint.
func (c *DriverConfig) ManagementURL() string {
	return fmt.Sprintf("%s://%s", c.Transport, net.JoinHostPort(c.ManagementLIF, strconv.Itoa(c.Port)))
}

// String implements fmt.Stringer, redacting credentials.
func (c DriverConfig) String() string {
	c.Username = "<REDACTED>"
	c.Password = "<REDACTED>"
	type plain DriverConfig
	return fmt.Sprintf("%+v", plain(c))
}

// GoString implements fmt.GoStringer so that %#v never prints credentials.
func (c DriverConfig) GoString() string {
	return c.String()
}

func parseInt(group *BackendGroup, name string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(group.Value(name)))
	if err != nil {
		return 0, errors.WrapWithConfigError(err, "invalid value for %s", name)
	}
	return value, nil
}

func parseFloat(group *BackendGroup, name string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(group.Value(name)), 64)
	if err != nil {
		return 0, errors.WrapWithConfigError(err, "invalid value for %s", name)
	}
	return value, nil
}

// parseSeconds reads an integer number of seconds.
func parseSeconds(group *BackendGroup, name string) (time.Duration, error) {
	seconds, err := parseInt(group, name)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}
