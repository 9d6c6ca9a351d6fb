// Copyright 2021 NetApp, Inc. All Rights Reserved.

package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/locks"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/utils/errors"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////
// REST layer
////////////////////////////////////////////////////////////////////////////////////////////////////////

// ToStringPointer returns a pointer to the supplied string
func ToStringPointer(s string) *string {
	return &s
}

// ToBoolPointer returns a pointer to the supplied bool
func ToBoolPointer(b bool) *bool {
	return &b
}

// ClientConfig holds the connection settings of a RestClient.
type ClientConfig struct {
	ManagementLIF        string
	Port                 int
	Transport            string
	SVM                  string
	Username             string
	Password             string
	TrustedCACertificate string
	APITracePattern      *regexp.Regexp
	RequestTimeout       time.Duration
	RateLimit            float64
}

// RestClient is the object to use for interacting with ONTAP controllers via the REST API. A client
// built without an SVM is cluster scoped; with an SVM every SVM-scoped call is pinned to it.
type RestClient struct {
	config     ClientConfig
	baseURL    string
	httpClient *http.Client
	urlLocks   *locks.GCNamedMutex
	limiter    *rate.Limiter

	retryAttempts          int
	retryInitialInterval   time.Duration
	jobPollInitialInterval time.Duration
}

// NewRestClient is a factory method for creating a new instance
func NewRestClient(ctx context.Context, clientConfig ClientConfig) (*RestClient, error) {
	if clientConfig.ManagementLIF == "" {
		return nil, errors.ConfigError("missing management LIF")
	}
	if clientConfig.Transport == "" {
		clientConfig.Transport = config.DefaultRESTTransport
	}
	if clientConfig.Port == 0 {
		clientConfig.Port = config.DefaultRESTPort
	}
	if clientConfig.RequestTimeout <= 0 {
		clientConfig.RequestTimeout = config.DefaultAsyncRESTTimeout
	}

	caCertPool := x509.NewCertPool()
	skipVerify := true
	if clientConfig.TrustedCACertificate != "" {
		trustedCACert, err := base64.StdEncoding.DecodeString(clientConfig.TrustedCACertificate)
		if err != nil {
			Logc(ctx).Debugf("error: %v", err)
			return nil, errors.ConfigError("failed to decode trusted CA certificate from base64")
		}
		skipVerify = false
		caCertPool.AppendCertsFromPEM(trustedCACert)
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: skipVerify,
			MinVersion:         tls.VersionTLS12,
			RootCAs:            caCertPool,
		},
	}

	host := net.JoinHostPort(clientConfig.ManagementLIF, strconv.Itoa(clientConfig.Port))
	result := &RestClient{
		config:  clientConfig,
		baseURL: fmt.Sprintf("%s://%s", clientConfig.Transport, host),
		httpClient: &http.Client{
			Transport: NewMetricsTransport(tr,
				WithMetricsTransportTarget(ContextRequestTargetCluster),
				WithTracePattern(clientConfig.APITracePattern)),
			Timeout: config.HTTPClientTimeout,
		},
		urlLocks:               locks.NewGCNamedMutex(),
		retryAttempts:          config.RESTRetryAttempts,
		retryInitialInterval:   config.RESTRetryInitialInterval,
		jobPollInitialInterval: config.RESTJobPollInitialInterval,
	}
	if clientConfig.RateLimit > 0 {
		result.limiter = rate.NewLimiter(rate.Limit(clientConfig.RateLimit), 1)
	}

	return result, nil
}

// NewRestClientFromDriverConfig is a factory method for creating a REST client from a backend
// configuration. The client is scoped to the configuration's SVM, if it names one.
func NewRestClientFromDriverConfig(ctx context.Context, driverConfig *drivers.DriverConfig) (*RestClient, error) {
	return NewRestClient(ctx, ClientConfig{
		ManagementLIF:   driverConfig.ManagementLIF,
		Port:            driverConfig.Port,
		Transport:       driverConfig.Transport,
		SVM:             driverConfig.SVM,
		Username:        driverConfig.Username,
		Password:        driverConfig.Password,
		APITracePattern: driverConfig.APITracePattern,
		RequestTimeout:  driverConfig.AsyncRESTTimeout,
		RateLimit:       driverConfig.RESTRateLimit,
	})
}

// SVMName returns the SVM this client is pinned to, or "" for a cluster-scoped client.
func (c *RestClient) SVMName() string {
	return c.config.SVM
}

func (c *RestClient) requireSVM() (string, error) {
	if c.config.SVM == "" {
		return "", errors.ConfigError("operation requires an SVM-scoped client")
	}
	return c.config.SVM, nil
}

func (c *RestClient) requestURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", errors.InvalidInputError("invalid request path %s: %v", path, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, values := range query {
			for _, v := range values {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// transientError marks a failure worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

// do sends one request, retrying transient failures with exponential backoff. Requests to the same
// URL are serialized. The response body is returned with the status code.
func (c *RestClient) do(
	ctx context.Context, method, path string, query url.Values, body interface{},
) (int, []byte, error) {
	requestURL, err := c.requestURL(path, query)
	if err != nil {
		return 0, nil, err
	}

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return 0, nil, errors.InvalidInputError("could not encode request body: %v", err)
		}
	}

	locked := c.urlLocks.LockWithGuard(requestURL)
	defer locked.Unlock()

	var status int
	var respBody []byte

	attempt := func() error {
		var attemptErr error
		status, respBody, attemptErr = c.send(ctx, method, requestURL, payload)
		return attemptErr
	}
	notify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"method":    method,
			"path":      path,
			"increment": duration,
		}).WithError(err).Debug("Cluster request failed, retrying.")
	}

	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = c.retryInitialInterval
	retryBackoff.Multiplier = 2
	retryBackoff.RandomizationFactor = 0.1
	retryBackoff.MaxElapsedTime = c.config.RequestTimeout

	maxRetries := uint64(0)
	if c.retryAttempts > 1 {
		maxRetries = uint64(c.retryAttempts - 1)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(retryBackoff, maxRetries), ctx)
	err = backoff.RetryNotify(attempt, policy, notify)
	if err != nil {
		var transient *transientError
		if errors.As(err, &transient) {
			return status, respBody, errors.WrapWithClusterUnavailableError(transient.err, "%s %s", method, path)
		}
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return status, respBody, errors.WrapWithClusterUnavailableError(err, "%s %s", method, path)
		}
		return status, respBody, err
	}
	return status, respBody, nil
}

// send performs a single HTTP exchange. Transport failures, 429 and 5xx are transient; any other
// 4xx is permanent.
func (c *RestClient) send(ctx context.Context, method, requestURL string, payload []byte) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, backoff.Permanent(err)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, requestURL, bodyReader)
	if err != nil {
		return 0, nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.Username != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, backoff.Permanent(ctx.Err())
		}
		return 0, nil, &transientError{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &transientError{err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return resp.StatusCode, respBody, &transientError{err: newRequestError(resp.StatusCode, respBody)}
	case resp.StatusCode >= http.StatusBadRequest:
		return resp.StatusCode, respBody, backoff.Permanent(newRequestError(resp.StatusCode, respBody))
	}
	return resp.StatusCode, respBody, nil
}

func newRequestError(status int, body []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == nil {
		return errors.ClusterRequestError(status, "", "", strings.TrimSpace(string(body)))
	}
	return errors.ClusterRequestError(status, payload.Error.Code, payload.Error.Target, payload.Error.Message)
}

func decode(body []byte, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("could not decode cluster response: %v", err)
	}
	return nil
}

func (c *RestClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	_, body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// modify issues a POST, PATCH or DELETE and waits for any job it starts. When the cluster returns
// records (return_records=true), they are decoded into out.
func (c *RestClient) modify(
	ctx context.Context, method, path string, query url.Values, body, out interface{},
) error {
	status, respBody, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	var jobLink jobLinkResponse
	if status == http.StatusAccepted || len(respBody) > 0 {
		if err = decode(respBody, &jobLink); err != nil && status == http.StatusAccepted {
			return err
		}
	}
	if jobLink.Job != nil && jobLink.Job.UUID != "" {
		if err = c.PollJobStatus(ctx, jobLink.Job.UUID); err != nil {
			return err
		}
	}
	return decode(respBody, out)
}

// getAll follows _links.next until the collection is exhausted.
func getAll[T any](ctx context.Context, c *RestClient, path string, query url.Values) ([]T, error) {
	var records []T
	seen := make(map[string]bool)

	for next := path; next != ""; {
		if seen[next] {
			return nil, fmt.Errorf("pagination loop detected at %s", next)
		}
		seen[next] = true

		var page collection[T]
		if err := c.get(ctx, next, query, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		next, query = "", nil
		if HasNextLink(page.Links) {
			next = page.Links.Next.Href
		}
	}
	return records, nil
}

// HasNextLink reports whether a collection response links to a further page.
func HasNextLink(links *Links) bool {
	return links != nil && links.Next != nil && links.Next.Href != ""
}

// getOne returns the single record matching query, nil if there is none.
func getOne[T any](ctx context.Context, c *RestClient, path string, query url.Values) (*T, error) {
	records, err := getAll[T](ctx, c, path, query)
	if err != nil {
		return nil, err
	}
	switch len(records) {
	case 0:
		return nil, nil
	case 1:
		return &records[0], nil
	default:
		return nil, fmt.Errorf("expected one record from %s, found %d", path, len(records))
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// Jobs
////////////////////////////////////////////////////////////////////////////////////////////////////////

// JobGet returns the job with the specified UUID.
func (c *RestClient) JobGet(ctx context.Context, jobUUID string) (*Job, error) {
	var job Job
	if err := c.get(ctx, "/api/cluster/jobs/"+url.PathEscape(jobUUID), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// PollJobStatus waits for an asynchronous job to finish, bounded by the request timeout.
func (c *RestClient) PollJobStatus(ctx context.Context, jobUUID string) error {
	var job *Job

	checkJobStatus := func() error {
		var err error
		if job, err = c.JobGet(ctx, jobUUID); err != nil {
			return backoff.Permanent(err)
		}
		switch job.State {
		case JobStateSuccess, JobStateFailure:
			return nil
		default:
			return fmt.Errorf("job %v not yet done", jobUUID)
		}
	}
	jobStatusNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithField("increment", duration).Debug("Job not yet done, waiting.")
	}
	jobStatusBackoff := backoff.NewExponentialBackOff()
	jobStatusBackoff.InitialInterval = c.jobPollInitialInterval
	jobStatusBackoff.Multiplier = 2
	jobStatusBackoff.RandomizationFactor = 0.1
	jobStatusBackoff.MaxElapsedTime = c.config.RequestTimeout

	// Run the job status check using an exponential backoff
	policy := backoff.WithContext(jobStatusBackoff, ctx)
	if err := backoff.RetryNotify(checkJobStatus, policy, jobStatusNotify); err != nil {
		if errors.IsClusterUnavailableError(err) || errors.IsClusterRequestError(err) {
			return err
		}
		Logc(ctx).WithField("UUID", jobUUID).Warnf("Job not completed after %3.2f seconds.",
			jobStatusBackoff.MaxElapsedTime.Seconds())
		return errors.WrapWithClusterUnavailableError(err, "job %s did not complete", jobUUID)
	}

	Logc(ctx).WithFields(LogFields{
		"uuid":        job.UUID,
		"description": job.Description,
		"state":       job.State,
		"message":     job.Message,
		"code":        job.Code,
		"start_time":  job.StartTime,
		"end_time":    job.EndTime,
	}).Debug("Job completed.")

	if job.State == JobStateFailure {
		return errors.ClusterRequestError(http.StatusAccepted, strconv.Itoa(job.Code), job.Description, job.Message)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////////////////////////////
// Cluster
////////////////////////////////////////////////////////////////////////////////////////////////////////

// ClusterInfo returns the cluster name and version.
func (c *RestClient) ClusterInfo(ctx context.Context) (*Cluster, error) {
	var cluster Cluster
	query := url.Values{"fields": []string{"name,uuid,version"}}
	if err := c.get(ctx, "/api/cluster", query, &cluster); err != nil {
		return nil, err
	}
	return &cluster, nil
}
