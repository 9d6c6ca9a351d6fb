// Copyright 2022 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"math"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
)

// perfSample is the last known performance of one pool.
type perfSample struct {
	utilization float64
	latency     float64
	iops        float64
}

// sampleFromVolume derives a sample from the space and metric fields of a FlexVol.
func sampleFromVolume(volume api.Volume) perfSample {
	var sample perfSample
	if volume.Space != nil && volume.Space.Size > 0 {
		used := float64(volume.Space.Used) / float64(volume.Space.Size) * 100
		sample.utilization = math.Round(used*100) / 100
	}
	if volume.Metric != nil {
		if volume.Metric.Latency != nil {
			sample.latency = volume.Metric.Latency.Total
		}
		if volume.Metric.IOPS != nil {
			sample.iops = volume.Metric.IOPS.Total
		}
	}
	return sample
}

// perfSampler periodically refreshes a client's per-pool performance cache.
type perfSampler struct {
	client   *NVMeSVMClient
	clock    clock.Clock
	interval time.Duration

	stopOnce sync.Once
	done     chan struct{}
	stopped  chan struct{}
}

func newPerfSampler(client *NVMeSVMClient, clk clock.Clock, interval time.Duration) *perfSampler {
	return &perfSampler{
		client:   client,
		clock:    clk,
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the sampling goroutine.
func (s *perfSampler) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	ticker := s.clock.NewTicker(s.interval)

	go func() {
		defer close(s.stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				s.sample(ctx)
			case <-s.done:
				Logc(ctx).WithField("svm", s.client.VServer()).Debug("Performance sampler stopped.")
				return
			}
		}
	}()
}

// Stop halts the sampling goroutine and waits for it to exit.
func (s *perfSampler) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.stopped
}

func (s *perfSampler) sample(ctx context.Context) {
	volumes, err := s.client.API.FlexvolList(ctx)
	if err != nil {
		Logc(ctx).WithError(err).WithField("svm", s.client.VServer()).Warning("Could not sample pool performance.")
		return
	}

	samples := make(map[string]perfSample, len(volumes))
	for _, volume := range volumes {
		samples[volume.Name] = sampleFromVolume(volume)
	}

	s.client.perfMutex.Lock()
	s.client.perf = samples
	s.client.perfMutex.Unlock()

	Logc(ctx).WithFields(LogFields{
		"svm":   s.client.VServer(),
		"pools": len(samples),
	}).Trace("Sampled pool performance.")
}
