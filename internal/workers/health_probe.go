package workers

import (
	"context"
	"time"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
)

const (
	defaultProbeInterval = 30 * time.Second
	defaultProbeTimeout  = 5 * time.Second
)

// HealthProbe pings the storage backend on a fixed interval and forwards the
// result to its reporters. Only status transitions are logged.
type HealthProbe struct {
	probe     BackendProbe
	reporters []StatusReporter
	interval  time.Duration
	timeout   time.Duration

	logger *logger.Logger
}

func NewHealthProbe(probe BackendProbe, interval time.Duration, logger *logger.Logger, reporters ...StatusReporter) *HealthProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	logger.Debug().Dur("interval", interval).Msg("creating health probe worker")
	return &HealthProbe{
		probe:     probe,
		reporters: reporters,
		interval:  interval,
		timeout:   min(interval, defaultProbeTimeout),
		logger:    logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
func (p *HealthProbe) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	serving := p.check(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			serving = p.check(ctx, &serving)
		}
	}
}

// check runs a single probe. previous is nil before the first probe.
func (p *HealthProbe) check(ctx context.Context, previous *bool) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.probe.Ping(probeCtx)
	serving := err == nil

	for _, r := range p.reporters {
		r.SetServing(serving)
	}

	if previous == nil || *previous != serving {
		if serving {
			p.logger.Info().Str("func", "*HealthProbe.check").Msg("storage backend is reachable")
		} else if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*HealthProbe.check").Msg("storage backend is unreachable")
		}
	}

	return serving
}
