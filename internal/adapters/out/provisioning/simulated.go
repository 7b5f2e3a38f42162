// Package provisioning talks to the network provisioning system. Only a simulated
// backend exists: it waits for a configurable delay.
package provisioning

import (
	"context"
	"time"

	"telecom/internal/core/domain/model/line"

	"go.uber.org/zap"
)

const DefaultDelay = 2 * time.Second

// SimulatedProvisioner stands in for the external provisioning call. It returns
// early with ctx.Err() if the context ends first.
type SimulatedProvisioner struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedProvisioner uses DefaultDelay for a negative delay. A zero delay
// returns immediately.
func NewSimulatedProvisioner(delay time.Duration, logger *zap.Logger) *SimulatedProvisioner {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &SimulatedProvisioner{
		delay:  delay,
		logger: logger.With(zap.String("component", "provisioner")),
	}
}

func (p *SimulatedProvisioner) Provision(ctx context.Context, l *line.Line) error {
	p.logger.Debug("provisioning line",
		zap.String("line_id", l.ID().String()),
		zap.String("msisdn", l.MSISDN()),
		zap.Duration("delay", p.delay),
	)

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		p.logger.Info("provisioning aborted",
			zap.String("line_id", l.ID().String()),
			zap.Error(ctx.Err()),
		)
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
