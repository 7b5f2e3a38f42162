package ports

import (
	"context"

	"telecom/internal/core/domain/model/line"
)

// Provisioner performs the external provisioning step of commissioning. It may
// take a long time and is always called without any transaction or row lock held.
// Implementations must return ctx.Err() promptly when ctx is cancelled.
type Provisioner interface {
	Provision(ctx context.Context, aggregate *line.Line) error
}
