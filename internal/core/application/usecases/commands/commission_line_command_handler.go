package commands

import (
	"context"
	"errors"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/core/ports"
	"telecom/internal/pkg/errs"

	"go.uber.org/zap"
)

// CommissionLineCommandHandler activates a line in three phases:
//
//  1. precheck: read the line and reject anything that is not PROVISIONED
//  2. provisioning: call the provisioner with no transaction open and no lock held
//  3. commit: in a new transaction, re-read under lock, re-validate and write
//     ACTIVE only where the status is still PROVISIONED
//
// Of several concurrent commissions of one line exactly one passes phase 3; the
// others fail with a TransitionIsNotAllowedError and write nothing.
type CommissionLineCommandHandler struct {
	uowFactory  LineUoWFactory
	provisioner ports.Provisioner
	idempotency ports.IdempotencyStore
	recorder    AuditRecorder
	logger      *zap.Logger
}

// NewCommissionLineCommandHandler wires the handler. idempotency may be nil, in
// which case idempotency keys are ignored.
func NewCommissionLineCommandHandler(
	uowFactory LineUoWFactory,
	provisioner ports.Provisioner,
	idempotency ports.IdempotencyStore,
	recorder AuditRecorder,
	logger *zap.Logger,
) CommissionLineCommandHandler {
	return CommissionLineCommandHandler{
		uowFactory:  uowFactory,
		provisioner: provisioner,
		idempotency: idempotency,
		recorder:    recorder,
		logger:      logger,
	}
}

// Handle commissions the line, deduplicating on the command's idempotency key when
// one is set and a store is configured:
//   - a key whose commission completed replays the stored line without a second
//     provisioning call or audit entry
//   - a key whose commission is still running fails with *errs.OperationInProgressError
//   - a key whose commission failed is released so the client can retry
//
// Cancelling ctx during provisioning aborts before phase 3 and leaves the line
// PROVISIONED.
func (h *CommissionLineCommandHandler) Handle(ctx context.Context, cmd CommissionLineCommand) (*line.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.IdempotencyKey() == "" || h.idempotency == nil {
		return h.commission(ctx, cmd)
	}

	// Keys are scoped to the line so one key can never replay another line.
	key := cmd.LineID().String() + ":" + cmd.IdempotencyKey()

	lineID, completed, err := h.idempotency.Reserve(ctx, key)
	if err != nil {
		return nil, err
	}
	if completed {
		h.logger.Info("replaying completed commission",
			zap.String("line_id", lineID.String()),
			zap.String("idempotency_key", cmd.IdempotencyKey()),
		)
		return h.uowFactory.Create().LineRepository().Get(ctx, lineID)
	}

	l, err := h.commission(ctx, cmd)
	if err != nil {
		h.idempotency.Release(context.WithoutCancel(ctx), key)
		return nil, err
	}

	if err = h.idempotency.Complete(context.WithoutCancel(ctx), key, l.ID()); err != nil {
		h.logger.Warn("failed to complete idempotency key",
			zap.String("line_id", l.ID().String()),
			zap.Error(err),
		)
	}

	return l, nil
}

func (h *CommissionLineCommandHandler) commission(ctx context.Context, cmd CommissionLineCommand) (*line.Line, error) {
	// Phase 1.
	current, err := h.uowFactory.Create().LineRepository().Get(ctx, cmd.LineID())
	if err != nil {
		return nil, err
	}
	if err = current.CheckCommissionable(); err != nil {
		return nil, err
	}
	oldState := current.Snapshot()

	// Phase 2.
	if err = h.provisioner.Provision(ctx, current); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 3.
	l, err := h.activate(ctx, cmd)
	if err != nil {
		return nil, err
	}

	h.logger.Info("line commissioned", zap.String("line_id", l.ID().String()))

	recordAudit(ctx, h.logger, h.recorder, cmd.Actor(),
		audit.ActionCommissionLine, line.ResourceType, l.ID().String(), oldState, l.Snapshot())

	return l, nil
}

func (h *CommissionLineCommandHandler) activate(ctx context.Context, cmd CommissionLineCommand) (*line.Line, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LineRepository()
	l, err := repo.GetForUpdate(ctx, cmd.LineID())
	if err != nil {
		return nil, err
	}

	if err = l.Commission(); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, l, line.Provisioned); err != nil {
		if errors.Is(err, errs.ErrObjectIsStale) {
			return nil, errs.NewTransitionIsNotAllowedErrorWithCause(
				line.ResourceType, l.ID().String(), line.Provisioned.String(), line.Active.String(), err,
			)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
