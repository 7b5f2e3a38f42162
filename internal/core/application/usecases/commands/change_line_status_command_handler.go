package commands

import (
	"context"
	"errors"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/errs"

	"go.uber.org/zap"
)

// ChangeLineStatusCommandHandler applies one policy-checked status change. The row
// is read with a lock and written conditionally on the status that was read, both
// inside one transaction, so no lost update is possible.
type ChangeLineStatusCommandHandler struct {
	uowFactory LineUoWFactory
	recorder   AuditRecorder
	logger     *zap.Logger
}

// NewChangeLineStatusCommandHandler wires the handler.
func NewChangeLineStatusCommandHandler(
	uowFactory LineUoWFactory,
	recorder AuditRecorder,
	logger *zap.Logger,
) ChangeLineStatusCommandHandler {
	return ChangeLineStatusCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger,
	}
}

// Handle returns the updated line. It fails with:
//   - *errs.ObjectNotFoundError when the line does not exist
//   - *errs.TransitionIsNotAllowedError when the policy rejects the move, naming
//     both statuses and the line id
//
// An update_line_status entry is recorded only after a successful commit.
func (h *ChangeLineStatusCommandHandler) Handle(ctx context.Context, cmd ChangeLineStatusCommand) (*line.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, oldState, err := applyStatusChange(ctx, h.uowFactory, cmd.LineID(), func(l *line.Line) error {
		return l.ChangeStatus(cmd.Target())
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, h.logger, h.recorder, cmd.Actor(),
		audit.ActionUpdateLineStatus, line.ResourceType, l.ID().String(), oldState, l.Snapshot())

	return l, nil
}

// applyStatusChange locks the line, lets mutate move it and persists the result
// conditionally on the status it was read with. It returns the updated line and
// its snapshot from before the change.
func applyStatusChange(
	ctx context.Context,
	uowFactory LineUoWFactory,
	lineID kernel.UUID,
	mutate func(l *line.Line) error,
) (*line.Line, map[string]any, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LineRepository()
	l, err := repo.GetForUpdate(ctx, lineID)
	if err != nil {
		return nil, nil, err
	}

	oldState := l.Snapshot()
	from := l.Status()
	if err = mutate(l); err != nil {
		return nil, nil, err
	}

	if err = repo.UpdateStatus(ctx, l, from); err != nil {
		if errors.Is(err, errs.ErrObjectIsStale) {
			return nil, nil, errs.NewTransitionIsNotAllowedErrorWithCause(
				line.ResourceType, l.ID().String(), from.String(), l.Status().String(), err,
			)
		}
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return l, oldState, nil
}
