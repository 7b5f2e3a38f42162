package commands

import (
	"context"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/line"

	"go.uber.org/zap"
)

// DeleteLineCommandHandler moves a line to DELETED through the transition policy
// and records a delete_line entry.
//
// Example:
//
//	handler := NewDeleteLineCommandHandler(uowFactory, recorder, logger)
//	l, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrTransitionIsNotAllowed) {
//	    // already DELETED
//	}
type DeleteLineCommandHandler struct {
	uowFactory LineUoWFactory
	recorder   AuditRecorder
	logger     *zap.Logger
}

// NewDeleteLineCommandHandler wires the handler.
func NewDeleteLineCommandHandler(
	uowFactory LineUoWFactory,
	recorder AuditRecorder,
	logger *zap.Logger,
) DeleteLineCommandHandler {
	return DeleteLineCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger,
	}
}

// Handle goes through the same policy gate as any other status change, so deleting
// an already deleted line is rejected.
func (h *DeleteLineCommandHandler) Handle(ctx context.Context, cmd DeleteLineCommand) (*line.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, oldState, err := applyStatusChange(ctx, h.uowFactory, cmd.LineID(), (*line.Line).Delete)
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, h.logger, h.recorder, cmd.Actor(),
		audit.ActionDeleteLine, line.ResourceType, l.ID().String(), oldState, l.Snapshot())

	return l, nil
}
