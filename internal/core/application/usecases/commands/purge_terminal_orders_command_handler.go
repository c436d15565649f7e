package commands

import (
	"context"
)

// PurgeTerminalOrdersCommandHandler runs the retention sweep.
type PurgeTerminalOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeTerminalOrdersCommandHandler creates a handler for the retention
// sweep.
func NewPurgeTerminalOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeTerminalOrdersCommandHandler {
	return PurgeTerminalOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle removes expired terminal orders. Returns the number removed.
func (h *PurgeTerminalOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeTerminalOrdersCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().DeleteTerminalBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
