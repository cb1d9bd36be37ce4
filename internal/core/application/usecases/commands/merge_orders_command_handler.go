package commands

import (
	"context"
	"log/slog"

	"comanda/internal/pkg/errs"
)

// MergeOrdersCommandHandler handles folding a source order into a target
// order. Lines are moved, not copied: their ids survive under the target,
// which recomputes its totals from the combined line set. The source's
// table links are dropped and its exclusively-held tables freed, then the
// source row is deleted outright.
//
// No inventory movement happens during a merge: the stock consumed by the
// source's lines was charged when those lines were created, and the lines
// live on under the target. After the transaction commits, a structured
// audit entry records which order absorbed which, so the deleted source id
// remains traceable in the log stream.
type MergeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewMergeOrdersCommandHandler creates a handler for order merges.
func NewMergeOrdersCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) MergeOrdersCommandHandler {
	return MergeOrdersCommandHandler{uowFactory: uowFactory, logger: logger}
}

// Handle processes the merge command.
func (h *MergeOrdersCommandHandler) Handle(ctx context.Context, cmd MergeOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	source, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.SourceOrderID())
	if err != nil {
		return err
	}
	if !source.Status().IsActive() {
		return errs.NewInvalidStateError("merge source order", source.Status().String())
	}

	target, err := orderRepo.Get(ctx, cmd.TenantID(), cmd.TargetOrderID())
	if err != nil {
		return err
	}
	if !target.Status().IsActive() {
		return errs.NewInvalidStateError("merge into target order", target.Status().String())
	}

	if err = orderRepo.ReassignLines(ctx, cmd.TenantID(), cmd.SourceOrderID(), cmd.TargetOrderID()); err != nil {
		return err
	}

	combined := append(target.Lines(), source.Lines()...)
	if err = target.SetLines(combined); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	// Resolved before the source's links go away.
	releasable, err := orderRepo.TablesExclusiveTo(ctx, cmd.TenantID(), cmd.SourceOrderID())
	if err != nil {
		return err
	}
	if err = orderRepo.DeleteTableLinks(ctx, cmd.TenantID(), cmd.SourceOrderID()); err != nil {
		return err
	}
	if len(releasable) > 0 {
		if err = uow.TableRepository().Free(ctx, cmd.TenantID(), releasable); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, cmd.TenantID(), cmd.SourceOrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "orders merged",
		slog.String("tenant_id", cmd.TenantID().String()),
		slog.String("source_order_id", cmd.SourceOrderID().String()),
		slog.String("target_order_id", cmd.TargetOrderID().String()),
		slog.String("actor_id", cmd.ActorID().String()),
		slog.Int("moved_lines", len(source.Lines())),
		slog.Float64("target_total", target.Total()),
	)

	return nil
}
