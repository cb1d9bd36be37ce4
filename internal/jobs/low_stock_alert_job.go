package jobs

import (
	"context"
	"log/slog"

	"comanda/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically scans every tenant's inventory and logs a
// warning for each ingredient at or below its minimum threshold. Alerts are
// advisory: the job never mutates stock and never blocks order taking.
type LowStockAlertJob struct {
	tenantsHandler  queries.ListTenantsQueryHandler
	lowStockHandler queries.GetLowStockIngredientsQueryHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewLowStockAlertJob creates a new low-stock scan job.
func NewLowStockAlertJob(
	tenantsHandler queries.ListTenantsQueryHandler,
	lowStockHandler queries.GetLowStockIngredientsQueryHandler,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		tenantsHandler:  tenantsHandler,
		lowStockHandler: lowStockHandler,
		cron:            cron.New(),
		logger:          logger.With("component", "low_stock_alert_job"),
	}
}

// Start schedules the scan to run every five minutes.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		j.runScan(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "low stock alert job started (running every 5 minutes)")
	return nil
}

// Stop stops the scheduled scan.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "low stock alert job stopped")
}

func (j *LowStockAlertJob) runScan(ctx context.Context) {
	tenants, err := j.tenantsHandler.Handle(ctx, queries.NewListTenantsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "tenant listing failed", "error", err)
		return
	}

	for _, tenant := range tenants {
		query, err := queries.NewGetLowStockIngredientsQuery(tenant.TenantID)
		if err != nil {
			j.logger.ErrorContext(ctx, "low stock query construction failed",
				"tenant_id", tenant.TenantID.String(), "error", err)
			continue
		}

		ingredients, err := j.lowStockHandler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "low stock scan failed",
				"tenant_id", tenant.TenantID.String(), "error", err)
			continue
		}

		for _, ingredient := range ingredients {
			j.logger.WarnContext(ctx, "ingredient stock below minimum",
				slog.String("tenant_id", tenant.TenantID.String()),
				slog.String("ingredient_id", ingredient.ID.String()),
				slog.String("ingredient", ingredient.Name),
				slog.String("level", string(ingredient.Level)),
				slog.Float64("stock_current", ingredient.StockCurrent),
				slog.Float64("stock_min", ingredient.StockMin),
				slog.String("unit", ingredient.Unit),
			)
		}
	}
}
