package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// driftedDelivery is one ledger record whose order finished without the
// record being resolved.
type driftedDelivery struct {
	DeliveryID  uuid.UUID
	OrderID     string
	RiderID     uuid.UUID
	AssignTime  time.Time
	OrderStatus int
}

// DeliveryReconciliationJob periodically scans for unresolved delivery records
// whose order already reached a terminal status and logs them.
type DeliveryReconciliationJob struct {
	db     *gorm.DB
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDeliveryReconciliationJob creates the reconciliation job with the given
// cron spec (with seconds field, e.g. "0 */5 * * * *").
func NewDeliveryReconciliationJob(db *gorm.DB, spec string, logger *slog.Logger) *DeliveryReconciliationJob {
	return &DeliveryReconciliationJob{
		db:     db,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "delivery_reconciliation_job"),
	}
}

// Start schedules the reconciliation scan.
func (j *DeliveryReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery reconciliation scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reconciliation job started", "spec", j.spec)
	return nil
}

// Stop stops the reconciliation job.
func (j *DeliveryReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reconciliation job stopped")
}

func (j *DeliveryReconciliationJob) scan(ctx context.Context) error {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT d.id, d.order_id, d.rider_id, d.assign_time, o.status
		FROM deliveries d
		JOIN orders o ON o.invoice_number = d.order_id
		WHERE d.resolved = false AND o.status IN (?, ?)
		ORDER BY d.assign_time`,
		int(order.Delivered), int(order.Cancelled),
	).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var drifted driftedDelivery
		if err := rows.Scan(
			&drifted.DeliveryID,
			&drifted.OrderID,
			&drifted.RiderID,
			&drifted.AssignTime,
			&drifted.OrderStatus,
		); err != nil {
			return err
		}

		j.logger.WarnContext(ctx, "Unresolved delivery for finished order",
			"deliveryID", drifted.DeliveryID.String(),
			"orderID", drifted.OrderID,
			"riderID", drifted.RiderID.String(),
			"assignTime", drifted.AssignTime,
			"orderStatus", order.Status(drifted.OrderStatus).String(),
		)
	}

	return rows.Err()
}
