package stock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/metrics"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

type PartStore interface {
	Lookup(ctx context.Context, id string) (model.Part, error)
	Patch(ctx context.Context, id string, fields model.Fields) error
}

type MovementLog interface {
	Insert(ctx context.Context, m model.MovementLog) (string, error)
}

type Publisher interface {
	PublishMovement(ctx context.Context, event model.MovementRecorded) error
}

// service applies stock transactions. Every transaction writes the part
// first and appends the movement log second; the two writes are not
// atomic. A failed log write is returned after the stock has changed.
type service struct {
	parts     PartStore
	movements MovementLog
	publisher Publisher
	now       func() time.Time
}

func NewStockService(parts PartStore, movements MovementLog, publisher Publisher) *service {
	return &service{
		parts:     parts,
		movements: movements,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) StockIn(ctx context.Context, auth model.AuthorizationContext, p model.StockInParams) (model.MovementLog, error) {
	const op = "stock.service.StockIn"
	log := logger.With(logger.String("part_id", p.PartID), logger.Int64("quantity", p.Quantity))

	if !auth.CanAdd(model.ResourceStockIn) {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}
	if p.Quantity <= 0 {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("quantity must be greater than zero"))
	}
	if p.CostPerUnit < 0 {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("cost per unit cannot be negative"))
	}

	part, err := s.parts.Lookup(ctx, p.PartID)
	if err != nil {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	after := part.CurrentStock + p.Quantity
	if err := s.parts.Patch(ctx, part.ID, model.Fields{model.PartFieldCurrentStock: after}); err != nil {
		log.Error(ctx, "update stock", logger.ErrorF(err))
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}

	entry := s.entry(auth, part, model.MovementIn, p.Quantity, p.Remarks)
	entry.Supplier = strings.TrimSpace(p.Supplier)
	entry.DeliveryOrderNumber = strings.TrimSpace(p.DeliveryOrderNumber)
	entry.DateOfReceipt = p.DateOfReceipt
	entry.CostPerUnit = p.CostPerUnit
	entry.Currency = currency
	entry.TotalCost = TotalCost(p.Quantity, p.CostPerUnit)

	return s.record(ctx, op, entry, part, after)
}

func (s *service) StockOut(ctx context.Context, auth model.AuthorizationContext, p model.StockOutParams) (model.MovementLog, error) {
	const op = "stock.service.StockOut"
	log := logger.With(logger.String("part_id", p.PartID), logger.Int64("quantity", p.Quantity))

	if !auth.CanAdd(model.ResourceStockOut) {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}
	if p.Quantity <= 0 {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("quantity must be greater than zero"))
	}

	part, err := s.parts.Lookup(ctx, p.PartID)
	if err != nil {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.Quantity > part.CurrentStock {
		log.Warn(ctx, "stock out rejected", logger.Int64("available", part.CurrentStock))
		return model.MovementLog{}, fmt.Errorf("%s: %w: available: %d", op, model.ErrInsufficientStock, part.CurrentStock)
	}

	after := part.CurrentStock - p.Quantity
	if err := s.parts.Patch(ctx, part.ID, model.Fields{model.PartFieldCurrentStock: after}); err != nil {
		log.Error(ctx, "update stock", logger.ErrorF(err))
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	entry := s.entry(auth, part, model.MovementOut, p.Quantity, p.Remarks)
	entry.Receiver = strings.TrimSpace(p.Receiver)
	entry.MRFNumber = strings.TrimSpace(p.MRFNumber)
	entry.DateOfIssue = p.DateOfIssue

	return s.record(ctx, op, entry, part, after)
}

// Transfer moves a part to another rack position. Stock is unchanged and
// the log quantity is zero.
func (s *service) Transfer(ctx context.Context, auth model.AuthorizationContext, p model.TransferParams) (model.MovementLog, error) {
	const op = "stock.service.Transfer"

	if !auth.CanAdd(model.ResourceInternalTransfer) {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}

	rack := strings.TrimSpace(p.NewRackNumber)
	level := listctl.NormalizeCode(p.NewRackLevel)
	if !listctl.IsRackNumber(rack) {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("rack number must be 2 digits, got %q", rack))
	}
	if !listctl.IsRackLevel(level) {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("rack level must be one of A, B, C, D, got %q", level))
	}

	part, err := s.parts.Lookup(ctx, p.PartID)
	if err != nil {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	from := part.Location()
	to := model.FormatLocation(rack, level)
	if from == to {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("part is already at %s", to))
	}

	if err := s.parts.Patch(ctx, part.ID, model.Fields{
		model.PartFieldRackNumber: rack,
		model.PartFieldRackLevel:  level,
	}); err != nil {
		logger.Error(ctx, "update rack", logger.String("part_id", part.ID), logger.ErrorF(err))
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	remarks := strings.TrimSpace(p.Remarks)
	if remarks == "" {
		remarks = fmt.Sprintf("Moved from %s to %s", from, to)
	}

	entry := s.entry(auth, part, model.MovementTransfer, 0, remarks)
	entry.FromLocation = from
	entry.ToLocation = to

	return s.record(ctx, op, entry, part, part.CurrentStock)
}

// Adjust sets a part's stock to a counted quantity and logs the given
// variance as a STOCK TAKE movement. A zero variance writes nothing.
func (s *service) Adjust(ctx context.Context, auth model.AuthorizationContext, p model.AdjustParams) (model.MovementLog, error) {
	const op = "stock.service.Adjust"

	if p.CountedQty < 0 {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, listctl.Invalid("counted quantity cannot be negative"))
	}

	if p.Variance == 0 {
		return model.MovementLog{}, nil
	}

	part, err := s.parts.Lookup(ctx, p.PartID)
	if err != nil {
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.parts.Patch(ctx, part.ID, model.Fields{model.PartFieldCurrentStock: p.CountedQty}); err != nil {
		logger.Error(ctx, "adjust stock", logger.String("part_id", part.ID), logger.ErrorF(err))
		return model.MovementLog{}, fmt.Errorf("%s: %w", op, err)
	}

	entry := s.entry(auth, part, model.MovementStockTake, p.Variance, p.Remarks)
	return s.record(ctx, op, entry, part, p.CountedQty)
}

func (s *service) entry(auth model.AuthorizationContext, part model.Part, typ model.MovementType, qty int64, remarks string) model.MovementLog {
	return model.MovementLog{
		Type:      typ,
		PartID:    part.ID,
		PartName:  part.Name,
		SAPNumber: part.SAPNumber,
		Quantity:  qty,
		Date:      s.now(),
		UserID:    auth.UserID,
		UserName:  auth.DisplayName(),
		Remarks:   strings.TrimSpace(remarks),
	}
}

// record appends the movement log and publishes the event. Publishing is
// best-effort: a failure is logged and not returned.
func (s *service) record(ctx context.Context, op string, entry model.MovementLog, part model.Part, stockAfter int64) (model.MovementLog, error) {
	log := logger.With(
		logger.String("part_id", part.ID),
		logger.String("type", string(entry.Type)),
	)

	id, err := s.movements.Insert(ctx, entry)
	if err != nil {
		log.Error(ctx, "stock changed but movement log was not written",
			logger.Int64("stock_after", stockAfter),
			logger.ErrorF(err),
		)
		return model.MovementLog{}, fmt.Errorf("%s: movement log: %w", op, err)
	}
	entry.ID = id

	metrics.StockMovements.WithLabelValues(string(entry.Type)).Inc()
	metrics.StockMovementQuantity.WithLabelValues(string(entry.Type)).Add(float64(abs(entry.Quantity)))

	if s.publisher != nil {
		event := model.MovementRecorded{
			EventID:     uuid.NewString(),
			MovementID:  id,
			Type:        entry.Type,
			PartID:      part.ID,
			SAPNumber:   part.SAPNumber,
			PartName:    part.Name,
			Quantity:    entry.Quantity,
			StockAfter:  stockAfter,
			SafetyLevel: part.EffectiveSafetyLevel(),
			OccurredAt:  entry.Date,
		}
		if err := s.publisher.PublishMovement(ctx, event); err != nil {
			log.Warn(ctx, "publish movement event", logger.String("movement_id", id), logger.ErrorF(err))
		}
	}

	log.Info(ctx, "stock movement recorded",
		logger.String("movement_id", id),
		logger.Int64("quantity", entry.Quantity),
		logger.Int64("stock_after", stockAfter),
	)
	return entry, nil
}

// TotalCost is quantity × unit cost rounded to cents.
func TotalCost(qty int64, costPerUnit float64) float64 {
	return decimal.NewFromInt(qty).
		Mul(decimal.NewFromFloat(costPerUnit)).
		Round(2).
		InexactFloat64()
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
