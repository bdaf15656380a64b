package movement

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

// Schema describes the append-only movement log. There are no editable
// fields and no business keys.
func Schema() listctl.Schema[model.MovementLog] {
	return listctl.Schema[model.MovementLog]{
		Resource: model.ResourceMovementLogs,
		ID:       func(m model.MovementLog) string { return m.ID },
		Searchable: func(m model.MovementLog) []string {
			return []string{m.PartName, m.SAPNumber, m.UserName, m.Remarks, m.Supplier, m.Receiver}
		},
		Order: listctl.NewestFirst(func(m model.MovementLog) time.Time { return m.Date }),
		Fields: func(model.MovementLog) model.Fields {
			return model.Fields{}
		},
		Stamp: func(m model.MovementLog, now time.Time) model.MovementLog {
			if m.Date.IsZero() {
				m.Date = now
			}
			m.CreatedAt = now
			return m
		},
	}
}

type service struct {
	ctl *listctl.Controller[model.MovementLog]
}

func NewMovementService(ctl *listctl.Controller[model.MovementLog]) *service {
	return &service{ctl: ctl}
}

// History filters the log by search text, type and an inclusive date range,
// newest first. The end date covers the whole day.
func (s *service) History(ctx context.Context, f model.MovementFilter) ([]model.MovementLog, error) {
	const op = "movement.service.History"

	if f.Type != "" && !validType(f.Type) {
		return nil, fmt.Errorf("%s: %w", op, listctl.Invalid("unknown movement type %q", f.Type))
	}

	logs, err := s.ctl.Search(ctx, f.Search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var from, to time.Time
	if f.From != nil {
		from = startOfDay(*f.From)
	}
	if f.To != nil {
		to = startOfDay(*f.To).AddDate(0, 0, 1)
	}

	out := make([]model.MovementLog, 0, len(logs))
	for _, m := range logs {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.From != nil && m.Date.Before(from) {
			continue
		}
		if f.To != nil && !m.Date.Before(to) {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

// Trace finds every movement of a part, delivery or requisition: it matches
// part name, SAP number, supplier, delivery order number or MRF number.
func (s *service) Trace(ctx context.Context, query string) ([]model.MovementLog, error) {
	const op = "movement.service.Trace"

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf("%s: %w", op, listctl.Invalid("search term is required"))
	}

	logs, err := s.ctl.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]model.MovementLog, 0)
	for _, m := range logs {
		for _, v := range []string{m.PartName, m.SAPNumber, m.Supplier, m.DeliveryOrderNumber, m.MRFNumber} {
			if strings.Contains(strings.ToLower(v), q) {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

var exportHeader = []string{
	"Date", "Type", "SAP Number", "Part Name", "Quantity", "User",
	"Supplier", "DO Number", "Receiver", "MRF Number", "From", "To", "Remarks",
}

// Export writes logs as an XLSX sheet.
func Export(w io.Writer, name string, logs []model.MovementLog) error {
	rows := make([][]any, 0, len(logs))
	for _, m := range logs {
		rows = append(rows, []any{
			m.Date.Format(time.DateTime), string(m.Type), m.SAPNumber, m.PartName, m.Quantity, m.UserName,
			m.Supplier, m.DeliveryOrderNumber, m.Receiver, m.MRFNumber, m.FromLocation, m.ToLocation, m.Remarks,
		})
	}
	return export.WriteXLSX(w, export.Sheet{Name: name, Header: exportHeader, Rows: rows})
}

func validType(t model.MovementType) bool {
	switch t {
	case model.MovementIn, model.MovementOut, model.MovementTransfer, model.MovementStockTake:
		return true
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
