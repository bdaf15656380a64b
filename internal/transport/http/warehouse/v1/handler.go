package http

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/location"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/warehouse"
)

type DepartmentService interface {
	CRUDService[model.Department]
	NextID(ctx context.Context) (string, error)
}

type WarehouseService interface {
	CRUDService[model.Warehouse]
	NextID(ctx context.Context) (string, error)
	Stats(ctx context.Context) (warehouse.Stats, error)
}

type LocationService interface {
	CRUDService[model.WarehouseLocation]
	ByWarehouse(ctx context.Context, warehouseID string) ([]model.WarehouseLocation, error)
	RemainingCapacity(ctx context.Context, warehouseID, excludeID string) (location.Capacity, error)
}

type MaterialGroupService interface {
	CRUDService[model.MaterialGroup]
	PendingParts(ctx context.Context, query string) ([]model.Part, error)
	AssignParts(ctx context.Context, auth model.AuthorizationContext, groupID string, partIDs []string) error
}

type PartService interface {
	CRUDService[model.Part]
	BySAPNumber(ctx context.Context, sap string) (model.Part, error)
}

type StorageBinService interface {
	CRUDService[model.StorageBin]
	Labels(ctx context.Context, w io.Writer, ids []string) error
}

type MachineService interface {
	CRUDService[model.Machine]
	Filter(ctx context.Context, query string, status model.RecordStatus) ([]model.Machine, error)
}

type StockService interface {
	StockIn(ctx context.Context, auth model.AuthorizationContext, p model.StockInParams) (model.MovementLog, error)
	StockOut(ctx context.Context, auth model.AuthorizationContext, p model.StockOutParams) (model.MovementLog, error)
	Transfer(ctx context.Context, auth model.AuthorizationContext, p model.TransferParams) (model.MovementLog, error)
}

type MovementService interface {
	History(ctx context.Context, f model.MovementFilter) ([]model.MovementLog, error)
	Trace(ctx context.Context, query string) ([]model.MovementLog, error)
}

type MRFService interface {
	List(ctx context.Context, query string, start int) (model.Page[model.MRF], error)
	Get(ctx context.Context, id string) (model.MRF, error)
	NextNumber(ctx context.Context, year int) (string, error)
	Save(ctx context.Context, auth model.AuthorizationContext, draft model.MRF, submit bool) (string, error)
	Submit(ctx context.Context, auth model.AuthorizationContext, id string) error
	Approve(ctx context.Context, auth model.AuthorizationContext, id, comments string) error
	Reject(ctx context.Context, auth model.AuthorizationContext, id, comments string) error
	Delete(ctx context.Context, auth model.AuthorizationContext, id string) error
	Stats(ctx context.Context) (model.MRFStats, error)
	Filter(ctx context.Context, f model.MRFFilter) ([]model.MRF, error)
}

type RequisitionService interface {
	List(ctx context.Context, query string, start int) (model.Page[model.PurchaseRequisition], error)
	Get(ctx context.Context, id string) (model.PurchaseRequisition, error)
	Save(ctx context.Context, auth model.AuthorizationContext, draft model.PurchaseRequisition) (string, error)
	Approve(ctx context.Context, auth model.AuthorizationContext, id string) error
	Reject(ctx context.Context, auth model.AuthorizationContext, id, reason string) error
	Delete(ctx context.Context, auth model.AuthorizationContext, id string) error
	Stats(ctx context.Context) (model.PRStats, error)
	Filter(ctx context.Context, search string, status model.PRStatus) ([]model.PurchaseRequisition, error)
}

type StockTakeService interface {
	List(ctx context.Context, query string, start int) (model.Page[model.StockTakeSession], error)
	Get(ctx context.Context, id string) (model.StockTakeSession, error)
	Start(ctx context.Context, auth model.AuthorizationContext, p model.StockTakeParams) (string, error)
	SaveProgress(ctx context.Context, auth model.AuthorizationContext, id string, counts map[string]int64) (model.StockTakeProgress, error)
	Progress(ctx context.Context, id string) (model.StockTakeProgress, error)
	Variance(ctx context.Context, id string) (model.VarianceReport, error)
	Approve(ctx context.Context, auth model.AuthorizationContext, id, comments string) error
	Reject(ctx context.Context, auth model.AuthorizationContext, id string) error
	Complete(ctx context.Context, auth model.AuthorizationContext, id string) error
	SetStatus(ctx context.Context, auth model.AuthorizationContext, id string, status model.StockTakeStatus) error
	CountSheet(ctx context.Context, w io.Writer, id string, format export.Format) error
}

type ReportService interface {
	LowStock(ctx context.Context, query string) ([]model.LowStockRow, error)
	Valuation(ctx context.Context, filters []model.FieldFilter, logic model.FilterLogic) (model.ValuationReport, error)
	Inquiry(ctx context.Context, filters []model.FieldFilter, logic model.FilterLogic, status model.StockAvailability) ([]model.InquiryRow, error)
	Dashboard(ctx context.Context) (model.Dashboard, error)
}

// Services groups everything the API serves.
type Services struct {
	Departments    DepartmentService
	Warehouses     WarehouseService
	Locations      LocationService
	MaterialGroups MaterialGroupService
	Parts          PartService
	StorageBins    StorageBinService
	Machines       MachineService
	Suppliers      CRUDService[model.Supplier]
	Stock          StockService
	Movements      MovementService
	MRFs           MRFService
	Requisitions   RequisitionService
	StockTakes     StockTakeService
	Reports        ReportService
}

type api struct {
	svc Services
}

func NewAPI(svc Services) *api {
	return &api{svc: svc}
}

// Routes mounts every resource on r.
func (a *api) Routes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Get("/next-id", a.departmentNextID)
		mountCRUD(r, CRUDService[model.Department](a.svc.Departments), nil)
	})
	r.Route("/warehouses", func(r chi.Router) {
		r.Get("/next-id", a.warehouseNextID)
		r.Get("/stats", a.warehouseStats)
		r.Get("/{id}/locations", a.locationsByWarehouse)
		r.Get("/{id}/capacity", a.remainingCapacity)
		mountCRUD(r, CRUDService[model.Warehouse](a.svc.Warehouses), nil)
	})
	r.Route("/locations", func(r chi.Router) {
		mountCRUD(r, CRUDService[model.WarehouseLocation](a.svc.Locations), nil)
	})
	r.Route("/material-groups", func(r chi.Router) {
		r.Get("/pending-parts", a.pendingParts)
		r.Post("/{id}/parts", a.assignParts)
		mountCRUD(r, CRUDService[model.MaterialGroup](a.svc.MaterialGroups), nil)
	})
	r.Route("/parts", func(r chi.Router) {
		r.Get("/sap/{sap}", a.partBySAP)
		mountCRUD(r, CRUDService[model.Part](a.svc.Parts), nil)
	})
	r.Route("/storage-bins", func(r chi.Router) {
		r.Post("/labels", a.binLabels)
		mountCRUD(r, CRUDService[model.StorageBin](a.svc.StorageBins), nil)
	})
	r.Route("/machines", func(r chi.Router) {
		r.Get("/filter", a.filterMachines)
		mountCRUD(r, CRUDService[model.Machine](a.svc.Machines), nil)
	})
	r.Route("/suppliers", func(r chi.Router) {
		mountCRUD(r, a.svc.Suppliers, decodeSupplier)
	})

	r.Route("/stock", func(r chi.Router) {
		r.Post("/in", a.stockIn)
		r.Post("/out", a.stockOut)
		r.Post("/transfer", a.transfer)
	})
	r.Route("/movements", func(r chi.Router) {
		r.Get("/", a.movementHistory)
		r.Get("/trace", a.movementTrace)
		r.Get("/export", a.movementExport)
	})

	r.Route("/mrfs", func(r chi.Router) {
		r.Get("/", a.listMRFs)
		r.Post("/", a.createMRF)
		r.Get("/stats", a.mrfStats)
		r.Get("/filter", a.filterMRFs)
		r.Get("/next-number", a.mrfNextNumber)
		r.Get("/{id}", a.getMRF)
		r.Put("/{id}", a.updateMRF)
		r.Delete("/{id}", a.deleteMRF)
		r.Post("/{id}/submit", a.submitMRF)
		r.Post("/{id}/approve", a.approveMRF)
		r.Post("/{id}/reject", a.rejectMRF)
	})
	r.Route("/requisitions", func(r chi.Router) {
		r.Get("/", a.listRequisitions)
		r.Post("/", a.createRequisition)
		r.Get("/stats", a.requisitionStats)
		r.Get("/filter", a.filterRequisitions)
		r.Get("/{id}", a.getRequisition)
		r.Put("/{id}", a.updateRequisition)
		r.Delete("/{id}", a.deleteRequisition)
		r.Post("/{id}/approve", a.approveRequisition)
		r.Post("/{id}/reject", a.rejectRequisition)
	})
	r.Route("/stock-takes", func(r chi.Router) {
		r.Get("/", a.listStockTakes)
		r.Post("/", a.startStockTake)
		r.Get("/{id}", a.getStockTake)
		r.Get("/{id}/progress", a.stockTakeProgress)
		r.Put("/{id}/counts", a.saveCounts)
		r.Get("/{id}/variance", a.stockTakeVariance)
		r.Post("/{id}/approve", a.approveStockTake)
		r.Post("/{id}/reject", a.rejectStockTake)
		r.Post("/{id}/complete", a.completeStockTake)
		r.Put("/{id}/status", a.setStockTakeStatus)
		r.Get("/{id}/count-sheet", a.countSheet)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/low-stock", a.lowStock)
		r.Get("/low-stock/export", a.lowStockExport)
		r.Post("/valuation", a.valuation)
		r.Post("/valuation/export", a.valuationExport)
		r.Post("/inquiry", a.inquiry)
		r.Post("/inquiry/export", a.inquiryExport)
		r.Get("/dashboard", a.dashboard)
		r.Get("/dashboard/export", a.dashboardExport)
	})
}
