package model

// Resource is the permission key a capability check is made against.
type Resource string

const (
	ResourceUserMaster          Resource = "user_master"
	ResourceUserGroupMaster     Resource = "user_group_master"
	ResourceDepartmentMaster    Resource = "department_master"
	ResourcePartMaster          Resource = "part_master"
	ResourcePartGroupMaster     Resource = "part_group_master"
	ResourceStorageMaster       Resource = "storage_master"
	ResourceWarehouseMaster     Resource = "warehouse_master"
	ResourceWarehouseLocations  Resource = "warehouse_locations"
	ResourceSupplierMaster      Resource = "supplier_master"
	ResourceMachineMaster       Resource = "machine_master"
	ResourceStockIn             Resource = "stock_in"
	ResourceStockOut            Resource = "stock_out"
	ResourceInternalTransfer    Resource = "internal_transfer"
	ResourceMovementLogs        Resource = "movement_logs"
	ResourceMRF                 Resource = "mrf"
	ResourceStockTake           Resource = "stock_take"
	ResourcePurchaseRequisition Resource = "purchase_requisition"
	ResourceDashboard           Resource = "dashboard"
	ResourceStockInquiry        Resource = "stock_inquiry"
	ResourceStockValuation      Resource = "stock_valuation"
	ResourceMovementHistory     Resource = "movement_history"
	ResourceLowStock            Resource = "low_stock"
)

type Access string

const (
	AccessNone Access = ""
	AccessEdit Access = "edit"
	AccessAdd  Access = "add"
)

// AuthorizationContext describes the acting user. It is passed explicitly
// into every mutating operation.
type AuthorizationContext struct {
	UserID      string
	UserName    string
	GroupID     string
	Permissions map[Resource]Access
}

func (a AuthorizationContext) IsAdmin() bool {
	return a.GroupID == "a" || a.GroupID == "admin"
}

func (a AuthorizationContext) Access(r Resource) Access {
	if a.Permissions == nil {
		return AccessNone
	}
	return a.Permissions[r]
}

func (a AuthorizationContext) CanAdd(r Resource) bool {
	return a.IsAdmin() || a.Access(r) == AccessAdd
}

func (a AuthorizationContext) CanEdit(r Resource) bool {
	acc := a.Access(r)
	return a.IsAdmin() || acc == AccessAdd || acc == AccessEdit
}

func (a AuthorizationContext) CanDelete(r Resource) bool {
	return a.IsAdmin() || a.Access(r) == AccessAdd
}

// DisplayName falls back to the user id, then to "Unknown".
func (a AuthorizationContext) DisplayName() string {
	switch {
	case a.UserName != "":
		return a.UserName
	case a.UserID != "":
		return a.UserID
	default:
		return "Unknown"
	}
}
