package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host     string `env:"MONGO_HOST,required"`
	Port     int    `env:"MONGO_PORT" envDefault:"27017"`
	User     string `env:"MONGO_INITDB_ROOT_USERNAME,required"`
	Password string `env:"MONGO_INITDB_ROOT_PASSWORD,required"`
	DBName   string `env:"MONGO_DATABASE" envDefault:"warehouse"`
	AuthDB   string `env:"MONGO_AUTH_DB" envDefault:"admin"`

	Collections collectionsEnv
}

type collectionsEnv struct {
	Departments        string `env:"MONGO_DEPARTMENTS_COLLECTION" envDefault:"departments"`
	Warehouses         string `env:"MONGO_WAREHOUSES_COLLECTION" envDefault:"warehouses"`
	WarehouseLocations string `env:"MONGO_WAREHOUSE_LOCATIONS_COLLECTION" envDefault:"warehouseLocations"`
	MaterialGroups     string `env:"MONGO_MATERIAL_GROUPS_COLLECTION" envDefault:"materialGroups"`
	Parts              string `env:"MONGO_PARTS_COLLECTION" envDefault:"parts"`
	StorageBins        string `env:"MONGO_STORAGE_BINS_COLLECTION" envDefault:"storageLocations"`
	Machines           string `env:"MONGO_MACHINES_COLLECTION" envDefault:"machines"`
	Suppliers          string `env:"MONGO_SUPPLIERS_COLLECTION" envDefault:"suppliers"`
	MovementLogs       string `env:"MONGO_MOVEMENT_LOGS_COLLECTION" envDefault:"movement_logs"`
	MRF                string `env:"MONGO_MRF_COLLECTION" envDefault:"mrf"`
	Requisitions       string `env:"MONGO_REQUISITIONS_COLLECTION" envDefault:"purchase_requisitions"`
	StockTakes         string `env:"MONGO_STOCK_TAKES_COLLECTION" envDefault:"stockTakeSessions"`
}

type mongo struct {
	raw mongoEnv
}

func NewMongoConfig() (*mongo, error) {
	var raw mongoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mongo{raw: raw}, nil
}

func (cfg *mongo) DatabaseName() string { return cfg.raw.DBName }

func (cfg *mongo) DepartmentsCollection() string { return cfg.raw.Collections.Departments }
func (cfg *mongo) WarehousesCollection() string  { return cfg.raw.Collections.Warehouses }
func (cfg *mongo) WarehouseLocationsCollection() string {
	return cfg.raw.Collections.WarehouseLocations
}
func (cfg *mongo) MaterialGroupsCollection() string { return cfg.raw.Collections.MaterialGroups }
func (cfg *mongo) PartsCollection() string          { return cfg.raw.Collections.Parts }
func (cfg *mongo) StorageBinsCollection() string    { return cfg.raw.Collections.StorageBins }
func (cfg *mongo) MachinesCollection() string       { return cfg.raw.Collections.Machines }
func (cfg *mongo) SuppliersCollection() string      { return cfg.raw.Collections.Suppliers }
func (cfg *mongo) MovementLogsCollection() string   { return cfg.raw.Collections.MovementLogs }
func (cfg *mongo) MRFCollection() string            { return cfg.raw.Collections.MRF }
func (cfg *mongo) RequisitionsCollection() string   { return cfg.raw.Collections.Requisitions }
func (cfg *mongo) StockTakesCollection() string     { return cfg.raw.Collections.StockTakes }

func (cfg *mongo) DSN() string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%d/%s?authSource=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.AuthDB,
	)
}
