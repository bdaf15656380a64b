package app

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/bwmarrin/snowflake"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/config"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/converter"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	deptrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/department"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
	locrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/location"
	machrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/machine"
	grouprepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/materialgroup"
	movrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/movement"
	mrfrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/mrf"
	partrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/part"
	prrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/requisition"
	strepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/stocktake"
	binrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/storagebin"
	suprepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/supplier"
	whrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/warehouse"
	movconsumer "github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/consumer/movement"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/department"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/location"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/machine"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/materialgroup"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/part"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/storagebin"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/supplier"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/warehouse"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/movement"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/mrf"
	movproducer "github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/producer/movement"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/report"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/requisition"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/stock"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/stocktake"
	thttp "github.com/syazwan-nazri/AD-XPDC-sub000/internal/transport/http/warehouse/v1"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/closer"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka/consumer"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka/middleware"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka/producer"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

// Master data lists are small and browsed in longer pages.
const masterDataPageSize = 50

type Converter interface {
	movproducer.Converter
	movconsumer.Converter
}

type MovementConsumer interface {
	RunLowStockConsume(ctx context.Context) error
}

type StockService interface {
	thttp.StockService
	stocktake.Adjuster
}

type RequisitionService interface {
	thttp.RequisitionService
	report.PendingCounter
}

type di struct {
	mongo       *mongo.Client
	collections map[string]*mongo.Collection
	node        *snowflake.Node

	partsRepo  *document.Store[model.Part, partrepo.PartEntity]
	groupsRepo *document.Store[model.MaterialGroup, grouprepo.MaterialGroupEntity]

	departmentsCtl *listctl.Controller[model.Department]
	warehousesCtl  *listctl.Controller[model.Warehouse]
	locationsCtl   *listctl.Controller[model.WarehouseLocation]
	groupsCtl      *listctl.Controller[model.MaterialGroup]
	partsCtl       *listctl.Controller[model.Part]
	binsCtl        *listctl.Controller[model.StorageBin]
	machinesCtl    *listctl.Controller[model.Machine]
	suppliersCtl   *listctl.Controller[model.Supplier]
	movementsCtl   *listctl.Controller[model.MovementLog]
	mrfCtl         *listctl.Controller[model.MRF]
	requisitionCtl *listctl.Controller[model.PurchaseRequisition]
	stockTakeCtl   *listctl.Controller[model.StockTakeSession]

	conv Converter

	consumerGroup    sarama.ConsumerGroup
	movementConsumer MovementConsumer

	syncProducer     sarama.SyncProducer
	movementProducer stock.Publisher

	requisitionService RequisitionService
	stockService       StockService
	services           *thttp.Services

	router *chi.Mux
}

func NewDI() *di { return &di{collections: make(map[string]*mongo.Collection)} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

// Ping reports whether the database answers; used by the health check.
func (d *di) Ping(ctx context.Context) error {
	return d.MongoDB(ctx).Ping(ctx, readpref.Primary())
}

func (d *di) collection(ctx context.Context, name string, indexes []string) *mongo.Collection {
	coll, ok := d.collections[name]
	if !ok {
		coll = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(name)

		if err := document.EnsureIndexes(ctx, coll, indexes...); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes on %s: %v\n", name, err))
		}
		d.collections[name] = coll
	}

	return coll
}

func (d *di) SnowflakeNode(_ context.Context) *snowflake.Node {
	if d.node == nil {
		node, err := snowflake.NewNode(config.C().App.NodeID())
		if err != nil {
			panic(fmt.Sprintf("failed to create snowflake node: %v\n", err))
		}
		d.node = node
	}

	return d.node
}

func controllerOptions(pageSize int) listctl.Options {
	cfg := config.C()
	return listctl.Options{
		PageSize:     pageSize,
		ReadTimeout:  cfg.Server.DBReadTimeout(),
		WriteTimeout: cfg.Server.DBWriteTimeout(),
		Now:          time.Now,
	}
}

func (d *di) PartsRepository(ctx context.Context) *document.Store[model.Part, partrepo.PartEntity] {
	if d.partsRepo == nil {
		d.partsRepo = partrepo.NewPartRepository(
			d.collection(ctx, config.C().Mongo.PartsCollection(), partrepo.Indexes),
		)
	}

	return d.partsRepo
}

func (d *di) MaterialGroupsRepository(ctx context.Context) *document.Store[model.MaterialGroup, grouprepo.MaterialGroupEntity] {
	if d.groupsRepo == nil {
		d.groupsRepo = grouprepo.NewMaterialGroupRepository(
			d.collection(ctx, config.C().Mongo.MaterialGroupsCollection(), grouprepo.Indexes),
		)
	}

	return d.groupsRepo
}

func (d *di) Departments(ctx context.Context) *listctl.Controller[model.Department] {
	if d.departmentsCtl == nil {
		repo := deptrepo.NewDepartmentRepository(
			d.collection(ctx, config.C().Mongo.DepartmentsCollection(), deptrepo.Indexes),
		)
		d.departmentsCtl = listctl.New(repo, department.Schema(), controllerOptions(masterDataPageSize))
	}

	return d.departmentsCtl
}

func (d *di) Warehouses(ctx context.Context) *listctl.Controller[model.Warehouse] {
	if d.warehousesCtl == nil {
		repo := whrepo.NewWarehouseRepository(
			d.collection(ctx, config.C().Mongo.WarehousesCollection(), whrepo.Indexes),
		)
		d.warehousesCtl = listctl.New(repo, warehouse.Schema(), controllerOptions(masterDataPageSize))
	}

	return d.warehousesCtl
}

func (d *di) Locations(ctx context.Context) *listctl.Controller[model.WarehouseLocation] {
	if d.locationsCtl == nil {
		repo := locrepo.NewLocationRepository(
			d.collection(ctx, config.C().Mongo.WarehouseLocationsCollection(), locrepo.Indexes),
		)
		d.locationsCtl = listctl.New(repo, location.Schema(d.Warehouses(ctx)), controllerOptions(masterDataPageSize))
	}

	return d.locationsCtl
}

func (d *di) MaterialGroups(ctx context.Context) *listctl.Controller[model.MaterialGroup] {
	if d.groupsCtl == nil {
		d.groupsCtl = listctl.New(d.MaterialGroupsRepository(ctx), materialgroup.Schema(), controllerOptions(masterDataPageSize))
	}

	return d.groupsCtl
}

func (d *di) Parts(ctx context.Context) *listctl.Controller[model.Part] {
	if d.partsCtl == nil {
		d.partsCtl = listctl.New(
			d.PartsRepository(ctx),
			part.Schema(d.MaterialGroups(ctx)),
			controllerOptions(config.C().App.PageSize()),
		)
	}

	return d.partsCtl
}

func (d *di) StorageBins(ctx context.Context) *listctl.Controller[model.StorageBin] {
	if d.binsCtl == nil {
		repo := binrepo.NewStorageBinRepository(
			d.collection(ctx, config.C().Mongo.StorageBinsCollection(), binrepo.Indexes),
		)
		d.binsCtl = listctl.New(repo, storagebin.Schema(), controllerOptions(masterDataPageSize))
	}

	return d.binsCtl
}

func (d *di) Machines(ctx context.Context) *listctl.Controller[model.Machine] {
	if d.machinesCtl == nil {
		repo := machrepo.NewMachineRepository(
			d.collection(ctx, config.C().Mongo.MachinesCollection(), machrepo.Indexes),
		)
		d.machinesCtl = listctl.New(repo, machine.Schema(), controllerOptions(masterDataPageSize))
	}

	return d.machinesCtl
}

func (d *di) Suppliers(ctx context.Context) *listctl.Controller[model.Supplier] {
	if d.suppliersCtl == nil {
		repo := suprepo.NewSupplierRepository(
			d.collection(ctx, config.C().Mongo.SuppliersCollection(), suprepo.Indexes),
		)
		d.suppliersCtl = listctl.New(repo, supplier.Schema(), controllerOptions(masterDataPageSize))
	}

	return d.suppliersCtl
}

func (d *di) Movements(ctx context.Context) *listctl.Controller[model.MovementLog] {
	if d.movementsCtl == nil {
		repo := movrepo.NewMovementRepository(
			d.collection(ctx, config.C().Mongo.MovementLogsCollection(), movrepo.Indexes),
			d.SnowflakeNode(ctx),
		)
		d.movementsCtl = listctl.New(repo, movement.Schema(), controllerOptions(config.C().App.PageSize()))
	}

	return d.movementsCtl
}

func (d *di) MRFs(ctx context.Context) *listctl.Controller[model.MRF] {
	if d.mrfCtl == nil {
		repo := mrfrepo.NewMRFRepository(
			d.collection(ctx, config.C().Mongo.MRFCollection(), mrfrepo.Indexes),
		)
		d.mrfCtl = listctl.New(repo, mrf.Schema(), controllerOptions(mrf.PageSize))
	}

	return d.mrfCtl
}

func (d *di) Requisitions(ctx context.Context) *listctl.Controller[model.PurchaseRequisition] {
	if d.requisitionCtl == nil {
		repo := prrepo.NewRequisitionRepository(
			d.collection(ctx, config.C().Mongo.RequisitionsCollection(), prrepo.Indexes),
		)
		d.requisitionCtl = listctl.New(repo, requisition.Schema(), controllerOptions(config.C().App.PageSize()))
	}

	return d.requisitionCtl
}

func (d *di) StockTakes(ctx context.Context) *listctl.Controller[model.StockTakeSession] {
	if d.stockTakeCtl == nil {
		repo := strepo.NewStockTakeRepository(
			d.collection(ctx, config.C().Mongo.StockTakesCollection(), strepo.Indexes),
		)
		d.stockTakeCtl = listctl.New(repo, stocktake.Schema(), controllerOptions(config.C().App.PageSize()))
	}

	return d.stockTakeCtl
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.MovementConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) MovementConsumer(ctx context.Context) MovementConsumer {
	if d.movementConsumer == nil {
		var c kafka.Consumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{config.C().Kafka.MovementTopic()},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
		d.movementConsumer = movconsumer.NewMovementConsumer(c, d.KafkaConverter(ctx))
	}

	return d.movementConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.MovementProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) MovementProducer(ctx context.Context) stock.Publisher {
	if d.movementProducer == nil {
		var p kafka.Producer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.MovementTopic(),
			logger.L(),
		)
		d.movementProducer = movproducer.NewMovementProducer(p, d.KafkaConverter(ctx))
	}

	return d.movementProducer
}

func (d *di) StockService(ctx context.Context) StockService {
	if d.stockService == nil {
		// A nil interface keeps the stock service from publishing when
		// Kafka is off.
		var publisher stock.Publisher
		if config.C().Kafka.Enabled() {
			publisher = d.MovementProducer(ctx)
		}
		d.stockService = stock.NewStockService(d.Parts(ctx), d.Movements(ctx), publisher)
	}

	return d.stockService
}

func (d *di) RequisitionService(ctx context.Context) RequisitionService {
	if d.requisitionService == nil {
		d.requisitionService = requisition.NewRequisitionService(d.Requisitions(ctx))
	}

	return d.requisitionService
}

func (d *di) Services(ctx context.Context) thttp.Services {
	if d.services == nil {
		d.services = &thttp.Services{
			Departments:    department.NewDepartmentService(d.Departments(ctx)),
			Warehouses:     warehouse.NewWarehouseService(d.Warehouses(ctx)),
			Locations:      location.NewLocationService(d.Locations(ctx), d.Warehouses(ctx)),
			MaterialGroups: materialgroup.NewMaterialGroupService(d.MaterialGroups(ctx), d.Parts(ctx)),
			Parts:          part.NewPartService(d.Parts(ctx)),
			StorageBins:    storagebin.NewStorageBinService(d.StorageBins(ctx)),
			Machines:       machine.NewMachineService(d.Machines(ctx)),
			Suppliers:      supplier.NewSupplierService(d.Suppliers(ctx)),
			Stock:          d.StockService(ctx),
			Movements:      movement.NewMovementService(d.Movements(ctx)),
			MRFs:           mrf.NewMRFService(d.MRFs(ctx), d.Parts(ctx)),
			Requisitions:   d.RequisitionService(ctx),
			StockTakes: stocktake.NewStockTakeService(
				d.StockTakes(ctx),
				d.Parts(ctx),
				d.StorageBins(ctx),
				d.MaterialGroups(ctx),
				d.StockService(ctx),
			),
			Reports: report.NewReportService(d.Parts(ctx), d.RequisitionService(ctx)),
		}
	}

	return *d.services
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
