//go:build integration

package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	deptrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/department"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/document"
	grouprepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/materialgroup"
	movrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/movement"
	partrepo "github.com/syazwan-nazri/AD-XPDC-sub000/internal/repository/part"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/department"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/materialgroup"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/part"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/movement"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/stock"
)

const (
	mongoImage = "mongo:7.0"
	dbName     = "warehouse-it"
)

var (
	ctx context.Context

	mongoC *mongodb.MongoDBContainer
	client *mongo.Client
	db     *mongo.Database

	admin = model.AuthorizationContext{UserID: "u-1", UserName: "Hafiz", GroupID: "a"}
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Document Store Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	By("starting mongo container")
	var err error
	mongoC, err = mongodb.Run(ctx,
		mongoImage,
		tc.WithWaitStrategy(
			wait.ForListeningPort("27017/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	Expect(err).NotTo(HaveOccurred())

	uri, err := mongoC.ConnectionString(ctx)
	Expect(err).NotTo(HaveOccurred())

	By("connecting mongo client")
	client, err = mongo.Connect(options.Client().ApplyURI(uri))
	Expect(err).NotTo(HaveOccurred())

	Eventually(func(g Gomega) {
		g.Expect(client.Ping(ctx, nil)).To(Succeed())
	}).WithTimeout(10 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())

	db = client.Database(dbName)
})

var _ = AfterSuite(func() {
	if client != nil {
		_ = client.Disconnect(ctx)
	}
	if mongoC != nil {
		_ = mongoC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("dropping database")
	Expect(db.Drop(ctx)).To(Succeed())
})

func ctlOptions(pageSize int) listctl.Options {
	return listctl.Options{PageSize: pageSize, ReadTimeout: 2 * time.Second, WriteTimeout: 2 * time.Second}
}

var _ = Describe("Department master", func() {
	var ctl *listctl.Controller[model.Department]

	BeforeEach(func() {
		coll := db.Collection("departments")
		Expect(document.EnsureIndexes(ctx, coll, deptrepo.Indexes...)).To(Succeed())
		ctl = listctl.New(deptrepo.NewDepartmentRepository(coll), department.Schema(), ctlOptions(50))
	})

	It("creates, rejects a duplicate code, updates and deletes", func() {
		svc := department.NewDepartmentService(ctl)

		By("creating a department")
		id, err := svc.Create(ctx, admin, model.Department{Code: "mnt", Name: "Maintenance"})
		Expect(err).NotTo(HaveOccurred())

		var stored bson.M
		Expect(db.Collection("departments").FindOne(ctx, bson.M{"_id": id}).Decode(&stored)).To(Succeed())
		Expect(stored["departmentCode"]).To(Equal("MNT"))
		Expect(stored["departmentId"]).To(Equal("DEPT-001"))

		By("creating another department with the same code")
		_, err = svc.Create(ctx, admin, model.Department{Code: " Mnt ", Name: "Other"})
		Expect(err).To(MatchError(model.ErrDuplicateKey))

		By("renaming it")
		Expect(svc.Update(ctx, admin, id, model.Department{Code: "MNT", Name: "Plant Maintenance"})).To(Succeed())
		got, err := svc.Get(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal("Plant Maintenance"))
		Expect(got.UpdatedAt).To(BeTemporally(">=", got.CreatedAt))

		By("deleting it")
		Expect(svc.Delete(ctx, admin, id)).To(Succeed())
		_, err = svc.Get(ctx, id)
		Expect(err).To(MatchError(model.ErrNotFound))
	})
})

var _ = Describe("Stock transactions", func() {
	var (
		parts     *listctl.Controller[model.Part]
		movements *listctl.Controller[model.MovementLog]
		partsRepo *document.Store[model.Part, partrepo.PartEntity]
	)

	BeforeEach(func() {
		node, err := snowflake.NewNode(1)
		Expect(err).NotTo(HaveOccurred())

		groupsRepo := grouprepo.NewMaterialGroupRepository(db.Collection("material_groups"))
		groups := listctl.New(groupsRepo, materialgroup.Schema(), ctlOptions(50))

		partsRepo = partrepo.NewPartRepository(db.Collection("parts"))
		parts = listctl.New(partsRepo, part.Schema(groups), ctlOptions(20))
		movements = listctl.New(
			movrepo.NewMovementRepository(db.Collection("movement_logs"), node),
			movement.Schema(),
			ctlOptions(20),
		)

		By("seeding demo groups and parts")
		seeded, err := grouprepo.MaterialGroupsBootstrap(ctx, groupsRepo)
		Expect(err).NotTo(HaveOccurred())
		ids := make(map[string]string, len(seeded))
		for _, g := range seeded {
			ids[g.GroupID] = g.ID
		}
		Expect(partrepo.PartsBootstrap(ctx, partsRepo, ids)).To(Succeed())
	})

	It("receives and issues stock and logs both movements", func() {
		svc := stock.NewStockService(parts, movements, nil)

		n, err := partsRepo.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeNumerically(">", 0))

		items, err := parts.Items(ctx)
		Expect(err).NotTo(HaveOccurred())
		p := items[0]

		By("receiving 10 units")
		in, err := svc.StockIn(ctx, admin, model.StockInParams{PartID: p.ID, Quantity: 10, CostPerUnit: 2.5})
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Type).To(Equal(model.MovementIn))

		By("issuing more than available")
		_, err = svc.StockOut(ctx, admin, model.StockOutParams{PartID: p.ID, Quantity: p.CurrentStock + 11})
		Expect(err).To(MatchError(model.ErrInsufficientStock))

		By("issuing 4 units")
		_, err = svc.StockOut(ctx, admin, model.StockOutParams{PartID: p.ID, Quantity: 4, Receiver: "Line 1"})
		Expect(err).NotTo(HaveOccurred())

		stored, err := partsRepo.Get(ctx, p.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.CurrentStock).To(Equal(p.CurrentStock + 6))

		history, err := movement.NewMovementService(movements).History(ctx, model.MovementFilter{Search: p.SAPNumber})
		Expect(err).NotTo(HaveOccurred())
		Expect(history).To(HaveLen(2))
		Expect(history[0].ID).NotTo(Equal(history[1].ID))
	})
})
