package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	DSN() string

	DepartmentsCollection() string
	WarehousesCollection() string
	WarehouseLocationsCollection() string
	MaterialGroupsCollection() string
	PartsCollection() string
	StorageBinsCollection() string
	MachinesCollection() string
	SuppliersCollection() string
	MovementLogsCollection() string
	MRFCollection() string
	RequisitionsCollection() string
	StockTakesCollection() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	MovementTopic() string
	ConsumerGroupID() string
	MovementConsumerConfig() *sarama.Config
	MovementProducerConfig() *sarama.Config
}

type Auth interface {
	JWTSecret() []byte
}

type App interface {
	PageSize() int
	BootstrapDemoData() bool
	NodeID() int64
}
