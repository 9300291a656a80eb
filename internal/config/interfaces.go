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
	StoreReadTimeout() time.Duration
	StoreWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	Backend() string
	FileDir() string
	Location() *time.Location
}

type Redis interface {
	Address() string
	Password() string
	DB() int
	KeyPrefix() string
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type API interface {
	BaseURL() string
	Version() string
	Timeout() time.Duration
	PageSize() int
}

type Catalog interface {
	Source() string
}

type Mongo interface {
	DatabaseName() string
	ProductsCollection() string
	DSN() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	OrderEventsTopic() string
	OrderEventsProducerConfig() *sarama.Config
}

type Export interface {
	Directory() string
}
