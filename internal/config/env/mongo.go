package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type mongoEnv struct {
	Host               string `env:"MONGO_HOST" envDefault:"localhost"`
	Port               int    `env:"MONGO_PORT" envDefault:"27017"`
	User               string `env:"MONGO_INITDB_ROOT_USERNAME"`
	Password           string `env:"MONGO_INITDB_ROOT_PASSWORD"`
	DBName             string `env:"MONGO_DATABASE" envDefault:"field-orders"`
	AuthDB             string `env:"MONGO_AUTH_DB" envDefault:"admin"`
	ProductsCollection string `env:"MONGO_PRODUCTS_COLLECTION" envDefault:"products"`
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

func (cfg *mongo) DatabaseName() string {
	return cfg.raw.DBName
}

func (cfg *mongo) ProductsCollection() string {
	return cfg.raw.ProductsCollection
}

func (cfg *mongo) DSN() string {
	if cfg.raw.User == "" {
		return fmt.Sprintf("mongodb://%s:%d/%s", cfg.raw.Host, cfg.raw.Port, cfg.raw.DBName)
	}
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
