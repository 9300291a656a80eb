package envconfig

import (
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
)

const (
	CatalogStatic = "static"
	CatalogRemote = "remote"
	CatalogMongo  = "mongo"
)

var catalogSources = []string{CatalogStatic, CatalogRemote, CatalogMongo}

type catalogEnv struct {
	Source string `env:"CATALOG_SOURCE" envDefault:"static"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if !slices.Contains(catalogSources, raw.Source) {
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q, want one of %v", raw.Source, catalogSources)
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Source() string { return cfg.raw.Source }
