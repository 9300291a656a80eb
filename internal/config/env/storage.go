package envconfig

import (
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendRemote   = "remote"
)

var backends = []string{BackendMemory, BackendFile, BackendRedis, BackendPostgres, BackendRemote}

type storageEnv struct {
	Backend  string `env:"STORAGE_BACKEND" envDefault:"memory"`
	FileDir  string `env:"FILE_STORAGE_DIR" envDefault:"./data"`
	TimeZone string `env:"TIME_ZONE" envDefault:"Local"`
}

type storage struct {
	raw storageEnv
	loc *time.Location
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if !slices.Contains(backends, raw.Backend) {
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q, want one of %v", raw.Backend, backends)
	}

	loc, err := time.LoadLocation(raw.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIME_ZONE: %w", err)
	}

	return &storage{raw: raw, loc: loc}, nil
}

func (cfg *storage) Backend() string          { return cfg.raw.Backend }
func (cfg *storage) FileDir() string          { return cfg.raw.FileDir }
func (cfg *storage) Location() *time.Location { return cfg.loc }
