package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type apiEnv struct {
	BaseURL  string        `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	Version  string        `env:"API_VERSION" envDefault:"v1"`
	Timeout  time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	PageSize int           `env:"API_PAGE_SIZE" envDefault:"100"`
}

type api struct {
	raw apiEnv
}

func NewAPIConfig() (*api, error) {
	var raw apiEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &api{raw: raw}, nil
}

func (cfg *api) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *api) Version() string        { return cfg.raw.Version }
func (cfg *api) Timeout() time.Duration { return cfg.raw.Timeout }
func (cfg *api) PageSize() int          { return cfg.raw.PageSize }
