package envconfig

import "github.com/caarlos0/env/v11"

type exportEnv struct {
	Directory string `env:"EXPORT_DIRECTORY" envDefault:"./exports"`
}

type export struct {
	raw exportEnv
}

func NewExportConfig() (*export, error) {
	var raw exportEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &export{raw: raw}, nil
}

func (cfg *export) Directory() string { return cfg.raw.Directory }
