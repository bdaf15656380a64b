package envconfig

import "github.com/caarlos0/env/v11"

type appEnv struct {
	PageSize          int   `env:"PAGE_SIZE" envDefault:"20"`
	BootstrapDemoData bool  `env:"BOOTSTRAP_DEMO_DATA" envDefault:"false"`
	NodeID            int64 `env:"SNOWFLAKE_NODE_ID" envDefault:"1"`
}

type app struct {
	raw appEnv
}

func NewAppConfig() (*app, error) {
	var raw appEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &app{raw: raw}, nil
}

func (cfg *app) PageSize() int           { return cfg.raw.PageSize }
func (cfg *app) BootstrapDemoData() bool { return cfg.raw.BootstrapDemoData }
func (cfg *app) NodeID() int64           { return cfg.raw.NodeID }
