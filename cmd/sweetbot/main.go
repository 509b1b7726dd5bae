package main

import (
	"log"

	"github.com/candylab/sweetbot/core/bootstrap"
	"github.com/candylab/sweetbot/core/cmd"
	coreconfig "github.com/candylab/sweetbot/core/config"
	"github.com/candylab/sweetbot/internal/bot"
	"github.com/candylab/sweetbot/internal/storage"
)

type configCarrier struct {
	cfg *coreconfig.Config
}

func (c configCarrier) CoreConfig() *coreconfig.Config { return c.cfg }

func main() {
	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return configCarrier{cfg: cfg}, nil
		},
		Bootstrap: func(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			cfg := carrier.CoreConfig()
			res, err := bootstrap.Run(bootstrap.Options{
				Config:   cfg,
				Database: bootstrap.DatabaseFromConfig(cfg),
				Seed:     storage.SeedProducts,
			})
			if err != nil {
				return nil, err
			}
			return bot.New(cfg, res.DB), nil
		},
	})
	if err != nil {
		log.Fatalf("sweetbot: %v", err)
	}
}
