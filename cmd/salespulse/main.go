package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/salespulse/salespulse/internal/clock"
	"github.com/salespulse/salespulse/internal/config"
	"github.com/salespulse/salespulse/internal/logger"
	"github.com/salespulse/salespulse/internal/migration"
	"github.com/salespulse/salespulse/internal/observability"
	"github.com/salespulse/salespulse/internal/server"
	"github.com/salespulse/salespulse/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return node, nil
}
