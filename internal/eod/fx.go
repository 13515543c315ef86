package eod

import (
	"github.com/salespulse/salespulse/internal/eod/service"
	"go.uber.org/fx"
)

var Module = fx.Module("eod.service",
	fx.Provide(service.NewService),
)
