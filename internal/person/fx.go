package person

import (
	"github.com/salespulse/salespulse/internal/person/service"
	"go.uber.org/fx"
)

var Module = fx.Module("person.service",
	fx.Provide(service.NewService),
)
