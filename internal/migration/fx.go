package migration

import (
	billingdomain "github.com/salespulse/salespulse/internal/billing/domain"
	"github.com/salespulse/salespulse/internal/config"
	eoddomain "github.com/salespulse/salespulse/internal/eod/domain"
	persondomain "github.com/salespulse/salespulse/internal/person/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if !cfg.RunMigrations {
			return nil
		}

		// Versioned SQL migrations are written for postgres; other
		// dialects (sqlite in dev) lean on gorm's schema sync.
		if cfg.DBType != "postgres" {
			return conn.AutoMigrate(
				&persondomain.Person{},
				&eoddomain.MetricRecord{},
				&billingdomain.Plan{},
				&billingdomain.Price{},
				&billingdomain.Subscription{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
