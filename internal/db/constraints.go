package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

type constraint struct {
	Table string
	Name  string
	DDL   string
}

// Regras que o AutoMigrate não expressa. A exclusão em reservations é a
// garantia final contra sobreposição entre transações concorrentes.
var constraints = []constraint{
	{
		Table: "reservations",
		Name:  "reservations_no_overlap",
		DDL: `EXCLUDE USING gist (
			cabin_id WITH =,
			daterange(start_date, end_date, '[)') WITH &&
		) WHERE (status IN ('pending', 'confirmed'))`,
	},
	{
		Table: "reservations",
		Name:  "reservations_valid_range",
		DDL:   `CHECK (end_date > start_date)`,
	},
	{
		Table: "maintenance_windows",
		Name:  "maintenance_windows_one_target",
		DDL:   `CHECK ((cabin_id IS NULL) <> (equipment_id IS NULL))`,
	},
	{
		Table: "maintenance_windows",
		Name:  "maintenance_windows_valid_range",
		DDL:   `CHECK (end_date > start_date)`,
	},
	{
		Table: "payments",
		Name:  "payments_one_owner",
		DDL:   `CHECK ((reservation_id IS NULL) <> (equipment_loan_id IS NULL))`,
	},
	{
		Table: "equipment",
		Name:  "equipment_stock_bounds",
		DDL:   `CHECK (available_stock <= total_stock)`,
	},
}

// ApplyConstraints é idempotente: cada constraint só é criada se ainda
// não existir em pg_constraint.
func ApplyConstraints(db *gorm.DB) error {
	for _, c := range constraints {
		var count int64
		if err := db.Raw(
			`SELECT COUNT(*) FROM pg_constraint WHERE conname = ?`, c.Name,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("failed to inspect constraint %s: %w", c.Name, err)
		}
		if count > 0 {
			continue
		}

		stmt := fmt.Sprintf(`ALTER TABLE %s ADD CONSTRAINT %s %s`, c.Table, c.Name, c.DDL)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", c.Name, err)
		}

		logger.Info("constraint created", "name", c.Name, "table", c.Table)
	}
	return nil
}
