package main

import (
	"crm/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the snapshot tables.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(model.Models()...)

	gen.Execute()
}
