package usecase

import (
	"context"
	"io"

	"crm/internal/domain/entity"
	"crm/internal/domain/importer"
)

// ImportUsecase defines bulk customer import
type ImportUsecase interface {
	// ImportCSV merges a CSV export using a column → field mapping
	ImportCSV(ctx context.Context, actor entity.Actor, r io.Reader, mapping map[string]string) (*Result[importer.Summary], error)
}
