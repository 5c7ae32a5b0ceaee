package seed

import (
	"context"
	"fmt"

	"linkdeck/internal/domain"
	"linkdeck/internal/logger"
)

// Store is the store surface consumed by the importer.
type Store interface {
	CountLinks(ctx context.Context) (int64, error)
	CreateLink(ctx context.Context, title, url string) (*domain.LinkItem, error)
}

// Importer populates an empty link collection from a seed file. A
// non-empty collection is never touched.
type Importer struct {
	loader *Loader
	store  Store
	logger logger.Logger
}

// NewImporter creates a seed importer
func NewImporter(filePath string, store Store, log logger.Logger) *Importer {
	return &Importer{
		loader: NewLoader(filePath),
		store:  store,
		logger: log,
	}
}

// Run imports the seed file when the collection is empty. Links are
// created in file order, so they receive dense orders 0..n-1.
func (i *Importer) Run(ctx context.Context) error {
	count, err := i.store.CountLinks(ctx)
	if err != nil {
		return fmt.Errorf("failed to count links: %w", err)
	}
	if count > 0 {
		i.logger.Debug("seed skipped, collection not empty",
			logger.Int("links", int(count)))
		return nil
	}

	entries, err := i.loader.Load()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := i.store.CreateLink(ctx, entry.Title, entry.URL); err != nil {
			return fmt.Errorf("failed to seed link %q: %w", entry.Title, err)
		}
	}

	i.logger.Info("seeded link collection",
		logger.Int("links", len(entries)))
	return nil
}
