package api

import (
	"github.com/JaimeStill/doc-library/internal/config"
	"github.com/JaimeStill/doc-library/internal/documents"
	"github.com/JaimeStill/doc-library/internal/ingestion"
	"github.com/JaimeStill/doc-library/internal/search"
	"github.com/JaimeStill/doc-library/pkg/database"
	"github.com/JaimeStill/doc-library/pkg/lifecycle"
	"github.com/JaimeStill/doc-library/pkg/pdftext"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents documents.System
	Ingestion *ingestion.Pipeline
	Search    search.System

	db database.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	documentsSys := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	pipeline := ingestion.New(
		documentsSys,
		runtime.Storage,
		pdftext.Extractor{},
		&cfg.Ingestion,
		runtime.Logger,
	)

	searchSys := search.New(
		search.NewIndex(runtime.Database.Connection()),
		&cfg.API.Search,
		runtime.Logger,
	)

	return &Domain{
		Documents: documentsSys,
		Ingestion: pipeline,
		Search:    searchSys,
		db:        runtime.Database,
	}
}

// Start launches background domain workers. The database pool stays open
// until running ingestion jobs have finished.
func (d *Domain) Start(lc *lifecycle.Coordinator) error {
	if err := d.Ingestion.Start(lc); err != nil {
		return err
	}
	d.db.CloseAfter(d.Ingestion.Drained())
	return nil
}
