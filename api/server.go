package api

import (
	"github.com/gin-gonic/gin"

	"reporterfinder/enrich"
	"reporterfinder/export"
	"reporterfinder/pipeline"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(p *pipeline.Pipeline, enricher *enrich.Client, snapshots *export.Uploader) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	sc := &SearchController{
		Pipeline:  p,
		Enricher:  enricher,
		Snapshots: snapshots,
	}
	RegisterSearchRoutes(r, sc)
	RegisterHealthRoutes(r)
	return r
}
