package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cbouillon/frrerank/internal/rerank"
	"github.com/cbouillon/frrerank/model"
)

// API holds the dependencies shared by every handler: the re-ranking engine.
type API struct {
	engine *rerank.Engine
}

// NewAPI builds an API over the given engine.
func NewAPI(engine *rerank.Engine) *API {
	return &API{engine: engine}
}

// SetupRoutes registers every route the engine exposes over HTTP.
func SetupRoutes(router *gin.Engine, engine *rerank.Engine) {
	apiHandler := NewAPI(engine)

	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())

	router.GET("/health", apiHandler.HealthCheckHandler)

	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("/:index/search", apiHandler.SearchHandler)
	}

	router.PUT("/synonyms", apiHandler.PutSynonymsHandler)
	router.GET("/synonyms", apiHandler.GetSynonymsHandler)

	router.POST("/cache/clear", apiHandler.ClearCacheHandler)
	router.GET("/cache/stats", apiHandler.CacheStatsHandler)
}

// SearchRequest defines the JSON body of POST /indexes/:index/search.
// MaxDistance is a pointer so an omitted field (fall back to the engine's
// configured default) is distinguishable from an explicit 0 (spec §9: 0
// disables fuzzy matching).
type SearchRequest struct {
	Query       string      `json:"query"`
	Limit       int         `json:"limit"`
	MaxDistance *int        `json:"max_distance,omitempty"`
	Filters     interface{} `json:"filters,omitempty"`
}

// SearchHandler runs the re-ranking pipeline for a single query against the
// named index (spec §6's Search API).
func (api *API) SearchHandler(c *gin.Context) {
	index := c.Param("index")
	if result := ValidateIndexName(index); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateSearchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	options := model.Options{
		Limit:       req.Limit,
		MaxDistance: req.MaxDistance,
		Filters:     req.Filters,
	}

	reply, err := api.engine.Search(c.Request.Context(), index, req.Query, options)
	if err != nil {
		SendSearchError(c, index, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

// HealthCheckHandler provides a simple liveness endpoint.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "frrerank"})
}
