package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PutSynonymsHandler replaces the engine's synonym table (spec §6's Admin
// API). The body maps each base word to its list of synonyms.
func (api *API) PutSynonymsHandler(c *gin.Context) {
	var classes map[string][]string
	if err := c.ShouldBindJSON(&classes); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateSynonymClasses(classes); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.SetSynonyms(classes); err != nil {
		SendSynonymError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Synonym table updated", "classes": len(classes)})
}

// GetSynonymsHandler returns the engine's current synonym table.
func (api *API) GetSynonymsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.GetSynonyms())
}

// ClearCacheHandler empties the result cache.
func (api *API) ClearCacheHandler(c *gin.Context) {
	api.engine.ClearCache()
	c.JSON(http.StatusOK, gin.H{"message": "Result cache cleared"})
}

// CacheStatsHandler reports the result cache's current size, capacity, and
// TTL.
func (api *API) CacheStatsHandler(c *gin.Context) {
	size, maxSize, ttlSeconds := api.engine.CacheStats()
	c.JSON(http.StatusOK, gin.H{
		"size":        size,
		"max_size":    maxSize,
		"ttl_seconds": ttlSeconds,
	})
}
