// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateIndexName validates the ":index" route parameter.
func ValidateIndexName(indexName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if indexName == "" {
		result.AddError("index", "Index name is required")
		return result
	}

	if strings.TrimSpace(indexName) != indexName {
		result.AddError("index", "Index name cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateSearchRequest validates a decoded SearchRequest body, clamping
// options per spec §7 rather than rejecting out-of-range values. It never
// reports an error; an empty query is answered by the engine's empty-query
// reply.
func ValidateSearchRequest(req *SearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.MaxDistance != nil && *req.MaxDistance < 0 {
		*req.MaxDistance = 0
	}
	if req.Limit < 0 {
		req.Limit = 0
	}

	return result
}

// ValidateSynonymClasses validates a PUT /synonyms request body: every base
// word and synonym must be non-empty once trimmed.
func ValidateSynonymClasses(classes map[string][]string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(classes) == 0 {
		result.AddError("synonyms", "At least one synonym class is required")
		return result
	}

	for base, syns := range classes {
		if strings.TrimSpace(base) == "" {
			result.AddError("synonyms", "A synonym class base word cannot be empty or whitespace-only")
			continue
		}
		for i, s := range syns {
			if strings.TrimSpace(s) == "" {
				result.AddError("synonyms", fmt.Sprintf("Synonym %d of class '%s' cannot be empty or whitespace-only", i, base))
			}
		}
	}

	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError("request_body", "Invalid request body: "+err.Error())
	}

	return result
}
