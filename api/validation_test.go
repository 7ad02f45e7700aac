package api

import "testing"

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateIndexName(t *testing.T) {
	tests := []struct {
		name      string
		indexName string
		wantValid bool
		wantError string
	}{
		{
			name:      "valid index name",
			indexName: "places",
			wantValid: true,
		},
		{
			name:      "empty index name",
			indexName: "",
			wantValid: false,
			wantError: "Index name is required",
		},
		{
			name:      "index name with leading whitespace",
			indexName: " places",
			wantValid: false,
			wantError: "Index name cannot have leading or trailing whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexName(tt.indexName)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateIndexName() Valid = %v, want %v", result.Valid, tt.wantValid)
			}

			if !tt.wantValid && len(result.Errors) > 0 {
				if result.Errors[0].Message != tt.wantError {
					t.Errorf("ValidateIndexName() error = %v, want %v", result.Errors[0].Message, tt.wantError)
				}
			}
		})
	}
}

func TestValidateSearchRequestClampsNegativeOptions(t *testing.T) {
	maxDistance := -2
	req := &SearchRequest{Query: "paris", Limit: -5, MaxDistance: &maxDistance}

	result := ValidateSearchRequest(req)

	if !result.Valid {
		t.Errorf("expected clamping to produce a valid result, got errors: %v", result.Errors)
	}
	if req.Limit != 0 {
		t.Errorf("Limit = %d, want clamped to 0", req.Limit)
	}
	if *req.MaxDistance != 0 {
		t.Errorf("MaxDistance = %d, want clamped to 0", *req.MaxDistance)
	}
}

func TestValidateSearchRequestLeavesUnsetMaxDistanceNil(t *testing.T) {
	req := &SearchRequest{Query: "paris"}

	result := ValidateSearchRequest(req)

	if !result.Valid {
		t.Errorf("expected a valid result, got errors: %v", result.Errors)
	}
	if req.MaxDistance != nil {
		t.Errorf("MaxDistance = %v, want nil so the engine applies its default", req.MaxDistance)
	}
}

func TestValidateSynonymClasses(t *testing.T) {
	tests := []struct {
		name      string
		classes   map[string][]string
		wantValid bool
	}{
		{
			name:      "valid classes",
			classes:   map[string][]string{"saint": {"st"}},
			wantValid: true,
		},
		{
			name:      "empty map",
			classes:   map[string][]string{},
			wantValid: false,
		},
		{
			name:      "blank synonym",
			classes:   map[string][]string{"saint": {"  "}},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSynonymClasses(tt.classes)
			if result.Valid != tt.wantValid {
				t.Errorf("ValidateSynonymClasses() Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
		})
	}
}
