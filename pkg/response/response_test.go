package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	data := map[string]string{"name": "MV Orient Star"}
	resp := Success(data)

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Data == nil {
		t.Error("Expected data to be set")
	}
	if resp.Message != "" {
		t.Error("Expected message to be empty")
	}
}

func TestSuccess_JSONFormat(t *testing.T) {
	data := map[string]string{"id": "123"}
	resp := Success(data)

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if parsed["success"] != true {
		t.Errorf("Expected success=true, got %v", parsed["success"])
	}
	if _, ok := parsed["message"]; ok {
		t.Error("Expected message field to be omitted")
	}
	if _, ok := parsed["count"]; ok {
		t.Error("Expected count field to be omitted")
	}
}

func TestSuccessWithCount(t *testing.T) {
	resp := SuccessWithCount([]string{"a", "b"}, 2)

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Count == nil || *resp.Count != 2 {
		t.Errorf("Expected count 2, got %v", resp.Count)
	}

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if parsed["count"] != float64(2) {
		t.Errorf("Expected count=2, got %v", parsed["count"])
	}
}

func TestError(t *testing.T) {
	resp := Error(CodeNotFound, "Vessel not found")

	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Data != nil {
		t.Error("Expected data to be nil")
	}
	if resp.Message != "Vessel not found" {
		t.Errorf("Expected message 'Vessel not found', got '%s'", resp.Message)
	}
	if resp.Code != CodeNotFound {
		t.Errorf("Expected code %s, got %s", CodeNotFound, resp.Code)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeDuplicateKey, http.StatusConflict},
		{CodeInvalidCredentials, http.StatusUnauthorized},
		{CodeTokenExpired, http.StatusUnauthorized},
		{CodeAccountDeactivated, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodePlanUpgrade, http.StatusForbidden},
		{CodeNoTenantContext, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeServerError, http.StatusInternalServerError},
		{CodeCacheUnavailable, http.StatusServiceUnavailable},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := HTTPStatus(tt.code); got != tt.expected {
				t.Errorf("HTTPStatus(%s) = %d, expected %d", tt.code, got, tt.expected)
			}
		})
	}
}

func TestCommonErrorResponses_DefaultMessages(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		code string
	}{
		{"validation", ValidationError(""), CodeValidation},
		{"unauthorized", Unauthorized(""), CodeTokenInvalid},
		{"forbidden", Forbidden(""), CodeForbidden},
		{"not found", NotFound(""), CodeNotFound},
		{"duplicate", Duplicate(""), CodeDuplicateKey},
		{"server error", ServerError(""), CodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.resp.Success {
				t.Error("Expected success to be false")
			}
			if tt.resp.Message == "" {
				t.Error("Expected a default message")
			}
			if tt.resp.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, tt.resp.Code)
			}
		})
	}
}
