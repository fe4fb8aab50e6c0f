package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionForRequest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		expected AuditAction
	}{
		{"POST creates", "POST", "/api/vessels", AuditActionCreate},
		{"PUT updates", "PUT", "/api/vessels/123", AuditActionUpdate},
		{"PATCH updates", "PATCH", "/api/crew/456", AuditActionUpdate},
		{"DELETE deletes", "DELETE", "/api/vessels/789", AuditActionDelete},
		{"GET views", "GET", "/api/vessels", AuditActionView},
		{"login path", "POST", "/api/auth/login", AuditActionLogin},
		{"register path", "POST", "/api/auth/register", AuditActionRegister},
		{"acknowledge path", "PUT", "/api/alerts/123/acknowledge", AuditActionAcknowledge},
		{"verify path", "PUT", "/api/reports/123/verify", AuditActionVerify},
		{"bunker path", "POST", "/api/vessels/123/bunker-records", AuditActionBunker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := actionForRequest(tt.method, tt.path)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResourceFromPath(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedType string
		expectedID   string
	}{
		{"resource with uuid", "/api/vessels/123e4567-e89b-12d3-a456-426614174000", "vessel", "123e4567-e89b-12d3-a456-426614174000"},
		{"resource list", "/api/alerts", "alert", ""},
		{"non-uuid id ignored", "/api/vessels/123", "vessel", ""},
		{"no api prefix", "/vessels/abc", "vessel", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resourceType, resourceID := resourceFromPath(tt.path)
			assert.Equal(t, tt.expectedType, resourceType)
			assert.Equal(t, tt.expectedID, resourceID)
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "from X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1, 10.0.0.1"},
			remoteAddr: "127.0.0.1:8080",
			expected:   "192.168.1.1",
		},
		{
			name:       "from X-Real-IP",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:8080",
			expected:   "192.168.1.2",
		},
		{
			name:       "from RemoteAddr",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			result := clientIP(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAuditLogger_Log(t *testing.T) {
	config := &AuditConfig{
		DB:            nil,
		BufferSize:    10,
		FlushInterval: 100 * time.Millisecond,
		BatchSize:     100,
	}

	logger := NewAuditLogger(config)
	logger.SetTestMode(true)
	defer logger.Close()

	entry := &AuditEntry{
		ID:           "test-id",
		Action:       AuditActionCreate,
		ResourceType: "vessel",
		CreatedAt:    time.Now(),
	}

	// Should not block
	logger.Log(entry)

	// Wait for flush
	time.Sleep(200 * time.Millisecond)

	entries := logger.GetTestEntries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "test-id", entries[0].ID)
}

func TestAuditLogger_BufferFull(t *testing.T) {
	config := &AuditConfig{
		DB:            nil,
		BufferSize:    2,
		FlushInterval: 1 * time.Hour,
		BatchSize:     100,
	}

	logger := NewAuditLogger(config)
	defer logger.Close()

	// Fill the buffer - should not panic or block
	for i := 0; i < 5; i++ {
		logger.Log(&AuditEntry{ID: "test"})
	}
}

func TestAuditMiddleware_SkipPaths(t *testing.T) {
	config := &AuditConfig{
		DB:            nil,
		BufferSize:    100,
		FlushInterval: 100 * time.Millisecond,
		BatchSize:     100,
		SkipPaths:     []string{"/health"},
		SkipMethods:   []string{"GET", "HEAD", "OPTIONS"},
	}

	logger := NewAuditLogger(config)
	logger.SetTestMode(true)
	defer logger.Close()

	router := gin.New()
	router.Use(AuditMiddleware(logger))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/api/vessels", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/vessels", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	time.Sleep(200 * time.Millisecond)

	entries := logger.GetTestEntries()
	assert.Len(t, entries, 0, "No entries should be logged for skipped paths/methods")
}

func TestAuditMiddleware_CapturesUserInfo(t *testing.T) {
	config := &AuditConfig{
		DB:            nil,
		BufferSize:    100,
		FlushInterval: 100 * time.Millisecond,
		BatchSize:     100,
		SkipPaths:     []string{},
		SkipMethods:   []string{},
	}

	logger := NewAuditLogger(config)
	logger.SetTestMode(true)
	defer logger.Close()

	router := gin.New()

	// Simulate auth + tenant middleware
	router.Use(func(c *gin.Context) {
		c.Set(ContextKeyUserID, "user-123")
		c.Set(ContextKeyEmail, "test@example.com")
		c.Set(ContextKeyRole, "admin")
		c.Set(ContextKeyOrgID, "org-456")
		c.Set("request_id", "req-123")
		c.Next()
	})

	router.Use(AuditMiddleware(logger))
	router.POST("/api/vessels", func(c *gin.Context) {
		c.String(http.StatusCreated, "OK")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/vessels", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	time.Sleep(200 * time.Millisecond)

	entries := logger.GetTestEntries()
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "user-123", *entry.UserID)
	assert.Equal(t, "test@example.com", entry.UserEmail)
	assert.Equal(t, "admin", entry.UserRole)
	assert.Equal(t, "org-456", *entry.OrgID)
	assert.Equal(t, AuditActionCreate, entry.Action)
	assert.Equal(t, "vessel", entry.ResourceType)
	assert.Equal(t, "req-123", entry.RequestID)
	assert.Equal(t, "TestAgent/1.0", entry.UserAgent)
	assert.Equal(t, http.StatusCreated, entry.Status)
}

func TestAuditLogger_Close(t *testing.T) {
	config := &AuditConfig{
		DB:            nil,
		BufferSize:    100,
		FlushInterval: 100 * time.Millisecond,
		BatchSize:     100,
	}

	logger := NewAuditLogger(config)
	logger.SetTestMode(true)

	for i := 0; i < 5; i++ {
		logger.Log(&AuditEntry{ID: "test"})
	}

	// Wait for flush to happen before close
	time.Sleep(200 * time.Millisecond)

	// Close should not panic and should be idempotent
	err := logger.Close()
	assert.NoError(t, err)

	err = logger.Close()
	assert.NoError(t, err)

	entries := logger.GetTestEntries()
	assert.Len(t, entries, 5)
}

func TestAuditLogger_BatchFlush(t *testing.T) {
	config := &AuditConfig{
		DB:            nil,
		BufferSize:    100,
		FlushInterval: 1 * time.Hour, // Long interval
		BatchSize:     5,             // Small batch size to trigger batch flush
	}

	logger := NewAuditLogger(config)
	logger.SetTestMode(true)
	defer logger.Close()

	for i := 0; i < 5; i++ {
		logger.Log(&AuditEntry{ID: "test"})
	}

	time.Sleep(100 * time.Millisecond)

	entries := logger.GetTestEntries()
	assert.Len(t, entries, 5)
}

func TestDefaultAuditConfig(t *testing.T) {
	config := DefaultAuditConfig(nil)

	assert.Nil(t, config.DB)
	assert.Equal(t, 1000, config.BufferSize)
	assert.Equal(t, 5*time.Second, config.FlushInterval)
	assert.Equal(t, 100, config.BatchSize)
	assert.Contains(t, config.SkipPaths, "/health")
	assert.Contains(t, config.SkipMethods, "GET")
}
