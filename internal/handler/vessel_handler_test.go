package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testHandlerOrg = "org-handler-test"

type stubVesselService struct {
	vessels map[string]*domain.Vessel
	err     error
}

func newStubVesselService() *stubVesselService {
	return &stubVesselService{vessels: make(map[string]*domain.Vessel)}
}

func (s *stubVesselService) Create(ctx context.Context, orgID string, req *dto.CreateVesselRequest) (*domain.Vessel, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, err := domain.NewVessel(orgID, req.Name, req.IMO, req.MMSI, req.Type, req.Flag)
	if err != nil {
		return nil, service.ErrInvalidInput
	}
	s.vessels[v.ID] = v
	return v, nil
}

func (s *stubVesselService) GetByID(ctx context.Context, orgID, id string) (*domain.Vessel, error) {
	v, ok := s.vessels[id]
	if !ok || v.OrgID != orgID {
		return nil, service.ErrVesselNotFound
	}
	return v, nil
}

func (s *stubVesselService) List(ctx context.Context, orgID string) ([]*domain.Vessel, error) {
	var out []*domain.Vessel
	for _, v := range s.vessels {
		if v.OrgID == orgID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubVesselService) Update(ctx context.Context, orgID, id string, req *dto.UpdateVesselRequest) (*domain.Vessel, error) {
	return s.GetByID(ctx, orgID, id)
}

func (s *stubVesselService) Delete(ctx context.Context, orgID, id string) error {
	if _, err := s.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	delete(s.vessels, id)
	return nil
}

func (s *stubVesselService) UpdatePosition(ctx context.Context, orgID, id string, req *dto.UpdatePositionRequest) (*domain.Vessel, error) {
	return s.GetByID(ctx, orgID, id)
}

func (s *stubVesselService) Positions(ctx context.Context, orgID string) ([]dto.VesselPositionResponse, error) {
	return nil, nil
}

func (s *stubVesselService) Live(ctx context.Context, orgID string, lat, lon, radiusKm float64) ([]dto.VesselPositionResponse, error) {
	return nil, nil
}

func setupVesselRouter(svc service.VesselService) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyOrgID, testHandlerOrg)
		c.Set(middleware.ContextKeyUserID, "user-1")
		c.Set(middleware.ContextKeyRole, domain.RoleCaptain)
		c.Next()
	})

	h := NewVesselHandler(svc)
	router.POST("/api/v1/vessels", h.Create)
	router.GET("/api/v1/vessels", h.List)
	router.GET("/api/v1/vessels/:id", h.GetByID)
	router.DELETE("/api/v1/vessels/:id", h.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return &resp
}

func TestVesselHandler_Create(t *testing.T) {
	router := setupVesselRouter(newStubVesselService())

	w := doJSON(t, router, http.MethodPost, "/api/v1/vessels", gin.H{
		"name": "MV Northern Star",
		"imo":  "9074729",
		"type": domain.VesselTypeBulkCarrier,
		"flag": "Panama",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Errorf("expected success response, got %+v", resp)
	}
}

func TestVesselHandler_Create_InvalidIMO(t *testing.T) {
	router := setupVesselRouter(newStubVesselService())

	w := doJSON(t, router, http.MethodPost, "/api/v1/vessels", gin.H{
		"name": "MV Northern Star",
		"imo":  "12345",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestVesselHandler_Create_DuplicateIMO(t *testing.T) {
	svc := newStubVesselService()
	svc.err = service.ErrIMOTaken
	router := setupVesselRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/vessels", gin.H{
		"name": "MV Northern Star",
		"imo":  "9074729",
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != response.CodeDuplicateKey {
		t.Errorf("expected code %s, got %s", response.CodeDuplicateKey, resp.Code)
	}
	if !strings.Contains(resp.Message, "already registered") {
		t.Errorf("expected an already-registered message, got %q", resp.Message)
	}
}

func TestVesselHandler_GetByID_NotFound(t *testing.T) {
	router := setupVesselRouter(newStubVesselService())

	w := doJSON(t, router, http.MethodGet, "/api/v1/vessels/no-such-id", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != response.CodeNotFound {
		t.Errorf("expected code %s, got %s", response.CodeNotFound, resp.Code)
	}
}

func TestVesselHandler_List_ReturnsCount(t *testing.T) {
	svc := newStubVesselService()
	router := setupVesselRouter(svc)

	for _, imo := range []string{"9074729", "9074730"} {
		w := doJSON(t, router, http.MethodPost, "/api/v1/vessels", gin.H{
			"name": "MV " + imo,
			"imo":  imo,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("seed vessel %s: got status %d", imo, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/vessels", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Count == nil || *resp.Count != 2 {
		t.Errorf("expected count 2, got %v", resp.Count)
	}
}
