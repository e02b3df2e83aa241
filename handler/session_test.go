package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hwangtab/artcontract/model"
	"github.com/hwangtab/artcontract/pkg/logger"
	"github.com/hwangtab/artcontract/service"
)

func newSessionRouter(tenant string) (*gin.Engine, *SessionHandler) {
	handler := &SessionHandler{store: service.GetSessionStore()}

	router := gin.New()
	asTenant := func(fn gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("tenant", tenant)
			fn(c)
		}
	}
	router.POST("/sessions", asTenant(handler.Create))
	router.GET("/sessions", asTenant(handler.List))
	router.GET("/sessions/:id", asTenant(handler.Get))
	router.PATCH("/sessions/:id", asTenant(handler.Patch))
	router.GET("/sessions/:id/risks", asTenant(handler.Risks))
	router.DELETE("/sessions/:id", asTenant(handler.Delete))
	return router, handler
}

func createSession(t *testing.T, router *gin.Engine) string {
	t.Helper()

	req := httptest.NewRequest("POST", "/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 creating session, got %d", w.Code)
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse create response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("Expected session id in create response")
	}
	return resp.ID
}

func patchSession(t *testing.T, router *gin.Engine, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("PATCH", "/sessions/"+id, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type patchResponse struct {
	ID         string `json:"id"`
	Evaluation struct {
		RiskLevel       model.RiskLevel `json:"risk_level"`
		RiskLevelDetail model.RiskLevel `json:"risk_level_detail"`
		Warnings        []model.Warning `json:"warnings"`
		CriticalErrors  []string        `json:"critical_errors"`
		Completeness    int             `json:"completeness"`
	} `json:"evaluation"`
}

func TestSessionCreateReturnsEvaluation(t *testing.T) {
	router, _ := newSessionRouter("tenant-create")

	req := httptest.NewRequest("POST", "/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp patchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Evaluation.Completeness != 0 {
		t.Errorf("Expected completeness 0 for empty snapshot, got %d", resp.Evaluation.Completeness)
	}
	if len(resp.Evaluation.Warnings) == 0 {
		t.Error("Expected warnings for empty snapshot")
	}
}

func TestSessionPatchReevaluates(t *testing.T) {
	router, _ := newSessionRouter("tenant-patch")
	id := createSession(t, router)

	w := patchSession(t, router, id, `{
		"revisions": "unlimited",
		"payment": {"amount": 30000, "currency": "KRW"}
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp patchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	// Two dangers: critical internally, high on the external scale
	if resp.Evaluation.RiskLevelDetail != model.RiskCritical {
		t.Errorf("Expected detail critical, got %s", resp.Evaluation.RiskLevelDetail)
	}
	if resp.Evaluation.RiskLevel != model.RiskHigh {
		t.Errorf("Expected collapsed high, got %s", resp.Evaluation.RiskLevel)
	}

	ids := make(map[string]bool)
	for _, warning := range resp.Evaluation.Warnings {
		ids[warning.ID] = true
	}
	if !ids["unlimited_revisions"] || !ids["very_low_payment"] {
		t.Errorf("Expected unlimited_revisions and very_low_payment, got %v", ids)
	}
}

func TestSessionPatchCachesResultOnSnapshot(t *testing.T) {
	router, handler := newSessionRouter("tenant-cache")
	id := createSession(t, router)

	patchSession(t, router, id, `{"client_name": "주식회사 달빛", "field": "design"}`)

	session := handler.store.Get(id)
	if session == nil {
		t.Fatal("Expected session in store")
	}
	if session.Snapshot.ClientName != "주식회사 달빛" {
		t.Errorf("Expected patch applied to snapshot, got %q", session.Snapshot.ClientName)
	}
	if session.Snapshot.Completeness == 0 {
		t.Error("Expected completeness cached on snapshot")
	}
	if session.Snapshot.RiskLevel == "" {
		t.Error("Expected risk level cached on snapshot")
	}
	if len(session.Snapshot.Warnings) == 0 {
		t.Error("Expected warnings cached on snapshot")
	}
}

func TestSessionPatchClearsFields(t *testing.T) {
	router, handler := newSessionRouter("tenant-clear")
	id := createSession(t, router)

	patchSession(t, router, id, `{"revisions": 3}`)
	if handler.store.Get(id).Snapshot.Revisions == nil {
		t.Fatal("Expected revisions set")
	}

	patchSession(t, router, id, `{"clear": ["revisions"]}`)
	if handler.store.Get(id).Snapshot.Revisions != nil {
		t.Error("Expected revisions cleared")
	}
}

func TestSessionPatchInvalidBody(t *testing.T) {
	router, _ := newSessionRouter("tenant-badpatch")
	id := createSession(t, router)

	w := patchSession(t, router, id, `{"revisions": "many"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid revision policy, got %d", w.Code)
	}
}

func TestSessionTenantIsolation(t *testing.T) {
	routerA, _ := newSessionRouter("tenant-iso-a")
	routerB, _ := newSessionRouter("tenant-iso-b")

	id := createSession(t, routerA)

	// Another tenant cannot see the session
	req := httptest.NewRequest("GET", "/sessions/"+id, nil)
	w := httptest.NewRecorder()
	routerB.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for cross-tenant access, got %d", w.Code)
	}

	// Nor delete it
	req = httptest.NewRequest("DELETE", "/sessions/"+id, nil)
	w = httptest.NewRecorder()
	routerB.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for cross-tenant delete, got %d", w.Code)
	}
}

func TestSessionList(t *testing.T) {
	router, _ := newSessionRouter("tenant-list")

	createSession(t, router)
	createSession(t, router)

	req := httptest.NewRequest("GET", "/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Sessions []map[string]any `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp.Sessions) != 2 {
		t.Errorf("Expected 2 sessions, got %d", len(resp.Sessions))
	}
	for _, entry := range resp.Sessions {
		if _, exists := entry["snapshot"]; exists {
			t.Error("Expected list view to omit snapshot body")
		}
	}
}

func TestSessionRisks(t *testing.T) {
	router, _ := newSessionRouter("tenant-risks")
	id := createSession(t, router)

	patchSession(t, router, id, `{"payment": {"amount": 0, "currency": "KRW"}}`)

	req := httptest.NewRequest("GET", "/sessions/"+id+"/risks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var eval struct {
		RiskLevel      model.RiskLevel `json:"risk_level"`
		Warnings       []model.Warning `json:"warnings"`
		CriticalErrors []string        `json:"critical_errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &eval); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(eval.CriticalErrors) == 0 {
		t.Error("Expected critical errors for zero payment")
	}

	found := false
	for _, warning := range eval.Warnings {
		if warning.ID == "zero_payment" {
			found = true
		}
	}
	if !found {
		t.Error("Expected zero_payment warning")
	}
}

func TestSessionDelete(t *testing.T) {
	router, handler := newSessionRouter("tenant-delete")
	id := createSession(t, router)

	req := httptest.NewRequest("DELETE", "/sessions/"+id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if handler.store.Get(id) != nil {
		t.Error("Expected session removed from store")
	}

	// Deleting again is a 404
	req = httptest.NewRequest("DELETE", "/sessions/"+id, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestSessionNotFound(t *testing.T) {
	router, _ := newSessionRouter("tenant-missing")

	req := httptest.NewRequest("GET", "/sessions/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	w = patchSession(t, router, "does-not-exist", `{}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 patching missing session, got %d", w.Code)
	}
}

// Handlers stamp the resolved session id into the request context so
// the access log line for the request carries it.
func TestSessionHandlersStampSessionID(t *testing.T) {
	handler := &SessionHandler{store: service.GetSessionStore()}
	session := handler.store.Create("tenant-stamp")

	var stamped string
	router := gin.New()
	router.GET("/sessions/:id/risks", func(c *gin.Context) {
		c.Set("tenant", "tenant-stamp")
		handler.Risks(c)
		stamped, _ = c.Request.Context().Value(logger.SessionIDKey).(string)
	})

	req := httptest.NewRequest("GET", "/sessions/"+session.ID+"/risks", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if stamped != session.ID {
		t.Errorf("Expected session id %s in request context, got %q", session.ID, stamped)
	}
}

// Touch keeps freshly patched sessions from being cleaned before stale
// ones when the store is at capacity.
func TestSessionPatchBumpsUpdatedAt(t *testing.T) {
	router, handler := newSessionRouter("tenant-touch")
	id := createSession(t, router)

	before := handler.store.Get(id).UpdatedAt
	time.Sleep(5 * time.Millisecond)

	patchSession(t, router, id, `{"client_name": "달빛"}`)

	if !handler.store.Get(id).UpdatedAt.After(before) {
		t.Error("Expected patch to bump UpdatedAt")
	}
}
