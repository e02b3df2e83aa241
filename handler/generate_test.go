package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hwangtab/artcontract/model"
	"github.com/hwangtab/artcontract/service"
)

func newGenerateRouter(t *testing.T, tenant string) (*gin.Engine, *service.SessionStore) {
	t.Helper()

	templates, err := service.NewTemplateStore("")
	if err != nil {
		t.Fatalf("Failed to build template store: %v", err)
	}

	handler := NewGenerateHandler(templates, nil)
	router := gin.New()
	router.POST("/sessions/:id/generate", func(c *gin.Context) {
		c.Set("tenant", tenant)
		handler.Generate(c)
	})
	return router, handler.store
}

func generate(t *testing.T, router *gin.Engine, id string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/sessions/"+id+"/generate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type generateResponse struct {
	Contract   model.GeneratedContract `json:"contract"`
	ArchiveURL string                  `json:"archive_url"`
}

func TestGenerateBasicContract(t *testing.T) {
	router, store := newGenerateRouter(t, "tenant-gen")

	session := store.Create("tenant-gen")
	session.Snapshot.Field = model.FieldDesign
	session.Snapshot.WorkType = "로고 디자인"
	session.Snapshot.ClientName = "주식회사 달빛"
	session.Snapshot.Payment = &model.Payment{Amount: f64ptr(500000), Currency: "KRW"}

	w := generate(t, router, session.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp generateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Contract.ID == "" {
		t.Error("Expected contract id")
	}
	if resp.Contract.Enhanced {
		t.Error("Expected basic mode without enhanced terms")
	}
	if !strings.Contains(resp.Contract.Content, "주식회사 달빛") {
		t.Error("Expected client name in contract body")
	}
	if !strings.Contains(resp.Contract.Content, "500,000원") {
		t.Error("Expected formatted amount in contract body")
	}
	if resp.ArchiveURL != "" {
		t.Error("Expected no archive URL when archive is not configured")
	}
}

func TestGenerateEnhancedContract(t *testing.T) {
	router, store := newGenerateRouter(t, "tenant-gen-enh")

	session := store.Create("tenant-gen-enh")
	session.Snapshot.Field = model.FieldMusic
	session.Snapshot.CopyrightTerms = &model.CopyrightTerms{
		RightsType: model.RightsNonExclusiveLicense,
	}

	w := generate(t, router, session.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp generateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !resp.Contract.Enhanced {
		t.Error("Expected enhanced mode with copyright terms")
	}
	if !strings.Contains(resp.Contract.Content, "제1조") {
		t.Error("Expected numbered articles in enhanced contract")
	}
}

func TestGenerateCarriesEvaluation(t *testing.T) {
	router, store := newGenerateRouter(t, "tenant-gen-eval")

	session := store.Create("tenant-gen-eval")
	session.Snapshot.Revisions = model.NewRevisionUnlimited()

	w := generate(t, router, session.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp generateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	found := false
	for _, warning := range resp.Contract.Warnings {
		if warning.ID == "unlimited_revisions" {
			found = true
		}
	}
	if !found {
		t.Error("Expected unlimited_revisions warning on generated contract")
	}
	if !strings.Contains(resp.Contract.Content, "무제한 ⚠️") {
		t.Error("Expected unlimited marker in contract body")
	}
}

func TestGenerateTenantScoped(t *testing.T) {
	routerA, store := newGenerateRouter(t, "tenant-gen-a")
	routerB, _ := newGenerateRouter(t, "tenant-gen-b")

	session := store.Create("tenant-gen-a")

	if w := generate(t, routerB, session.ID); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for cross-tenant generate, got %d", w.Code)
	}
	if w := generate(t, routerA, session.ID); w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for owning tenant, got %d", w.Code)
	}
}

func TestGenerateUnknownSession(t *testing.T) {
	router, _ := newGenerateRouter(t, "tenant-gen-missing")

	if w := generate(t, router, "does-not-exist"); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func f64ptr(v float64) *float64 { return &v }
