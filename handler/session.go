package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwangtab/artcontract/middleware"
	"github.com/hwangtab/artcontract/model"
	"github.com/hwangtab/artcontract/risk"
	"github.com/hwangtab/artcontract/service"
)

// SessionHandler owns the wizard session lifecycle: create, patch
// (which re-evaluates risk synchronously), inspect, delete.
type SessionHandler struct {
	store *service.SessionStore
}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{store: service.GetSessionStore()}
}

// evaluationResponse is the wire form of one risk evaluation. The
// external scale is three-level; the raw four-level value rides along
// in risk_level_detail.
type evaluationResponse struct {
	RiskLevel       model.RiskLevel `json:"risk_level"`
	RiskLevelDetail model.RiskLevel `json:"risk_level_detail"`
	Warnings        []model.Warning `json:"warnings"`
	CriticalErrors  []string        `json:"critical_errors,omitempty"`
	Completeness    int             `json:"completeness"`
	Suggestions     []string        `json:"suggestions,omitempty"`
}

// evaluateAndCache runs the engine and writes the result back onto the
// snapshot, which is the caller-side cache the engine itself never
// reads.
func evaluateAndCache(s *model.ContractSnapshot) evaluationResponse {
	result := risk.Evaluate(s)

	s.Completeness = result.Completeness
	s.RiskLevel = result.RiskLevel
	s.Warnings = result.Warnings

	return evaluationResponse{
		RiskLevel:       result.RiskLevel.Collapse(),
		RiskLevelDetail: result.RiskLevel,
		Warnings:        result.Warnings,
		CriticalErrors:  result.CriticalErrors,
		Completeness:    result.Completeness,
		Suggestions:     result.Suggestions,
	}
}

// Create starts a new wizard session with an empty snapshot.
func (h *SessionHandler) Create(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	session := h.store.Create(tenant)
	middleware.WithSessionID(c, session.ID)
	eval := evaluateAndCache(session.Snapshot)

	c.JSON(http.StatusOK, gin.H{
		"id":         session.ID,
		"created_at": session.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		"evaluation": eval,
	})
}

// List returns all sessions for the current tenant
func (h *SessionHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	sessions := h.store.GetByTenant(tenant)

	// Summary view: no snapshot body
	result := make([]gin.H, len(sessions))
	for i, session := range sessions {
		result[i] = gin.H{
			"id":           session.ID,
			"completeness": session.Snapshot.Completeness,
			"risk_level":   session.Snapshot.RiskLevel.Collapse(),
			"created_at":   session.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at":   session.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": result})
}

// Get returns a single session with its snapshot and cached evaluation
func (h *SessionHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	session := h.store.Get(id)
	if session == nil || session.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	middleware.WithSessionID(c, session.ID)

	c.JSON(http.StatusOK, session)
}

// Patch applies one wizard mutation to the snapshot and re-evaluates
// immediately, so the caller never sees a stale risk result.
func (h *SessionHandler) Patch(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	session := h.store.Get(id)
	if session == nil || session.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	middleware.WithSessionID(c, session.ID)

	var patch model.SnapshotPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patch: " + err.Error()})
		return
	}

	patch.Apply(session.Snapshot)
	eval := evaluateAndCache(session.Snapshot)
	h.store.Touch(session.ID)

	c.JSON(http.StatusOK, gin.H{
		"id":         session.ID,
		"evaluation": eval,
	})
}

// Risks re-evaluates the snapshot on demand without mutating it beyond
// the cached result fields.
func (h *SessionHandler) Risks(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	session := h.store.Get(id)
	if session == nil || session.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	middleware.WithSessionID(c, session.ID)

	eval := evaluateAndCache(session.Snapshot)

	c.JSON(http.StatusOK, eval)
}

// Delete discards a session
func (h *SessionHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	session := h.store.Get(id)
	if session == nil || session.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	middleware.WithSessionID(c, session.ID)

	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
