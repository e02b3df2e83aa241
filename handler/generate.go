package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hwangtab/artcontract/generator"
	"github.com/hwangtab/artcontract/middleware"
	"github.com/hwangtab/artcontract/pkg/logger"
	"github.com/hwangtab/artcontract/service"
)

// GenerateHandler turns a finished session snapshot into the final
// contract document. The archive is optional: when it is not
// configured the document is only returned in the response.
type GenerateHandler struct {
	store     *service.SessionStore
	templates *service.TemplateStore
	archive   *service.ArchiveService
}

func NewGenerateHandler(templates *service.TemplateStore, archive *service.ArchiveService) *GenerateHandler {
	return &GenerateHandler{
		store:     service.GetSessionStore(),
		templates: templates,
		archive:   archive,
	}
}

// Generate renders the contract document for a session.
func (h *GenerateHandler) Generate(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	id := c.Param("id")

	session := h.store.Get(id)
	if session == nil || session.Tenant != tenant {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	middleware.WithSessionID(c, session.ID)

	tmpl := h.templates.Get(session.Snapshot.Field)
	doc := generator.Generate(session.Snapshot, tmpl)

	response := gin.H{"contract": doc}

	if h.archive != nil {
		objectName, err := h.archive.Store(c.Request.Context(), tenant, doc)
		if err != nil {
			// Archiving is best-effort: the document is already in the
			// response, so a storage failure must not fail generation.
			logger.Error(c.Request.Context(), "failed to archive contract", "error", err)
		} else {
			url, err := h.archive.GetPresignedURL(c.Request.Context(), objectName)
			if err != nil {
				logger.Error(c.Request.Context(), "failed to presign archive URL", "error", err)
			} else {
				response["archive_url"] = url
			}
		}
	}

	logger.Info(c.Request.Context(), "contract generated",
		"contract_id", doc.ID,
		"enhanced", doc.Enhanced,
		"completeness", doc.Completeness,
	)

	c.JSON(http.StatusOK, response)
}
