package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/akuntansi-app/akuntansi-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// evidenceHandler handles HTTP requests for transaction evidence documents.
type evidenceHandler struct {
	evidenceService portssvc.EvidenceSvcFacade
}

func newEvidenceHandler(es portssvc.EvidenceSvcFacade) *evidenceHandler {
	return &evidenceHandler{evidenceService: es}
}

// registerEvidenceRoutes registers routes related to transaction evidences.
func registerEvidenceRoutes(rg *gin.RouterGroup, evidenceService portssvc.EvidenceSvcFacade) {
	h := newEvidenceHandler(evidenceService)

	evidences := rg.Group("/evidences")
	{
		evidences.POST("", h.createEvidence)
		evidences.GET("", h.listEvidences)
		evidences.GET("/:evidenceNumber", h.getEvidence)
		evidences.PUT("/:evidenceNumber", h.updateEvidence)
		evidences.DELETE("/:evidenceNumber", h.deleteEvidence)
	}
}

// createEvidence godoc
// @Summary Register a transaction evidence
// @Description Registers a new evidence document with a unique number
// @Tags evidences
// @Accept json
// @Produce json
// @Param evidence body dto.CreateEvidenceRequest true "Evidence details"
// @Success 201 {object} dto.EvidenceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Evidence number already in use"
// @Router /evidences [post]
func (h *evidenceHandler) createEvidence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEvidence", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	evidence, err := h.evidenceService.CreateEvidence(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, "Bukti transaksi berhasil ditambahkan", dto.ToEvidenceResponse(evidence))
}

// listEvidences godoc
// @Summary List transaction evidences
// @Description Retrieves a paginated, filterable list of evidence documents
// @Tags evidences
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param search query string false "Match against evidence number or description"
// @Param startDate query string false "Earliest transaction date (YYYY-MM-DD)"
// @Param endDate query string false "Latest transaction date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListEvidencesResponse
// @Router /evidences [get]
func (h *evidenceHandler) listEvidences(c *gin.Context) {
	var params dto.ListEvidencesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.evidenceService.ListEvidences(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Daftar bukti transaksi berhasil diambil", result)
}

// getEvidence godoc
// @Summary Get a transaction evidence
// @Description Retrieves one evidence document by its number
// @Tags evidences
// @Produce json
// @Param evidenceNumber path string true "Evidence number"
// @Success 200 {object} dto.EvidenceResponse
// @Failure 404 {object} map[string]string "Evidence not found"
// @Router /evidences/{evidenceNumber} [get]
func (h *evidenceHandler) getEvidence(c *gin.Context) {
	evidence, err := h.evidenceService.GetEvidenceByNumber(c.Request.Context(), c.Param("evidenceNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Bukti transaksi berhasil diambil", dto.ToEvidenceResponse(evidence))
}

// updateEvidence godoc
// @Summary Update a transaction evidence
// @Description Patches the mutable fields of an evidence document
// @Tags evidences
// @Accept json
// @Produce json
// @Param evidenceNumber path string true "Evidence number"
// @Param evidence body dto.UpdateEvidenceRequest true "Fields to update"
// @Success 200 {object} dto.EvidenceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Evidence not found"
// @Router /evidences/{evidenceNumber} [put]
func (h *evidenceHandler) updateEvidence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEvidence", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	evidence, err := h.evidenceService.UpdateEvidence(c.Request.Context(), c.Param("evidenceNumber"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Bukti transaksi berhasil diperbarui", dto.ToEvidenceResponse(evidence))
}

// deleteEvidence godoc
// @Summary Delete a transaction evidence
// @Description Removes an evidence document and returns its last state
// @Tags evidences
// @Produce json
// @Param evidenceNumber path string true "Evidence number"
// @Success 200 {object} dto.EvidenceResponse
// @Failure 404 {object} map[string]string "Evidence not found"
// @Failure 409 {object} map[string]string "Evidence still referenced by journal entries"
// @Router /evidences/{evidenceNumber} [delete]
func (h *evidenceHandler) deleteEvidence(c *gin.Context) {
	evidence, err := h.evidenceService.DeleteEvidence(c.Request.Context(), c.Param("evidenceNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Bukti transaksi berhasil dihapus", dto.ToEvidenceResponse(evidence))
}
