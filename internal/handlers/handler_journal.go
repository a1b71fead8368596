package handlers

import (
	"log/slog"
	"net/http"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/akuntansi-app/akuntansi-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for one journal variant. The same
// handler serves /general-journals and /adjusting-journals; the injected
// service decides which variant it operates on.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	label          string
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	label := "Jurnal umum"
	if js.Kind() == domain.AdjustingJournal {
		label = "Jurnal penyesuaian"
	}
	return &journalHandler{journalService: js, label: label}
}

// registerJournalRoutes registers one journal variant under the given path.
func registerJournalRoutes(rg *gin.RouterGroup, path string, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group(path)
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.PUT("/:journalID", h.updateJournal)
		journals.DELETE("/:journalID", h.deleteJournal)
	}
}

// createJournal godoc
// @Summary Create a journal entry
// @Description Creates a balanced journal entry with its full line set as one atomic unit
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal entry with lines"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Unbalanced entry, unknown account, or invalid input"
// @Router /general-journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	entry, err := h.journalService.CreateJournal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, h.label+" berhasil ditambahkan", dto.ToJournalResponse(entry))
}

// listJournals godoc
// @Summary List journal entries
// @Description Retrieves a paginated, filterable list of entries with their lines
// @Tags journals
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10)"
// @Param search query string false "Match against description"
// @Param startDate query string false "Earliest entry date (YYYY-MM-DD)"
// @Param endDate query string false "Latest entry date (YYYY-MM-DD)"
// @Param account_id query string false "Only entries touching this account"
// @Success 200 {object} dto.ListJournalsResponse
// @Router /general-journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.journalService.ListJournals(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Daftar "+h.label+" berhasil diambil", result)
}

// getJournal godoc
// @Summary Get a journal entry
// @Description Retrieves one entry with its lines and resolved account metadata
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /general-journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	entry, err := h.journalService.GetJournalByID(c.Request.Context(), c.Param("journalID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, h.label+" berhasil diambil", dto.ToJournalResponse(entry))
}

// updateJournal godoc
// @Summary Update a journal entry
// @Description Patches the header and replaces the full line set as one atomic unit
// @Tags journals
// @Accept json
// @Produce json
// @Param journalID path string true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Header patch and replacement lines"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Unbalanced entry, unknown account, or invalid input"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal was modified concurrently"
// @Router /general-journals/{journalID} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateJournal", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	entry, err := h.journalService.UpdateJournal(c.Request.Context(), c.Param("journalID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, h.label+" berhasil diperbarui", dto.ToJournalResponse(entry))
}

// deleteJournal godoc
// @Summary Delete a journal entry
// @Description Removes an entry with its lines atomically and returns its last state
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /general-journals/{journalID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	entry, err := h.journalService.DeleteJournal(c.Request.Context(), c.Param("journalID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, h.label+" berhasil dihapus", dto.ToJournalResponse(entry))
}
