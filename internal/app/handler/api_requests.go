package handler

import (
	"net/http"

	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/lifecycle"
	"github.com/bella507/help-me-sub000/internal/app/query"

	"github.com/gin-gonic/gin"
)

// ApiCreateRequest is the public intake endpoint.
// @Summary Submit a help request
// @Tags requests
// @Accept json
// @Produce json
// @Router /api/requests [post]
func (h *Handler) ApiCreateRequest(ctx *gin.Context) {
	type bodyT struct {
		Name        string         `json:"name" binding:"required"`
		Phone       string         `json:"phone" binding:"required"`
		Location    string         `json:"location" binding:"required"`
		Address     string         `json:"address"`
		Category    string         `json:"category" binding:"required"`
		Urgency     string         `json:"urgency" binding:"required"`
		Description string         `json:"description"`
		RiskGroups  *ds.RiskGroups `json:"risk_groups"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	req, err := h.Engine.Create(lifecycle.Draft{
		Name:        body.Name,
		Phone:       body.Phone,
		Location:    body.Location,
		Address:     body.Address,
		Category:    body.Category,
		Urgency:     body.Urgency,
		Description: body.Description,
		RiskGroups:  body.RiskGroups,
	})
	if err != nil {
		h.lifecycleError(ctx, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// ApiTrackRequests is the public self-service tracker: substring match on
// the phone number. Anyone who knows the number sees those requests; this
// mirrors the intake flow where the phone is the only identity there is.
func (h *Handler) ApiTrackRequests(ctx *gin.Context) {
	term := ctx.Query("phone")
	if term == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errMissingParam("phone"))
		return
	}
	list, err := h.Repository.ListRequestsByPhone(term)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	list = query.SortForTriage(list, false)
	jsonResponse(ctx, list, int64(len(list)), gin.H{"phone": term})
}

// ApiGetRequest returns a single request by id.
func (h *Handler) ApiGetRequest(ctx *gin.Context) {
	req, err := h.Repository.GetRequest(ctx.Param("id"))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if req == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// ApiListRequests is the admin triage list. Filters by status and urgency,
// sorted urgency-first unless sort=recent.
// @Summary List help requests (admin)
// @Tags requests
// @Security BearerAuth
// @Router /api/requests [get]
func (h *Handler) ApiListRequests(ctx *gin.Context) {
	status := ctx.DefaultQuery("status", query.All)
	urgency := ctx.DefaultQuery("urgency", query.All)
	sortMode := ctx.DefaultQuery("sort", "triage")

	list, err := h.Repository.ListRequests(status, urgency)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	list = query.SortForTriage(list, sortMode == "triage")
	jsonResponse(ctx, list, int64(len(list)), gin.H{"status": status, "urgency": urgency, "sort": sortMode})
}

// ApiRequestStats returns the dashboard counters.
func (h *Handler) ApiRequestStats(ctx *gin.Context) {
	list, err := h.Repository.ListRequests(query.All, query.All)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, query.ComputeStats(list), int64(len(list)), gin.H{})
}

// ApiAssignRequest assigns a pending request to a volunteer (admin).
func (h *Handler) ApiAssignRequest(ctx *gin.Context) {
	type bodyT struct {
		VolunteerID string `json:"volunteer_id" binding:"required"`
		Notes       string `json:"notes"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	// The assignee must exist; the reference is soft after that.
	vol, err := h.Repository.GetVolunteer(body.VolunteerID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if vol == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown volunteer"})
		return
	}

	req, err := h.Engine.Assign(ctx.Param("id"), body.VolunteerID, body.Notes)
	if err != nil {
		h.lifecycleError(ctx, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// ApiAcceptRequest is the volunteer self-assign flow.
func (h *Handler) ApiAcceptRequest(ctx *gin.Context) {
	type bodyT struct {
		VolunteerID string `json:"volunteer_id" binding:"required"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	req, err := h.Engine.SelfAccept(ctx.Param("id"), body.VolunteerID)
	if err != nil {
		h.lifecycleError(ctx, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// ApiCompleteRequest closes an in-progress request.
func (h *Handler) ApiCompleteRequest(ctx *gin.Context) {
	req, err := h.Engine.Complete(ctx.Param("id"))
	if err != nil {
		h.lifecycleError(ctx, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// ApiUpdateRequestNotes sets operator or volunteer notes.
func (h *Handler) ApiUpdateRequestNotes(ctx *gin.Context) {
	type bodyT struct {
		Field string `json:"field" binding:"required"`
		Text  string `json:"text"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	req, err := h.Engine.UpdateNotes(ctx.Param("id"), body.Field, body.Text)
	if err != nil {
		h.lifecycleError(ctx, err)
		return
	}
	jsonResponse(ctx, req, 1, gin.H{})
}

// ApiDeleteRequest hard-deletes a request. Irreversible, so the caller
// must send confirm=true after its own confirmation dialog.
func (h *Handler) ApiDeleteRequest(ctx *gin.Context) {
	if ctx.Query("confirm") != "true" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "deletion must be confirmed with confirm=true"})
		return
	}
	id := ctx.Param("id")
	if err := h.Engine.Delete(id); err != nil {
		h.lifecycleError(ctx, err)
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
