package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/query"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// marshalSkills stores skills in the current JSON-array shape; legacy
// comma-separated rows are normalized on read by SkillList.
func marshalSkills(skills []string) string {
	if len(skills) == 0 {
		return "[]"
	}
	raw, _ := json.Marshal(skills)
	return string(raw)
}

// volunteerItem is the list/detail projection: stored fields plus the
// normalized skill list and the derived assignment count.
type volunteerItem struct {
	ds.Volunteer
	SkillList     []string `json:"skill_list"`
	AssignedTasks int64    `json:"assigned_tasks"`
}

func (h *Handler) volunteerItem(v ds.Volunteer) volunteerItem {
	cnt, _ := h.Repository.CountActiveAssignments(v.ID)
	return volunteerItem{Volunteer: v, SkillList: v.SkillList(), AssignedTasks: cnt}
}

// ApiListVolunteers returns all volunteers with derived counts (admin).
func (h *Handler) ApiListVolunteers(ctx *gin.Context) {
	list, err := h.Repository.ListVolunteers()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	resp := make([]volunteerItem, 0, len(list))
	for _, v := range list {
		resp = append(resp, h.volunteerItem(v))
	}
	jsonResponse(ctx, resp, int64(len(resp)), gin.H{})
}

// ApiCreateVolunteer registers a volunteer (admin).
func (h *Handler) ApiCreateVolunteer(ctx *gin.Context) {
	type bodyT struct {
		Name         string   `json:"name" binding:"required"`
		Phone        string   `json:"phone"`
		Skills       []string `json:"skills"`
		Availability string   `json:"availability"`
		Verified     *bool    `json:"verified"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	v := &ds.Volunteer{
		ID:           uuid.NewString(),
		Name:         body.Name,
		Phone:        body.Phone,
		Skills:       marshalSkills(body.Skills),
		Availability: body.Availability,
		Verified:     true,
	}
	if body.Verified != nil {
		v.Verified = *body.Verified
	}
	if err := h.Repository.CreateVolunteer(v); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, h.volunteerItem(*v), 1, gin.H{})
}

// ApiUpdateVolunteer patches volunteer fields (admin).
func (h *Handler) ApiUpdateVolunteer(ctx *gin.Context) {
	id := ctx.Param("id")
	v, err := h.Repository.GetVolunteer(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if v == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "volunteer not found"})
		return
	}

	type bodyT struct {
		Name         *string   `json:"name"`
		Phone        *string   `json:"phone"`
		Skills       *[]string `json:"skills"`
		Availability *string   `json:"availability"`
		Verified     *bool     `json:"verified"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Phone != nil {
		fields["phone"] = *body.Phone
	}
	if body.Skills != nil {
		fields["skills"] = marshalSkills(*body.Skills)
	}
	if body.Availability != nil {
		fields["availability"] = *body.Availability
	}
	if body.Verified != nil {
		fields["verified"] = *body.Verified
	}
	if len(fields) > 0 {
		if err := h.Repository.UpdateVolunteer(id, fields); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	v, _ = h.Repository.GetVolunteer(id)
	jsonResponse(ctx, h.volunteerItem(*v), 1, gin.H{})
}

// ApiDeleteVolunteer removes a volunteer; open assignments are released
// back to unassigned rather than left dangling (admin).
func (h *Handler) ApiDeleteVolunteer(ctx *gin.Context) {
	id := ctx.Param("id")
	ok, err := h.Repository.DeleteVolunteer(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "volunteer not found"})
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

// ApiVolunteerTasks lists a volunteer's assigned requests plus the open
// pending pool, triage-sorted.
func (h *Handler) ApiVolunteerTasks(ctx *gin.Context) {
	volunteerID := ctx.Query("volunteer_id")
	if volunteerID == "" {
		h.errorHandler(ctx, http.StatusBadRequest, errMissingParam("volunteer_id"))
		return
	}

	mine, err := h.Repository.ListRequestsByAssignee(volunteerID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	open, err := h.Repository.ListRequests(ds.StatusPending, query.All)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"assigned": query.SortForTriage(mine, true),
		"open":     query.SortForTriage(open, true),
	}, int64(len(mine)+len(open)), gin.H{"volunteer_id": volunteerID})
}
