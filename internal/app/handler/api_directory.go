package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bella507/help-me-sub000/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// Directory content: shelters, news, FAQ, donation needs, risk areas.
// Reads are public, writes are admin-only.

func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) ApiListShelters(ctx *gin.Context) {
	list, err := h.Repository.ListShelters()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{})
}

func (h *Handler) ApiCreateShelter(ctx *gin.Context) {
	type bodyT struct {
		Name     string  `json:"name" binding:"required"`
		Address  string  `json:"address"`
		Capacity int     `json:"capacity"`
		Phone    string  `json:"phone"`
		Status   string  `json:"status"`
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	status := body.Status
	if status == "" {
		status = ds.ShelterOpen
	}
	s := &ds.Shelter{
		Name:     body.Name,
		Address:  body.Address,
		Capacity: body.Capacity,
		Phone:    body.Phone,
		Status:   status,
		Lat:      body.Lat,
		Lng:      body.Lng,
	}
	if err := h.Repository.CreateShelter(s); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, s, 1, gin.H{})
}

func (h *Handler) ApiUpdateShelter(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	allowed := pickFields(fields, "name", "address", "capacity", "occupancy", "phone", "status", "lat", "lng")
	if err := h.Repository.UpdateShelter(id, allowed); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	s, _ := h.Repository.GetShelter(id)
	jsonResponse(ctx, s, 1, gin.H{})
}

func (h *Handler) ApiDeleteShelter(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	deleted, err := h.Repository.DeleteShelter(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "shelter not found"})
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

// ApiUploadShelterImage stores an image in MinIO and saves its URL.
func (h *Handler) ApiUploadShelterImage(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	s, err := h.Repository.GetShelter(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if s == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "shelter not found"})
		return
	}
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	_, publicURL, err := h.MinIO.UploadImage(ctx.Request.Context(), fileHeader, "shelter")
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if err := h.Repository.UpdateShelter(id, map[string]interface{}{"image_url": publicURL}); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"image_url": publicURL}, 1, gin.H{})
}

func (h *Handler) ApiListNews(ctx *gin.Context) {
	list, err := h.Repository.ListNews()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{})
}

func (h *Handler) ApiCreateNewsItem(ctx *gin.Context) {
	type bodyT struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	n := &ds.NewsItem{Title: body.Title, Body: body.Body, PublishedAt: time.Now()}
	if err := h.Repository.CreateNewsItem(n); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, n, 1, gin.H{})
}

func (h *Handler) ApiUpdateNewsItem(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	allowed := pickFields(fields, "title", "body")
	if err := h.Repository.UpdateNewsItem(id, allowed); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	n, _ := h.Repository.GetNewsItem(id)
	jsonResponse(ctx, n, 1, gin.H{})
}

func (h *Handler) ApiDeleteNewsItem(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	deleted, err := h.Repository.DeleteNewsItem(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "news item not found"})
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

func (h *Handler) ApiUploadNewsImage(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	n, err := h.Repository.GetNewsItem(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if n == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "news item not found"})
		return
	}
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	_, publicURL, err := h.MinIO.UploadImage(ctx.Request.Context(), fileHeader, "news")
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if err := h.Repository.UpdateNewsItem(id, map[string]interface{}{"image_url": publicURL}); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"image_url": publicURL}, 1, gin.H{})
}

func (h *Handler) ApiListFaqs(ctx *gin.Context) {
	list, err := h.Repository.ListFaqs()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{})
}

func (h *Handler) ApiCreateFaq(ctx *gin.Context) {
	type bodyT struct {
		Question string `json:"question" binding:"required"`
		Answer   string `json:"answer" binding:"required"`
		Position int    `json:"position"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	f := &ds.Faq{Question: body.Question, Answer: body.Answer, Position: body.Position}
	if err := h.Repository.CreateFaq(f); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, f, 1, gin.H{})
}

func (h *Handler) ApiUpdateFaq(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	allowed := pickFields(fields, "question", "answer", "position")
	if err := h.Repository.UpdateFaq(id, allowed); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"updated": id}, 1, gin.H{})
}

func (h *Handler) ApiDeleteFaq(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	deleted, err := h.Repository.DeleteFaq(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "faq not found"})
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

func (h *Handler) ApiListDonationNeeds(ctx *gin.Context) {
	list, err := h.Repository.ListDonationNeeds()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{})
}

func (h *Handler) ApiCreateDonationNeed(ctx *gin.Context) {
	type bodyT struct {
		Item     string `json:"item" binding:"required"`
		Quantity int    `json:"quantity"`
		Unit     string `json:"unit"`
		Urgent   bool   `json:"urgent"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	d := &ds.DonationNeed{Item: body.Item, Quantity: body.Quantity, Unit: body.Unit, Urgent: body.Urgent}
	if err := h.Repository.CreateDonationNeed(d); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, d, 1, gin.H{})
}

func (h *Handler) ApiUpdateDonationNeed(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	allowed := pickFields(fields, "item", "quantity", "unit", "urgent", "fulfilled")
	if err := h.Repository.UpdateDonationNeed(id, allowed); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"updated": id}, 1, gin.H{})
}

func (h *Handler) ApiDeleteDonationNeed(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	deleted, err := h.Repository.DeleteDonationNeed(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "donation need not found"})
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

func (h *Handler) ApiListRiskAreas(ctx *gin.Context) {
	list, err := h.Repository.ListRiskAreas()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{})
}

func (h *Handler) ApiCreateRiskArea(ctx *gin.Context) {
	type bodyT struct {
		Name        string  `json:"name" binding:"required"`
		Level       string  `json:"level"`
		Description string  `json:"description"`
		Lat         float64 `json:"lat"`
		Lng         float64 `json:"lng"`
		RadiusKm    float64 `json:"radius_km"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	level := body.Level
	if level == "" {
		level = ds.RiskWatch
	}
	a := &ds.RiskArea{
		Name:        body.Name,
		Level:       level,
		Description: body.Description,
		Lat:         body.Lat,
		Lng:         body.Lng,
		RadiusKm:    body.RadiusKm,
	}
	if err := h.Repository.CreateRiskArea(a); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, a, 1, gin.H{})
}

func (h *Handler) ApiUpdateRiskArea(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	allowed := pickFields(fields, "name", "level", "description", "lat", "lng", "radius_km")
	if err := h.Repository.UpdateRiskArea(id, allowed); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, gin.H{"updated": id}, 1, gin.H{})
}

func (h *Handler) ApiDeleteRiskArea(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	deleted, err := h.Repository.DeleteRiskArea(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "risk area not found"})
		return
	}
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}

// pickFields whitelists updatable columns from a free-form patch body.
func pickFields(in map[string]interface{}, keys ...string) map[string]interface{} {
	out := map[string]interface{}{}
	for _, k := range keys {
		if v, ok := in[k]; ok {
			out[k] = v
		}
	}
	return out
}
