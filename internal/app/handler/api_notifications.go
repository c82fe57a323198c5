package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiListNotifications returns a volunteer's notification feed, newest
// first. unread=true restricts to unread ones.
func (h *Handler) ApiListNotifications(ctx *gin.Context) {
	volunteerID := ctx.Query("volunteer_id")
	unreadOnly := ctx.Query("unread") == "true"

	list, err := h.Repository.ListNotifications(volunteerID, unreadOnly)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	jsonResponse(ctx, list, int64(len(list)), gin.H{"volunteer_id": volunteerID, "unread": unreadOnly})
}

// ApiMarkNotificationRead flips the read flag.
func (h *Handler) ApiMarkNotificationRead(ctx *gin.Context) {
	id := ctx.Param("id")
	ok, err := h.Repository.MarkNotificationRead(id)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	jsonResponse(ctx, gin.H{"read": id}, 1, gin.H{})
}
