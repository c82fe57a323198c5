package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// ApiStream is the SSE feed of request changes. Clients that prefer
// polling can keep hitting the list endpoints instead; this is the push
// path that replaces fixed-interval reloads.
func (h *Handler) ApiStream(ctx *gin.Context) {
	ch, cancel := h.Hub.Subscribe()
	defer cancel()

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case e, ok := <-ch:
			if !ok {
				return false
			}
			ctx.SSEvent("change", e)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}
