package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bella507/help-me-sub000/internal/app/config"
	"github.com/bella507/help-me-sub000/internal/app/lifecycle"
	"github.com/bella507/help-me-sub000/internal/app/middleware"
	"github.com/bella507/help-me-sub000/internal/app/pkg/auth"
	"github.com/bella507/help-me-sub000/internal/app/pkg/events"
	"github.com/bella507/help-me-sub000/internal/app/pkg/storage"
	"github.com/bella507/help-me-sub000/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	Engine         *lifecycle.Engine
	Hub            *events.Hub
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
	MinIO          *storage.MinIO
}

func NewHandler(r *repository.Repository, cfg *config.Config, engine *lifecycle.Engine, hub *events.Hub, jwtSvc *auth.JWTService, sessionSvc *auth.SessionService, m *storage.MinIO) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		Engine:         engine,
		Hub:            hub,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
		MinIO:          m,
	}
}

// RegisterHandler wires all routes onto the router.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}
	authed := middleware.AuthMiddleware(authSvc)
	admin := middleware.RequireAdminMiddleware()

	api := router.Group("/api")

	// Public surface: intake, tracking, directory, live stream.
	api.POST("/requests", h.ApiCreateRequest)
	api.GET("/requests/track", h.ApiTrackRequests)
	api.GET("/requests/:id", h.ApiGetRequest)
	api.GET("/shelters", h.ApiListShelters)
	api.GET("/news", h.ApiListNews)
	api.GET("/faqs", h.ApiListFaqs)
	api.GET("/donation-needs", h.ApiListDonationNeeds)
	api.GET("/risk-areas", h.ApiListRiskAreas)
	api.GET("/stream", h.ApiStream)

	// Auth.
	api.POST("/users/register", h.ApiRegisterUser)
	api.POST("/users/login", h.ApiLogin)
	api.POST("/users/logout", h.ApiLogout)
	api.GET("/users/profile", authed, h.ApiGetProfile)
	api.PUT("/users/profile", authed, h.ApiUpdateProfile)

	// Volunteer self-service.
	api.GET("/volunteer/tasks", authed, h.ApiVolunteerTasks)
	api.POST("/requests/:id/accept", authed, h.ApiAcceptRequest)
	api.PUT("/requests/:id/complete", authed, h.ApiCompleteRequest)
	api.PUT("/requests/:id/notes", authed, h.ApiUpdateRequestNotes)
	api.GET("/notifications", authed, h.ApiListNotifications)
	api.PUT("/notifications/:id/read", authed, h.ApiMarkNotificationRead)

	// Admin.
	api.GET("/requests", authed, admin, h.ApiListRequests)
	api.GET("/requests/stats", authed, admin, h.ApiRequestStats)
	api.PUT("/requests/:id/assign", authed, admin, h.ApiAssignRequest)
	api.DELETE("/requests/:id", authed, admin, h.ApiDeleteRequest)

	api.GET("/volunteers", authed, admin, h.ApiListVolunteers)
	api.POST("/volunteers", authed, admin, h.ApiCreateVolunteer)
	api.PUT("/volunteers/:id", authed, admin, h.ApiUpdateVolunteer)
	api.DELETE("/volunteers/:id", authed, admin, h.ApiDeleteVolunteer)

	api.POST("/shelters", authed, admin, h.ApiCreateShelter)
	api.PUT("/shelters/:id", authed, admin, h.ApiUpdateShelter)
	api.DELETE("/shelters/:id", authed, admin, h.ApiDeleteShelter)
	api.POST("/shelters/:id/image", authed, admin, h.ApiUploadShelterImage)

	api.POST("/news", authed, admin, h.ApiCreateNewsItem)
	api.PUT("/news/:id", authed, admin, h.ApiUpdateNewsItem)
	api.DELETE("/news/:id", authed, admin, h.ApiDeleteNewsItem)
	api.POST("/news/:id/image", authed, admin, h.ApiUploadNewsImage)

	api.POST("/faqs", authed, admin, h.ApiCreateFaq)
	api.PUT("/faqs/:id", authed, admin, h.ApiUpdateFaq)
	api.DELETE("/faqs/:id", authed, admin, h.ApiDeleteFaq)

	api.POST("/donation-needs", authed, admin, h.ApiCreateDonationNeed)
	api.PUT("/donation-needs/:id", authed, admin, h.ApiUpdateDonationNeed)
	api.DELETE("/donation-needs/:id", authed, admin, h.ApiDeleteDonationNeed)

	api.POST("/risk-areas", authed, admin, h.ApiCreateRiskArea)
	api.PUT("/risk-areas/:id", authed, admin, h.ApiUpdateRiskArea)
	api.DELETE("/risk-areas/:id", authed, admin, h.ApiDeleteRiskArea)
}

// jsonResponse is the shared success envelope.
func jsonResponse(ctx *gin.Context, data interface{}, count int64, meta gin.H) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data":   data,
		"count":  count,
		"meta":   meta,
	})
}

func errMissingParam(name string) error {
	return fmt.Errorf("missing required query parameter %q", name)
}

// errorHandler logs and renders a failure.
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// lifecycleError maps engine errors onto HTTP statuses. Transition and
// validation failures are the caller's fault, conflicts mean retry, and
// anything else is a storage problem.
func (h *Handler) lifecycleError(ctx *gin.Context, err error) {
	var nf *lifecycle.NotFoundError
	var it *lifecycle.InvalidTransitionError
	var ve *lifecycle.ValidationError
	var cf *lifecycle.ConflictError
	switch {
	case errors.As(err, &nf):
		h.errorHandler(ctx, http.StatusNotFound, err)
	case errors.As(err, &it), errors.As(err, &ve):
		h.errorHandler(ctx, http.StatusBadRequest, err)
	case errors.As(err, &cf):
		h.errorHandler(ctx, http.StatusConflict, err)
	default:
		h.errorHandler(ctx, http.StatusInternalServerError, err)
	}
}
