package handler

import (
	"net/http"

	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/middleware"
	"github.com/bella507/help-me-sub000/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// issueCredentials generates a JWT plus a Redis session and sets the
// session cookie.
func (h *Handler) issueCredentials(ctx *gin.Context, user *ds.User) (token, sessionID string, err error) {
	token, err = h.JWTService.Generate(user.ID, user.Login, user.IsAdmin)
	if err != nil {
		return "", "", err
	}

	sessionID = uuid.New().String()
	sessionData := auth.SessionData{
		UserID:  user.ID,
		Login:   user.Login,
		IsAdmin: user.IsAdmin,
	}
	if err := h.SessionService.Create(ctx.Request.Context(), sessionID, sessionData); err != nil {
		return "", "", err
	}
	ctx.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	return token, sessionID, nil
}

// ApiRegisterUser registers a new account.
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{login=string,password=string,phone=string} true "Registration data"
// @Success 200 {object} object{user=ds.User}
// @Failure 400 {object} object{error=string}
// @Router /api/users/register [post]
func (h *Handler) ApiRegisterUser(ctx *gin.Context) {
	type requestBody struct {
		Login    string `json:"login" binding:"required,min=3,max=50"`
		Password string `json:"password" binding:"required,min=6"`
		Phone    string `json:"phone"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if existing, err := h.Repository.GetUserByLogin(body.Login); err == nil && existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user := &ds.User{
		Login:    body.Login,
		Password: string(hashedPassword),
		Phone:    body.Phone,
	}
	if err := h.Repository.CreateUser(user); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	token, sessionID, err := h.issueCredentials(ctx, user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "token": token, "session_id": sessionID}, 1, gin.H{})
}

// ApiLogin logs a user in.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{login=string,password=string} true "Credentials"
// @Success 200 {object} object{user=ds.User,token=string,session_id=string}
// @Failure 401 {object} object{error=string}
// @Router /api/users/login [post]
func (h *Handler) ApiLogin(ctx *gin.Context) {
	type requestBody struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByLogin(body.Login)
	if err != nil || user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, sessionID, err := h.issueCredentials(ctx, user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "token": token, "session_id": sessionID}, 1, gin.H{})
}

// ApiLogout drops the session.
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Security CookieAuth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /api/users/logout [post]
func (h *Handler) ApiLogout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
		_ = h.SessionService.Delete(ctx.Request.Context(), sessionID)
	}

	ctx.SetCookie("session_id", "", -1, "/", "", false, true)

	jsonResponse(ctx, gin.H{"message": "logged out"}, 1, gin.H{})
}

// ApiGetProfile returns the current user.
func (h *Handler) ApiGetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	jsonResponse(ctx, gin.H{"user": user, "is_admin": user.IsAdmin}, 1, gin.H{})
}

// ApiUpdateProfile updates login/phone of the current user.
func (h *Handler) ApiUpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	type requestBody struct {
		Login *string `json:"login,omitempty"`
		Phone *string `json:"phone,omitempty"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	fields := map[string]interface{}{}
	if body.Login != nil {
		fields["login"] = *body.Login
	}
	if body.Phone != nil {
		fields["phone"] = *body.Phone
	}

	if len(fields) > 0 {
		if err := h.Repository.UpdateUser(userID, fields); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	user, _ := h.Repository.GetUserByID(userID)
	jsonResponse(ctx, gin.H{"user": user}, 1, gin.H{})
}
