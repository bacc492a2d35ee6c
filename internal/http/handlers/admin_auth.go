package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitoapteka.kz/app/internal/http/middleware"
	"fitoapteka.kz/app/internal/http/validation"
	"fitoapteka.kz/app/internal/modules/admin"
	"fitoapteka.kz/app/internal/shared/apperr"
)

type AdminAuthHandler struct {
	login  *admin.Login
	secure bool
}

func NewAdminAuthHandler(l *admin.Login, secureCookie bool) *AdminAuthHandler {
	return &AdminAuthHandler{login: l, secure: secureCookie}
}

type adminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login: POST /api/admin/login {"password": "..."}
// Returns the token and also sets it as an HttpOnly cookie.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	if !h.login.Enabled() {
		middleware.Fail(c, apperr.UnavailableErr("admin_login_disabled"))
		return
	}

	var in adminLoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("invalid_body", validation.FromBindError(err, &in)))
		return
	}

	res, err := h.login.Login(c.Request.Context(), in.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, res.Token, maxAge, "/", "", h.secure, true)
	c.JSON(http.StatusOK, res)
}
