package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"daily-diet/internal/logging"
	"daily-diet/internal/middleware"
	"daily-diet/internal/session"
	"daily-diet/internal/store"
	"daily-diet/internal/util"

	"github.com/gin-gonic/gin"
)

// TokenIssuer is the part of session.Codec the login flow needs.
type TokenIssuer interface {
	Issue(userID, displayName string) (string, error)
	TTL() time.Duration
}

// CookieOptions controls how the session cookie is written.
type CookieOptions struct {
	Name   string
	Secure bool
}

// AuthHandler handles login and logout.
type AuthHandler struct {
	Users  store.UserStore
	Issuer TokenIssuer
	Cookie CookieOptions
	Log    logging.Logger
}

func NewAuthHandler(users store.UserStore, issuer TokenIssuer, cookie CookieOptions, log logging.Logger) *AuthHandler {
	return &AuthHandler{
		Users:  users,
		Issuer: issuer,
		Cookie: cookie,
		Log:    log,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials and sets the session cookie.
// Unknown email and wrong password get the same 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.MsgLoginError)
		return
	}

	ctx := c.Request.Context()
	email := strings.TrimSpace(req.Email)

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusUnauthorized, util.MsgUnauthorized)
			return
		}
		h.Log.Error(ctx, "login: find user", "error", err)
		util.ServerError(c)
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, util.MsgUnauthorized)
		return
	}

	token, err := h.Issuer.Issue(user.ID, user.Name)
	if err != nil {
		h.Log.Error(ctx, "login: issue token", "user_id", user.ID, "error", err)
		util.ServerError(c)
		return
	}

	h.setSessionCookie(c, token, int(h.Issuer.TTL()/time.Second))
	h.Log.Info(ctx, "user logged in", "user_id", user.ID)
	c.Status(http.StatusOK)
}

// Logout expires the session cookie. The token itself stays valid until
// its exp; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	util.JSON(c, http.StatusOK, nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie.Name, value, maxAge, "/", "", h.Cookie.Secure, true)
}

// Home is the protected root route; it answers 200 with no body.
func Home(c *gin.Context) {
	c.Status(http.StatusOK)
}

// currentClaims fetches the verified claims or answers 401.
func currentClaims(c *gin.Context) (*session.Claims, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		util.AbortUnauthorized(c)
		return nil, false
	}
	return claims, true
}
