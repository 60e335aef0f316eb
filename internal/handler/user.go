package handler

import (
	"errors"
	"net/http"
	"strings"

	"daily-diet/internal/logging"
	"daily-diet/internal/models"
	"daily-diet/internal/store"
	"daily-diet/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration and the current-user endpoint.
type UserHandler struct {
	Users      store.UserStore
	BcryptCost int
	Log        logging.Logger
}

func NewUserHandler(users store.UserStore, bcryptCost int, log logging.Logger) *UserHandler {
	if bcryptCost <= 0 {
		bcryptCost = util.DefaultBcryptCost
	}
	return &UserHandler{
		Users:      users,
		BcryptCost: bcryptCost,
		Log:        log,
	}
}

type registerReq struct {
	Name     string `json:"name" binding:"required,max=128"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
}

func userResp(u *models.User) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}

// Register creates an account. Duplicate emails get 400 and leave the
// existing account untouched.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidBody)
		return
	}

	req.Name = strings.TrimSpace(req.Name)

	if err := util.ValidateName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidBody)
		return
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidBody)
		return
	}

	ctx := c.Request.Context()

	_, err := h.Users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		util.Error(c, http.StatusBadRequest, util.MsgEmailInUse)
		return
	case !errors.Is(err, store.ErrNotFound):
		h.Log.Error(ctx, "register: check email", "error", err)
		util.ServerError(c)
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		h.Log.Error(ctx, "register: hash password", "error", err)
		util.ServerError(c)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.Users.Create(ctx, &user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, store.ErrEmailTaken) {
			util.Error(c, http.StatusBadRequest, util.MsgEmailInUse)
			return
		}
		h.Log.Error(ctx, "register: create user", "error", err)
		util.ServerError(c)
		return
	}

	h.Log.Info(ctx, "user registered", "user_id", user.ID)
	util.JSON(c, http.StatusCreated, util.Response{"user": userResp(&user)})
}

// Me returns the account behind the current session.
func (h *UserHandler) Me(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// token outlived its account
			util.AbortUnauthorized(c)
			return
		}
		h.Log.Error(ctx, "me: find user", "user_id", claims.UserID, "error", err)
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"user": userResp(user)})
}
