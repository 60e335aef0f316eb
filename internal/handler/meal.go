package handler

import (
	"net/http"

	"daily-diet/internal/diet"
	"daily-diet/internal/logging"
	"daily-diet/internal/models"
	"daily-diet/internal/store"
	"daily-diet/internal/util"

	"github.com/gin-gonic/gin"
)

// MealHandler handles the meal endpoints. Every query is scoped by the
// user id from the verified session, never by anything in the request.
type MealHandler struct {
	Meals store.MealStore
	Log   logging.Logger
}

func NewMealHandler(meals store.MealStore, log logging.Logger) *MealHandler {
	return &MealHandler{
		Meals: meals,
		Log:   log,
	}
}

// ---------- request ----------

// Pointers so that "" is accepted but a missing field is not.
type mealReq struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	InDiet      string  `json:"inDiet"` // "T" / "F", default "F"
}

// bindMeal parses and validates the body, answering 400 on failure.
func bindMeal(c *gin.Context) (store.MealUpdate, bool) {
	var req mealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidBody)
		return store.MealUpdate{}, false
	}
	inDiet, err := util.ParseInDiet(req.InDiet)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidBody)
		return store.MealUpdate{}, false
	}
	if util.ValidateMealName(*req.Name) != nil || util.ValidateDescription(*req.Description) != nil {
		util.Error(c, http.StatusBadRequest, util.MsgInvalidBody)
		return store.MealUpdate{}, false
	}
	return store.MealUpdate{
		Name:        *req.Name,
		Description: *req.Description,
		InDiet:      inDiet,
	}, true
}

// ---------- handlers ----------

// ListMeals returns every meal of the user in creation order.
func (h *MealHandler) ListMeals(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	meals, err := h.Meals.ListByOwner(ctx, claims.UserID)
	if err != nil {
		h.Log.Error(ctx, "list meals", "user_id", claims.UserID, "error", err)
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"meals": meals})
}

// GetMeal returns {"meal": [...]} with zero or one element.
func (h *MealHandler) GetMeal(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	mealID := c.Param("id")
	meals, err := h.Meals.FindByOwner(ctx, claims.UserID, mealID)
	if err != nil {
		h.Log.Error(ctx, "get meal", "user_id", claims.UserID, "meal_id", mealID, "error", err)
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusOK, util.Response{"meal": meals})
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	fields, ok := bindMeal(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	meal := models.Meal{
		UserID:      claims.UserID,
		Name:        fields.Name,
		Description: fields.Description,
		InDiet:      fields.InDiet,
	}
	if err := h.Meals.Create(ctx, &meal); err != nil {
		h.Log.Error(ctx, "create meal", "user_id", claims.UserID, "error", err)
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusCreated, nil)
}

// UpdateMeal overwrites the meal if the user owns it. A meal that does not
// exist or belongs to someone else is a silent no-op.
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	fields, ok := bindMeal(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	mealID := c.Param("id")
	n, err := h.Meals.UpdateByOwner(ctx, claims.UserID, mealID, fields)
	if err != nil {
		h.Log.Error(ctx, "update meal", "user_id", claims.UserID, "meal_id", mealID, "error", err)
		util.ServerError(c)
		return
	}
	if n == 0 {
		h.Log.Debug(ctx, "update matched no meal", "user_id", claims.UserID, "meal_id", mealID)
	}

	util.JSON(c, http.StatusCreated, nil)
}

// DeleteMeal removes the meal if the user owns it, silently otherwise.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	mealID := c.Param("id")
	n, err := h.Meals.DeleteByOwner(ctx, claims.UserID, mealID)
	if err != nil {
		h.Log.Error(ctx, "delete meal", "user_id", claims.UserID, "meal_id", mealID, "error", err)
		util.ServerError(c)
		return
	}
	if n == 0 {
		h.Log.Debug(ctx, "delete matched no meal", "user_id", claims.UserID, "meal_id", mealID)
	}

	util.JSON(c, http.StatusOK, nil)
}

// GetMetrics returns the totals and the best in-diet streak.
func (h *MealHandler) GetMetrics(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	meals, err := h.Meals.ListByOwner(ctx, claims.UserID)
	if err != nil {
		h.Log.Error(ctx, "meal metrics", "user_id", claims.UserID, "error", err)
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, diet.ComputeMetrics(meals))
}
