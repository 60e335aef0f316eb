package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"daily-diet/internal/logging"
	"daily-diet/internal/models"
	"daily-diet/internal/store"
	"daily-diet/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Name", "Description", "In diet", "Created at", "Updated at"}

// ExportHandler downloads the user's meals as CSV or XLSX.
type ExportHandler struct {
	Meals store.MealStore
	Log   logging.Logger
	Now   func() time.Time
}

func NewExportHandler(meals store.MealStore, log logging.Logger) *ExportHandler {
	return &ExportHandler{
		Meals: meals,
		Log:   log,
		Now:   time.Now,
	}
}

func exportRow(m *models.Meal) []string {
	return []string{
		m.Name,
		m.Description,
		m.InDietFlag(),
		m.CreatedAt.UTC().Format(time.RFC3339),
		m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// loadMeals fetches the caller's meals or answers 401/500.
func (h *ExportHandler) loadMeals(c *gin.Context) ([]models.Meal, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		return nil, false
	}

	ctx := c.Request.Context()
	meals, err := h.Meals.ListByOwner(ctx, claims.UserID)
	if err != nil {
		h.Log.Error(ctx, "export meals", "user_id", claims.UserID, "error", err)
		util.ServerError(c)
		return nil, false
	}
	return meals, true
}

func (h *ExportHandler) filename(ext string) string {
	return fmt.Sprintf("meals_%s.%s", h.Now().Format("20060102"), ext)
}

// ExportCSV writes the meals as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	meals, ok := h.loadMeals(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename("csv")))
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	_ = writer.Write(exportHeaders)
	for i := range meals {
		_ = writer.Write(exportRow(&meals[i]))
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		// headers are already sent; all we can do is log
		h.Log.Warn(c.Request.Context(), "export csv: write", "error", err)
	}
}

// ExportXLSX writes the meals as a single-sheet workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	meals, ok := h.loadMeals(c)
	if !ok {
		return
	}

	f, err := buildWorkbook(meals)
	if err != nil {
		h.Log.Error(c.Request.Context(), "export xlsx: build", "error", err)
		util.ServerError(c)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename("xlsx")))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		h.Log.Warn(c.Request.Context(), "export xlsx: write", "error", err)
	}
}

const mealSheet = "Meals"

func buildWorkbook(meals []models.Meal) (*excelize.File, error) {
	f := excelize.NewFile()

	// rename the default sheet instead of adding a second one
	if err := f.SetSheetName(f.GetSheetName(0), mealSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(mealSheet, "A1", &exportHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := range meals {
		row := exportRow(&meals[i])
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(mealSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(mealSheet, "A", "A", 20)
	_ = f.SetColWidth(mealSheet, "B", "B", 40)
	_ = f.SetColWidth(mealSheet, "C", "C", 8)
	_ = f.SetColWidth(mealSheet, "D", "E", 22)

	return f, nil
}
