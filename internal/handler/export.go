package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/23F3001886/CleanEarth/internal/models"
	"github.com/23F3001886/CleanEarth/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler produces the admin activity report. Routes using it sit
// behind RequireRole(admin).
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// ExportXLSX writes a workbook with one sheet of waste requests and one of
// camps.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	var requests []models.Request
	if err := h.DB.Order("created_at DESC").Find(&requests).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	var camps []models.Campaign
	if err := h.DB.Preload("Request").Preload("Volunteers").
		Order("created_at DESC").Find(&camps).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to load campaigns")
		return
	}

	f := excelize.NewFile()

	reqSheet := "Requests"
	index, err := f.NewSheet(reqSheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	reqHeaders := []string{"ID", "Email", "Pincode", "Address", "Description", "Status", "Created"}
	for i, hdr := range reqHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(reqSheet, cell, hdr)
	}
	for idx, r := range requests {
		row := idx + 2
		f.SetCellValue(reqSheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(reqSheet, fmt.Sprintf("B%d", row), r.Email)
		f.SetCellValue(reqSheet, fmt.Sprintf("C%d", row), r.Pincode)
		f.SetCellValue(reqSheet, fmt.Sprintf("D%d", row), r.Address)
		f.SetCellValue(reqSheet, fmt.Sprintf("E%d", row), r.Description)
		f.SetCellValue(reqSheet, fmt.Sprintf("F%d", row), r.Status)
		f.SetCellValue(reqSheet, fmt.Sprintf("G%d", row), r.CreatedAt.Format("2006-01-02"))
	}
	f.SetColWidth(reqSheet, "B", "B", 25)
	f.SetColWidth(reqSheet, "D", "E", 35)

	campSheet := "Camps"
	if _, err := f.NewSheet(campSheet); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sheet")
		return
	}
	campHeaders := []string{"ID", "Name", "Date", "Status", "Capacity", "Volunteers", "Waste Collected"}
	for i, hdr := range campHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(campSheet, cell, hdr)
	}
	for idx, camp := range camps {
		row := idx + 2
		f.SetCellValue(campSheet, fmt.Sprintf("A%d", row), camp.ID)
		f.SetCellValue(campSheet, fmt.Sprintf("B%d", row), camp.Name)
		f.SetCellValue(campSheet, fmt.Sprintf("C%d", row), camp.Date.Format("2006-01-02"))
		f.SetCellValue(campSheet, fmt.Sprintf("D%d", row), camp.Status)
		f.SetCellValue(campSheet, fmt.Sprintf("E%d", row), camp.NumVolunteers)
		f.SetCellValue(campSheet, fmt.Sprintf("F%d", row), len(camp.Volunteers))
		f.SetCellValue(campSheet, fmt.Sprintf("G%d", row), camp.WasteCollected)
	}
	f.SetColWidth(campSheet, "B", "B", 25)
	f.SetColWidth(campSheet, "G", "G", 30)

	// drop the default sheet so Requests opens first
	_ = f.DeleteSheet("Sheet1")

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"cleanearth_report_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to export report")
	}
}
