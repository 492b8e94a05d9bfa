package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRiskRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db := setupTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewRiskAlertHandler(services.NewRiskService(
		repository.NewRiskAlertRepository(db),
		repository.NewFarmPlotRepository(db),
	))
	r.POST("/api/risk-alerts", handler.CreateRiskAlert)
	r.GET("/api/risk-alerts", handler.GetRiskAlerts)

	return db, r
}

func seedAlert(t *testing.T, db *gorm.DB, plotID uint64, severity int, createdAt time.Time) *models.RiskAlert {
	t.Helper()

	alert := &models.RiskAlert{
		FarmPlotID:    plotID,
		RiskType:      models.RiskWeather,
		SeverityLevel: severity,
		Title:         "weather warning",
		Description:   "heavy rain forecast",
		AlertDate:     createdAt,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(alert).Error)
	return alert
}

func TestCreateRiskAlert_Success(t *testing.T) {
	db, r := setupRiskRouter(t)
	partner := createTestUser(t, db, "partner@example.com", models.RolePartner)
	partnership := createTestPartnership(t, db, partner.ID)
	plot := createTestFarmPlot(t, db, partnership.ID, "2.5")

	w := postJSON(t, r, "/api/risk-alerts", gin.H{
		"farm_plot_id":   plot.ID,
		"risk_type":      "pest",
		"severity_level": 4,
		"title":          "Serangan wereng",
		"description":    "Wereng coklat di petak timur",
		"alert_date":     "2024-03-01T00:00:00Z",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(4), resp["severity_level"])
	require.Equal(t, false, resp["is_resolved"])
}

func TestCreateRiskAlert_SeverityOutOfRange(t *testing.T) {
	db, r := setupRiskRouter(t)
	partner := createTestUser(t, db, "partner@example.com", models.RolePartner)
	partnership := createTestPartnership(t, db, partner.ID)
	plot := createTestFarmPlot(t, db, partnership.ID, "2.5")

	for _, severity := range []int{0, 6} {
		w := postJSON(t, r, "/api/risk-alerts", gin.H{
			"farm_plot_id":   plot.ID,
			"risk_type":      "pest",
			"severity_level": severity,
			"title":          "bad severity",
			"description":    "out of range",
			"alert_date":     "2024-03-01T00:00:00Z",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreateRiskAlert_PlotNotFound(t *testing.T) {
	_, r := setupRiskRouter(t)

	w := postJSON(t, r, "/api/risk-alerts", gin.H{
		"farm_plot_id":   999,
		"risk_type":      "flood",
		"severity_level": 5,
		"title":          "Banjir",
		"description":    "Sungai meluap",
		"alert_date":     "2024-03-01T00:00:00Z",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRiskAlerts_SeverityThenRecency(t *testing.T) {
	db, r := setupRiskRouter(t)
	partner := createTestUser(t, db, "partner@example.com", models.RolePartner)
	partnership := createTestPartnership(t, db, partner.ID)
	plot := createTestFarmPlot(t, db, partnership.ID, "2.5")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	older := seedAlert(t, db, plot.ID, 3, base)
	highest := seedAlert(t, db, plot.ID, 5, base.Add(time.Hour))
	newer := seedAlert(t, db, plot.ID, 3, base.Add(2*time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/risk-alerts", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RiskAlerts []models.RiskAlert `json:"risk_alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.RiskAlerts, 3)
	require.Equal(t, highest.ID, resp.RiskAlerts[0].ID)
	require.Equal(t, newer.ID, resp.RiskAlerts[1].ID)
	require.Equal(t, older.ID, resp.RiskAlerts[2].ID)
}

func TestGetRiskAlerts_FilterByFarmPlot(t *testing.T) {
	db, r := setupRiskRouter(t)
	partner := createTestUser(t, db, "partner@example.com", models.RolePartner)
	partnership := createTestPartnership(t, db, partner.ID)
	plotA := createTestFarmPlot(t, db, partnership.ID, "2.5")
	plotB := createTestFarmPlot(t, db, partnership.ID, "1.0")

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	seedAlert(t, db, plotA.ID, 2, base)
	wanted := seedAlert(t, db, plotB.ID, 4, base)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/risk-alerts?farm_plot_id="+uintToString(plotB.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RiskAlerts []models.RiskAlert `json:"risk_alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.RiskAlerts, 1)
	require.Equal(t, wanted.ID, resp.RiskAlerts[0].ID)
}

func TestGetRiskAlerts_InvalidFilter(t *testing.T) {
	_, r := setupRiskRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/risk-alerts?farm_plot_id=abc", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
