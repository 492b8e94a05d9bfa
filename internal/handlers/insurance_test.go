package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupInsuranceRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db := setupTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewInsuranceHandler(services.NewInsuranceService(
		repository.NewInsurancePolicyRepository(db),
		repository.NewPartnershipRepository(db),
	))
	r.POST("/api/insurance-policies", handler.CreateInsurancePolicy)

	return db, r
}

func insurancePayload(partnershipID uint64, policyNumber string) gin.H {
	return gin.H{
		"partnership_id":   partnershipID,
		"policy_number":    policyNumber,
		"coverage_amount":  100000,
		"premium_amount":   2500,
		"start_date":       "2024-01-01T00:00:00Z",
		"end_date":         "2024-12-31T00:00:00Z",
		"coverage_details": "Gagal panen akibat banjir dan kekeringan",
	}
}

func TestCreateInsurancePolicy_Success(t *testing.T) {
	db, r := setupInsuranceRouter(t)
	partner := createTestUser(t, db, "partner@example.com", models.RolePartner)
	partnership := createTestPartnership(t, db, partner.ID)

	w := postJSON(t, r, "/api/insurance-policies", insurancePayload(partnership.ID, "POL-2024-0001"))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "POL-2024-0001", resp["policy_number"])
	require.Equal(t, true, resp["is_active"])
}

func TestCreateInsurancePolicy_DuplicatePolicyNumber(t *testing.T) {
	db, r := setupInsuranceRouter(t)
	partner := createTestUser(t, db, "partner@example.com", models.RolePartner)
	partnership := createTestPartnership(t, db, partner.ID)

	first := postJSON(t, r, "/api/insurance-policies", insurancePayload(partnership.ID, "POL-2024-0001"))
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, r, "/api/insurance-policies", insurancePayload(partnership.ID, "POL-2024-0001"))
	require.Equal(t, http.StatusConflict, second.Code)
}

func TestCreateInsurancePolicy_PartnershipNotFound(t *testing.T) {
	_, r := setupInsuranceRouter(t)

	w := postJSON(t, r, "/api/insurance-policies", insurancePayload(999, "POL-2024-0002"))

	require.Equal(t, http.StatusNotFound, w.Code)
}
