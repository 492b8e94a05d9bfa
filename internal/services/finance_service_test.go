package services

import (
	"testing"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFinanceService(db *gorm.DB, yield, price string) *FinanceService {
	return NewFinanceService(
		repository.NewFinancialRecordRepository(db),
		repository.NewFarmPlotRepository(db),
		repository.NewPartnershipRepository(db),
		decimal.RequireFromString(yield),
		decimal.RequireFromString(price),
	)
}

func TestCreateFinancialRecord_Success(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	svc := newFinanceService(db, "5", "12000")

	record, err := svc.CreateFinancialRecord(CreateFinancialRecordInput{
		PartnershipID:   partnership.ID,
		ExpenseType:     models.ExpenseSeeds,
		Amount:          decimal.RequireFromString("2500.50"),
		Description:     "Benih jagung hibrida",
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotZero(t, record.ID)
	require.True(t, record.Amount.Equal(decimal.RequireFromString("2500.50")))
}

func TestCreateFinancialRecord_ZeroAmountAllowed(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	svc := newFinanceService(db, "5", "12000")

	_, err := svc.CreateFinancialRecord(CreateFinancialRecordInput{
		PartnershipID:   partnership.ID,
		ExpenseType:     models.ExpenseOther,
		Amount:          decimal.Zero,
		Description:     "waived fee",
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestCreateFinancialRecord_NegativeAmount(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	svc := newFinanceService(db, "5", "12000")

	_, err := svc.CreateFinancialRecord(CreateFinancialRecordInput{
		PartnershipID:   partnership.ID,
		ExpenseType:     models.ExpenseLabor,
		Amount:          decimal.RequireFromString("-1"),
		Description:     "bad entry",
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrNegativeAmount)
}

func TestCreateFinancialRecord_PartnershipNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newFinanceService(db, "5", "12000")

	_, err := svc.CreateFinancialRecord(CreateFinancialRecordInput{
		PartnershipID:   999,
		ExpenseType:     models.ExpenseSeeds,
		Amount:          decimal.RequireFromString("100"),
		Description:     "orphan",
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrPartnershipNotFound)

	var count int64
	require.NoError(t, db.Model(&models.FinancialRecord{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestComputeFinancialSummary_ExpenseBreakdown(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	seedFinancialRecord(t, db, partnership.ID, models.ExpenseSeeds, "5000")
	seedFinancialRecord(t, db, partnership.ID, models.ExpenseSeeds, "2000")
	seedFinancialRecord(t, db, partnership.ID, models.ExpenseFertilizer, "3000")
	svc := newFinanceService(db, "5", "12000")

	summary, err := svc.ComputeFinancialSummary(partnership.ID)
	require.NoError(t, err)

	require.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("10000")))
	require.Len(t, summary.ExpenseBreakdown, 2)
	require.True(t, summary.ExpenseBreakdown[models.ExpenseSeeds].Equal(decimal.RequireFromString("7000")))
	require.True(t, summary.ExpenseBreakdown[models.ExpenseFertilizer].Equal(decimal.RequireFromString("3000")))
}

func TestComputeFinancialSummary_ProjectedRevenue(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	seedFarmPlot(t, db, partnership.ID, "2.5")
	seedFarmPlot(t, db, partnership.ID, "1.5")
	svc := newFinanceService(db, "5", "12000")

	summary, err := svc.ComputeFinancialSummary(partnership.ID)
	require.NoError(t, err)

	// (2.5 + 1.5) ha * 5 t/ha * 12000/t
	require.True(t, summary.ProjectedRevenue.Equal(decimal.RequireFromString("240000")))
	require.True(t, summary.EstimatedYield.Equal(decimal.RequireFromString("5")))
	require.True(t, summary.CurrentMarketPrice.Equal(decimal.RequireFromString("12000")))
}

func TestComputeFinancialSummary_EmptyPartnership(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	svc := newFinanceService(db, "5", "12000")

	summary, err := svc.ComputeFinancialSummary(partnership.ID)
	require.NoError(t, err)

	require.True(t, summary.TotalExpenses.IsZero())
	require.Empty(t, summary.ExpenseBreakdown)
	require.True(t, summary.ProjectedRevenue.IsZero())
}

func TestComputeFinancialSummary_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	partner := seedUser(t, db, "partner@example.com", models.RolePartner)
	partnership := seedPartnership(t, db, partner.ID)
	seedFinancialRecord(t, db, partnership.ID, models.ExpenseEquipment, "1234.56")
	seedFarmPlot(t, db, partnership.ID, "3.0")
	svc := newFinanceService(db, "5", "12000")

	first, err := svc.ComputeFinancialSummary(partnership.ID)
	require.NoError(t, err)
	second, err := svc.ComputeFinancialSummary(partnership.ID)
	require.NoError(t, err)

	require.True(t, first.TotalExpenses.Equal(second.TotalExpenses))
	require.True(t, first.ProjectedRevenue.Equal(second.ProjectedRevenue))
	require.Equal(t, len(first.ExpenseBreakdown), len(second.ExpenseBreakdown))
}

func TestComputeFinancialSummary_PartnershipNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newFinanceService(db, "5", "12000")

	_, err := svc.ComputeFinancialSummary(42)
	require.ErrorIs(t, err, ErrPartnershipNotFound)
}
