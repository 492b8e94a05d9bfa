package services

import (
	"testing"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Partnership{},
		&models.FarmPlot{},
		&models.FarmActivity{},
		&models.FinancialRecord{},
		&models.InsurancePolicy{},
		&models.RiskAlert{},
		&models.CommunityEvent{},
		&models.Notification{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashedpassword",
		FullName:     "Test User",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPartnership(t *testing.T, db *gorm.DB, partnerID uint64) *models.Partnership {
	t.Helper()

	partnership := &models.Partnership{
		PartnerID:        partnerID,
		InvestmentAmount: decimal.RequireFromString("50000"),
		StartDate:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		EstimatedReturn:  decimal.RequireFromString("65000"),
		CurrentProgress:  decimal.Zero,
		CurrentPhase:     models.DefaultPartnershipPhase,
		Status:           models.PartnershipStatusPending,
	}
	require.NoError(t, db.Create(partnership).Error)
	return partnership
}

func seedFarmPlot(t *testing.T, db *gorm.DB, partnershipID uint64, area string) *models.FarmPlot {
	t.Helper()

	plot := &models.FarmPlot{
		PartnershipID:       partnershipID,
		PlotName:            "Blok A",
		LocationCoordinates: "-6.2088,106.8456",
		AreaHectares:        decimal.RequireFromString(area),
	}
	require.NoError(t, db.Create(plot).Error)
	return plot
}

func seedFinancialRecord(t *testing.T, db *gorm.DB, partnershipID uint64, expenseType models.ExpenseType, amount string) *models.FinancialRecord {
	t.Helper()

	record := &models.FinancialRecord{
		PartnershipID:   partnershipID,
		ExpenseType:     expenseType,
		Amount:          decimal.RequireFromString(amount),
		Description:     "seed expense",
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(record).Error)
	return record
}
