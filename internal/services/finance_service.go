package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNegativeAmount rejects negative expense amounts; zero is allowed.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// FinancialSummary is the full aggregation for one partnership. Projected
// revenue is a planning estimate (total area × yield × market price), not a
// ledger fact.
type FinancialSummary struct {
	TotalExpenses      decimal.Decimal                        `json:"total_expenses"`
	ExpenseBreakdown   map[models.ExpenseType]decimal.Decimal `json:"expense_breakdown"`
	EstimatedYield     decimal.Decimal                        `json:"estimated_yield"`
	CurrentMarketPrice decimal.Decimal                        `json:"current_market_price"`
	ProjectedRevenue   decimal.Decimal                        `json:"projected_revenue"`
}

// FinanceService records expenses and computes per-partnership summaries.
type FinanceService struct {
	recordRepo      repository.FinancialRecordRepository
	plotRepo        repository.FarmPlotRepository
	partnershipRepo repository.PartnershipRepository

	estimatedYield     decimal.Decimal
	currentMarketPrice decimal.Decimal
}

// NewFinanceService creates a new FinanceService. Yield is in tons per
// hectare, price in currency per ton.
func NewFinanceService(
	recordRepo repository.FinancialRecordRepository,
	plotRepo repository.FarmPlotRepository,
	partnershipRepo repository.PartnershipRepository,
	estimatedYield decimal.Decimal,
	currentMarketPrice decimal.Decimal,
) *FinanceService {
	return &FinanceService{
		recordRepo:         recordRepo,
		plotRepo:           plotRepo,
		partnershipRepo:    partnershipRepo,
		estimatedYield:     estimatedYield,
		currentMarketPrice: currentMarketPrice,
	}
}

// CreateFinancialRecordInput represents parameters to record an expense.
type CreateFinancialRecordInput struct {
	PartnershipID   uint64
	ExpenseType     models.ExpenseType
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time
	ReceiptURL      *string
}

// CreateFinancialRecord validates the partnership reference and records the
// expense.
func (s *FinanceService) CreateFinancialRecord(input CreateFinancialRecordInput) (*models.FinancialRecord, error) {
	if input.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	if _, err := s.partnershipRepo.FindByID(input.PartnershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("failed to find partnership: %w", err)
	}

	record := &models.FinancialRecord{
		PartnershipID:   input.PartnershipID,
		ExpenseType:     input.ExpenseType,
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: input.TransactionDate,
		ReceiptURL:      input.ReceiptURL,
	}

	if err := s.recordRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create financial record: %w", err)
	}

	return record, nil
}

// ComputeFinancialSummary aggregates a partnership's expenses by type and
// projects revenue from the total plot area. The computation is read-only:
// repeated calls with unchanged data return identical output.
func (s *FinanceService) ComputeFinancialSummary(partnershipID uint64) (*FinancialSummary, error) {
	if _, err := s.partnershipRepo.FindByID(partnershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("failed to find partnership: %w", err)
	}

	records, err := s.recordRepo.ListByPartnership(partnershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}

	totalExpenses := decimal.Zero
	breakdown := make(map[models.ExpenseType]decimal.Decimal)
	for _, record := range records {
		totalExpenses = totalExpenses.Add(record.Amount)
		breakdown[record.ExpenseType] = breakdown[record.ExpenseType].Add(record.Amount)
	}

	plots, err := s.plotRepo.ListByPartnership(partnershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farm plots: %w", err)
	}

	totalArea := decimal.Zero
	for _, plot := range plots {
		totalArea = totalArea.Add(plot.AreaHectares)
	}

	projectedRevenue := totalArea.Mul(s.estimatedYield).Mul(s.currentMarketPrice)

	return &FinancialSummary{
		TotalExpenses:      totalExpenses,
		ExpenseBreakdown:   breakdown,
		EstimatedYield:     s.estimatedYield,
		CurrentMarketPrice: s.currentMarketPrice,
		ProjectedRevenue:   projectedRevenue,
	}, nil
}
