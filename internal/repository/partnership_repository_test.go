package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB backs a GORM handle with sqlmock so tests can assert the SQL
// the repositories emit.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })

	return db, mock
}

func TestFindFirstByPartnerID_OrdersByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartnershipRepository(db)

	mock.ExpectQuery(`SELECT \* FROM .partnerships. WHERE partner_id = \? ORDER BY id ASC`).
		WithArgs(uint64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "partner_id"}).AddRow(3, 7))

	partnership, err := repo.FindFirstByPartnerID(7)
	require.NoError(t, err)
	require.Equal(t, uint64(3), partnership.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindFirstByPartnerID_NoRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPartnershipRepository(db)

	mock.ExpectQuery(`SELECT \* FROM .partnerships. WHERE partner_id = \?`).
		WithArgs(uint64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindFirstByPartnerID(7)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRiskAlertList_OrdersBySeverityThenRecency(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRiskAlertRepository(db)

	mock.ExpectQuery(`SELECT \* FROM .risk_alerts. ORDER BY severity_level DESC, created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "severity_level"}).
			AddRow(1, 5).
			AddRow(2, 3))

	alerts, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	require.Equal(t, 5, alerts[0].SeverityLevel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRiskAlertListByFarmPlots_EmptySliceSkipsQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRiskAlertRepository(db)

	alerts, err := repo.ListByFarmPlots(nil)
	require.NoError(t, err)
	require.Empty(t, alerts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFarmActivityListRecent_EmptySliceSkipsQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFarmActivityRepository(db)

	activities, err := repo.ListRecentByFarmPlots(nil, 10)
	require.NoError(t, err)
	require.Empty(t, activities)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatListConversation_MatchesBothDirections(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChatMessageRepository(db)

	mock.ExpectQuery(`\(sender_id = \? AND receiver_id = \?\) OR \(sender_id = \? AND receiver_id = \?\).* ORDER BY created_at ASC`).
		WithArgs(uint64(1), uint64(2), uint64(2), uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "message"}).
			AddRow(1, 1, 2, "hello").
			AddRow(2, 2, 1, "hi"))

	messages, err := repo.ListConversation(1, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, "hello", messages[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}
