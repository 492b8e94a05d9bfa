package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Dashboard fan-out queries
		{"partnerships", "idx_partnerships_partner_id", "partner_id"},
		{"farm_plots", "idx_farm_plots_partnership_id", "partnership_id"},
		{"farm_activities", "idx_farm_activities_farm_plot_id", "farm_plot_id"},
		{"farm_activities", "idx_farm_activities_created_at", "created_at"},
		{"financial_records", "idx_financial_records_partnership_id", "partnership_id"},
		{"notifications", "idx_notifications_user_id", "user_id"},
		{"risk_alerts", "idx_risk_alerts_farm_plot_id", "farm_plot_id"},

		// Chat history lookups run in both directions
		{"chat_messages", "idx_chat_messages_sender_id", "sender_id"},
		{"chat_messages", "idx_chat_messages_receiver_id", "receiver_id"},

		// Active event listing sorts on event_date
		{"community_events", "idx_community_events_event_date", "event_date"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			fmt.Printf("Index %s already exists, skipping\n", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
