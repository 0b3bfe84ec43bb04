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
		// Project indexes for status filtering and soft-delete scans
		{"projects", "idx_projects_status", "status"},
		{"projects", "idx_projects_is_deleted", "is_deleted"},

		// Task indexes for filtering
		{"tasks", "idx_tasks_project_id", "project_id"},
		{"tasks", "idx_tasks_assigned_to", "assigned_to"},
		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_is_deleted", "is_deleted"},

		// Membership lookups by either side of the relation
		{"user_project_roles", "idx_user_project_roles_user_id", "user_id"},
		{"user_project_roles", "idx_user_project_roles_project_id", "project_id"},
		{"user_project_roles", "idx_user_project_roles_role", "role"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
