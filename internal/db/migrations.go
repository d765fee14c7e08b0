package db

import (
	"fmt"

	"gorm.io/gorm"
)

type migration struct {
	id    string
	apply func(tx *gorm.DB) error
}

// Every step is idempotent; the whole list runs on every startup.
var migrations = []migration{
	{id: "001_create_base_tables", apply: createBaseTables},
	{id: "002_drop_diet_history_foreign_key", apply: dropDietHistoryForeignKey},
}

// Timestamp columns need DATETIME affinity so the sqlite driver scans
// them back into time.Time. date_attempted stays TEXT: it is a plain
// YYYY-MM-DD date compared lexicographically.
func createBaseTables(tx *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS health_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL,
			weight REAL NOT NULL,
			height REAL NOT NULL,
			activity_level TEXT NOT NULL,
			health_goals TEXT NOT NULL,
			dietary_preferences TEXT NOT NULL,
			dietary_restrictions TEXT NOT NULL,
			allergies TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS diet_recommendations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			ingredients TEXT NOT NULL,
			nutritional_info TEXT NOT NULL,
			preparation_time INTEGER NOT NULL,
			difficulty_level TEXT NOT NULL,
			meal_type TEXT NOT NULL,
			recipe_instructions TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			is_personalized BOOLEAN NOT NULL,
			relevance_score REAL NOT NULL
		)`,
		// No foreign key on user_id: history entries may reference users
		// that have no profile yet.
		`CREATE TABLE IF NOT EXISTS diet_history (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			diet_item_id TEXT NOT NULL,
			date_attempted TEXT NOT NULL,
			rating INTEGER,
			notes TEXT,
			was_prepared BOOLEAN NOT NULL,
			meal_type TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			ingredients TEXT NOT NULL,
			nutritional_info_per_serving TEXT NOT NULL,
			preparation_time INTEGER NOT NULL,
			difficulty_level TEXT NOT NULL,
			meal_type TEXT NOT NULL,
			recipe_instructions TEXT NOT NULL,
			cuisine_type TEXT,
			seasonal BOOLEAN NOT NULL,
			tags TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create base tables: %w", err)
		}
	}
	return nil
}

// Earlier schema versions declared a foreign key from diet_history.user_id
// to health_profiles.user_id, which made it impossible to log an attempt
// before a profile existed. SQLite cannot drop a constraint in place, so
// the table is rebuilt without it: create new, copy rows, drop, rename.
func dropDietHistoryForeignKey(tx *gorm.DB) error {
	if !tx.Migrator().HasTable("diet_history") {
		return nil
	}

	fkCount, err := foreignKeyCount(tx, "diet_history")
	if err != nil {
		return fmt.Errorf("inspect diet_history foreign keys: %w", err)
	}
	if fkCount == 0 {
		return nil
	}

	steps := []string{
		`CREATE TABLE diet_history_new (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			diet_item_id TEXT NOT NULL,
			date_attempted TEXT NOT NULL,
			rating INTEGER,
			notes TEXT,
			was_prepared BOOLEAN NOT NULL,
			meal_type TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`INSERT INTO diet_history_new SELECT * FROM diet_history`,
		`DROP TABLE diet_history`,
		`ALTER TABLE diet_history_new RENAME TO diet_history`,
	}
	for _, stmt := range steps {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("rebuild diet_history: %w", err)
		}
	}
	return nil
}

func foreignKeyCount(tx *gorm.DB, table string) (int, error) {
	rows, err := tx.Raw(fmt.Sprintf("PRAGMA foreign_key_list(%s)", table)).Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	return count, rows.Err()
}
