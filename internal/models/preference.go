package models

import (
	"database/sql"
	"time"
)

// UserPreference is the user_preferences row. NULL columns are unset fields.
type UserPreference struct {
	UserID       string         `db:"user_id"`
	CurrencyCode sql.NullString `db:"currency_code"`
	Locale       sql.NullString `db:"locale"`
	Timezone     sql.NullString `db:"timezone"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
