package repository

import (
	"database/sql"
	"strings"
	"time"
)

// dateLayout is the storage form of local calendar dates (completed_on,
// log_date). Lexical order equals chronological order.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseNullableDate parses a NULL-able date column; unparsable values read
// as nil rather than failing the whole scan.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := parseDate(s.String)
	if err != nil {
		return nil
	}
	return &t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The driver exposes no typed error for this, so match the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
