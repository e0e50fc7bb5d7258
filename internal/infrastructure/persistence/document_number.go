package persistence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// nextDocumentNumber issues the next PREFIX-YYYYMMDD-NNNN number for the
// given day by reading the highest existing number for that day. Callers
// run inside a transaction; the unique index on the number column turns a
// lost race into a constraint violation instead of a duplicate.
func nextDocumentNumber(ctx context.Context, db *gorm.DB, model any, column, prefix string, day time.Time) (string, error) {
	dayPrefix := fmt.Sprintf("%s-%s-", prefix, day.Format("20060102"))

	var last string
	err := db.WithContext(ctx).
		Model(model).
		Select(column).
		Where(column+" LIKE ?", dayPrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		suffix := strings.TrimPrefix(last, dayPrefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return "", fmt.Errorf("malformed document number %q: %w", last, err)
		}
		seq = n + 1
	}

	return fmt.Sprintf("%s%04d", dayPrefix, seq), nil
}
