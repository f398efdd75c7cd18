package postgres

import (
	"database/sql"
	"time"

	"github.com/bankmesh/bank-services/internal/domain"
)

// auditColumns is the trailing column list shared by every table.
const auditColumns = "created_at, created_by, updated_at, updated_by"

// auditScan collects the audit columns of a row. updated_at and updated_by
// stay NULL until the first update.
type auditScan struct {
	updatedAt sql.NullTime
	updatedBy sql.NullString
}

func (s *auditScan) dest(a *domain.Audit) []any {
	return []any{&a.CreatedAt, &a.CreatedBy, &s.updatedAt, &s.updatedBy}
}

func (s *auditScan) apply(a *domain.Audit) {
	if s.updatedAt.Valid {
		a.UpdatedAt = s.updatedAt.Time
	}
	if s.updatedBy.Valid {
		a.UpdatedBy = s.updatedBy.String
	}
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
