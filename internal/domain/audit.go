package domain

import "time"

// Auditors identify which service wrote a row.
const (
	AuditorAccounts = "ACCOUNTS_MS"
	AuditorCards    = "CARDS_MS"
	AuditorLoans    = "LOANS_MS"
)

// Audit holds the bookkeeping columns carried by every persisted entity.
// UpdatedAt and UpdatedBy stay zero until the first update.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

// MarkCreated stamps the creation columns.
func (a *Audit) MarkCreated(by string, at time.Time) {
	a.CreatedAt = at.UTC()
	a.CreatedBy = by
}

// MarkUpdated stamps the update columns.
func (a *Audit) MarkUpdated(by string, at time.Time) {
	a.UpdatedAt = at.UTC()
	a.UpdatedBy = by
}
