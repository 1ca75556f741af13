package entities

import "time"

// CompletedPicklist is the persisted completion record.
//
// Storage model (Postgres, completed_picklists):
//   - UNIQUE (operador_id, picklist_id)
//   - re-completion updates CompletedAt instead of inserting a second row
//
// Records are never deleted by this service.
type CompletedPicklist struct {
	OperadorID  int64     `json:"operador_id"`
	PicklistID  string    `json:"picklist_id"`
	CompletedAt time.Time `json:"completed_at"`
}
