package models

import "time"

// AttackRun records one completed attack demonstration. Runs are
// bookkeeping only; no attack resumes from a stored run.
type AttackRun struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Kind      string    `gorm:"not null;index" json:"kind"` // suffix, mode, cut-and-paste, bit-flip
	Algorithm string    `json:"algorithm"`
	Params    JSONB     `gorm:"type:jsonb;default:'{}'::jsonb" json:"params"`
	ResultHex string    `json:"result_hex"`
	Queries   int       `json:"queries"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

func (AttackRun) TableName() string { return "attack_runs" }

type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID     *string   `gorm:"type:uuid" json:"run_id,omitempty"`
	Action    string    `gorm:"not null" json:"action"`
	Metadata  JSONB     `gorm:"type:jsonb;default:'{}'::jsonb" json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}
