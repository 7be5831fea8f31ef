package models

import "time"

// Backup run statuses
const (
	BackupStatusCompleted = "Completed"
	BackupStatusFailed    = "Failed"
)

// Backup represents one database backup run
type Backup struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	SizeBytes int64     `json:"size_bytes"`
	Checksum  string    `json:"checksum"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
