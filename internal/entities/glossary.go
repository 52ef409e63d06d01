package entities

import "time"

// Snapshot is a point-in-time copy of a whole glossary.
type Snapshot struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Label       string          `gorm:"size:200" json:"label"`
	SourcePath  string          `gorm:"size:1024" json:"source_path,omitempty"`
	Words       int             `json:"words"`
	Definitions int             `json:"definitions"`
	Entries     []SnapshotEntry `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

// SnapshotEntry is one word::pos::definition record of a snapshot.
// Position preserves the canonical order the glossary was saved in.
type SnapshotEntry struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SnapshotID   uint   `gorm:"index;not null" json:"snapshot_id"`
	Position     int    `gorm:"not null" json:"position"`
	Word         string `gorm:"index;size:255;not null" json:"word"`
	PartOfSpeech string `gorm:"size:20;not null" json:"part_of_speech"`
	Definition   string `gorm:"type:text;not null" json:"definition"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}

func (SnapshotEntry) TableName() string {
	return "snapshot_entries"
}
