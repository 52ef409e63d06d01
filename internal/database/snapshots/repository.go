// Package snapshots stores whole-glossary copies in the database.
//
// # Usage
//
//	repo := snapshots.NewRepository(db)
//	snap, err := repo.SaveSnapshot("nightly", "./glossary.txt", entries)
//	entries, err := repo.GetEntries(snap.ID)
package snapshots

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/glossary/internal/entities"
)

// ErrSnapshotNotFound is returned when the requested snapshot does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

const insertBatchSize = 500

// Repository handles all snapshot database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new snapshot repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveSnapshot stores entries as a new snapshot. Entry positions are assigned
// from slice order, so callers should pass entries in canonical order.
func (r *Repository) SaveSnapshot(label, sourcePath string, entries []entities.SnapshotEntry) (*entities.Snapshot, error) {
	words := make(map[string]struct{})
	for _, e := range entries {
		words[e.Word] = struct{}{}
	}

	snapshot := &entities.Snapshot{
		Label:       label,
		SourcePath:  sourcePath,
		Words:       len(words),
		Definitions: len(entries),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snapshot).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		rows := make([]entities.SnapshotEntry, len(entries))
		for i, e := range entries {
			rows[i] = entities.SnapshotEntry{
				SnapshotID:   snapshot.ID,
				Position:     i,
				Word:         e.Word,
				PartOfSpeech: e.PartOfSpeech,
				Definition:   e.Definition,
			}
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return snapshot, nil
}

// ListSnapshots returns all snapshots, newest first, without their entries.
func (r *Repository) ListSnapshots() ([]entities.Snapshot, error) {
	var snapshots []entities.Snapshot
	err := r.db.Order("created_at DESC").Order("id DESC").Find(&snapshots).Error
	return snapshots, err
}

// GetSnapshot retrieves a snapshot by ID without its entries.
func (r *Repository) GetSnapshot(id uint) (*entities.Snapshot, error) {
	var snapshot entities.Snapshot
	if err := r.db.First(&snapshot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSnapshotNotFound, id)
		}
		return nil, err
	}
	return &snapshot, nil
}

// GetLatestSnapshot returns the most recently created snapshot.
func (r *Repository) GetLatestSnapshot() (*entities.Snapshot, error) {
	var snapshot entities.Snapshot
	err := r.db.Order("created_at DESC").Order("id DESC").First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// GetEntries returns the entries of a snapshot in their saved order.
func (r *Repository) GetEntries(snapshotID uint) ([]entities.SnapshotEntry, error) {
	if _, err := r.GetSnapshot(snapshotID); err != nil {
		return nil, err
	}

	var entries []entities.SnapshotEntry
	err := r.db.Where("snapshot_id = ?", snapshotID).Order("position ASC").Find(&entries).Error
	return entries, err
}

// DeleteSnapshot removes a snapshot and its entries.
func (r *Repository) DeleteSnapshot(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("snapshot_id = ?", id).Delete(&entities.SnapshotEntry{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Snapshot{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: id %d", ErrSnapshotNotFound, id)
		}
		return nil
	})
}
