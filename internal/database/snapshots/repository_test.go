package snapshots

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/glossary/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Snapshot{}, &entities.SnapshotEntry{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db, NewRepository(db)
}

func sampleEntries() []entities.SnapshotEntry {
	return []entities.SnapshotEntry{
		{Word: "apple", PartOfSpeech: "noun", Definition: "a fruit"},
		{Word: "cat", PartOfSpeech: "noun", Definition: "a feline"},
		{Word: "cat", PartOfSpeech: "verb", Definition: "to catch"},
	}
}

func TestRepository_SaveSnapshot(t *testing.T) {
	db, repo := setupTestDB(t)

	snap, err := repo.SaveSnapshot("initial", "./glossary.txt", sampleEntries())
	require.NoError(t, err)

	assert.NotZero(t, snap.ID)
	assert.Equal(t, "initial", snap.Label)
	assert.Equal(t, "./glossary.txt", snap.SourcePath)
	assert.Equal(t, 2, snap.Words)
	assert.Equal(t, 3, snap.Definitions)
	assert.False(t, snap.CreatedAt.IsZero())

	var count int64
	db.Model(&entities.SnapshotEntry{}).Where("snapshot_id = ?", snap.ID).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestRepository_SaveSnapshot_Empty(t *testing.T) {
	_, repo := setupTestDB(t)

	snap, err := repo.SaveSnapshot("empty", "", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, snap.Words)
	entries, err := repo.GetEntries(snap.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRepository_GetEntriesKeepsOrder(t *testing.T) {
	_, repo := setupTestDB(t)

	snap, err := repo.SaveSnapshot("ordered", "", sampleEntries())
	require.NoError(t, err)

	entries, err := repo.GetEntries(snap.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, want := range sampleEntries() {
		assert.Equal(t, i, entries[i].Position)
		assert.Equal(t, want.Word, entries[i].Word)
		assert.Equal(t, want.PartOfSpeech, entries[i].PartOfSpeech)
		assert.Equal(t, want.Definition, entries[i].Definition)
		assert.Equal(t, snap.ID, entries[i].SnapshotID)
	}
}

func TestRepository_GetEntries_NotFound(t *testing.T) {
	_, repo := setupTestDB(t)

	_, err := repo.GetEntries(999)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestRepository_GetSnapshot(t *testing.T) {
	_, repo := setupTestDB(t)

	saved, err := repo.SaveSnapshot("one", "", sampleEntries())
	require.NoError(t, err)

	got, err := repo.GetSnapshot(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Label)
	assert.Empty(t, got.Entries, "entries are not preloaded")

	_, err = repo.GetSnapshot(saved.ID + 1)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestRepository_ListAndLatest(t *testing.T) {
	_, repo := setupTestDB(t)

	_, err := repo.GetLatestSnapshot()
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	first, err := repo.SaveSnapshot("first", "", sampleEntries())
	require.NoError(t, err)
	second, err := repo.SaveSnapshot("second", "", sampleEntries()[:1])
	require.NoError(t, err)

	list, err := repo.ListSnapshots()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	latest, err := repo.GetLatestSnapshot()
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 1, latest.Definitions)
}

func TestRepository_DeleteSnapshot(t *testing.T) {
	db, repo := setupTestDB(t)

	snap, err := repo.SaveSnapshot("doomed", "", sampleEntries())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteSnapshot(snap.ID))

	_, err = repo.GetSnapshot(snap.ID)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	var count int64
	db.Model(&entities.SnapshotEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, repo.DeleteSnapshot(snap.ID), ErrSnapshotNotFound)
}
