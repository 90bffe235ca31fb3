package comment

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/talkboard/api-comments/internal/target"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Comment{}))
	return db
}

func newComment(contentType string, objectPK uint, body string) *Comment {
	return &Comment{
		ContentType: contentType,
		ObjectPK:    objectPK,
		UserID:      7,
		UserName:    "alice",
		Body:        body,
		Active:      true,
	}
}

func TestListForTargetFiltersAndOrders(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	now := time.Now()
	older := newComment("article", 1, "older")
	older.CreatedAt = now.Add(-2 * time.Hour)
	newer := newComment("article", 1, "newer")
	newer.CreatedAt = now.Add(-1 * time.Hour)

	// Insert the newer one first to prove ordering comes from creation time,
	// not insertion order.
	require.NoError(t, repo.Create(db, newer))
	require.NoError(t, repo.Create(db, older))
	require.NoError(t, repo.Create(db, newComment("article", 2, "other object")))
	require.NoError(t, repo.Create(db, newComment("page", 1, "other kind")))

	gone := newComment("article", 1, "deactivated")
	require.NoError(t, repo.Create(db, gone))
	require.NoError(t, repo.Deactivate(db, gone.ID))

	got, err := repo.ListForTarget(db, target.Target{ContentType: "article", ObjectPK: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "older", got[0].Body)
	assert.Equal(t, "newer", got[1].Body)
}

func TestListForTargetEmpty(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	got, err := repo.ListForTarget(db, target.Target{ContentType: "article", ObjectPK: 1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetActive(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	c := newComment("article", 1, "hello")
	require.NoError(t, repo.Create(db, c))

	got, err := repo.GetActive(db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Body)

	_, err = repo.GetActive(db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Deactivate(db, c.ID))
	_, err = repo.GetActive(db, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateParentRules(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	parent := newComment("article", 1, "parent")
	require.NoError(t, repo.Create(db, parent))

	reply := newComment("article", 1, "reply")
	reply.ParentID = &parent.ID
	require.NoError(t, repo.Create(db, reply))

	crossTarget := newComment("article", 2, "wrong object")
	crossTarget.ParentID = &parent.ID
	assert.ErrorIs(t, repo.Create(db, crossTarget), ErrInvalidParent)

	missing := uint(9999)
	orphan := newComment("article", 1, "orphan")
	orphan.ParentID = &missing
	assert.ErrorIs(t, repo.Create(db, orphan), ErrInvalidParent)
}

func TestCreateParentMayBeInactive(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	parent := newComment("article", 1, "parent")
	require.NoError(t, repo.Create(db, parent))
	require.NoError(t, repo.Deactivate(db, parent.ID))

	reply := newComment("article", 1, "reply")
	reply.ParentID = &parent.ID
	assert.NoError(t, repo.Create(db, reply))
}

func TestUpdateBody(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	c := newComment("article", 1, "before")
	c.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(db, c))

	got, err := repo.UpdateBody(db, c.ID, "after")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Body)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	_, err = repo.UpdateBody(db, 9999, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Deactivate(db, c.ID))
	_, err = repo.UpdateBody(db, c.ID, "y")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateKeepsRow(t *testing.T) {
	db := testDB(t)
	repo := NewRepository()

	c := newComment("article", 1, "here")
	require.NoError(t, repo.Create(db, c))
	require.NoError(t, repo.Deactivate(db, c.ID))

	var raw Comment
	require.NoError(t, db.First(&raw, c.ID).Error)
	assert.False(t, raw.Active)
	assert.Equal(t, "here", raw.Body)

	// Deactivating twice is a no-op, not an error.
	assert.NoError(t, repo.Deactivate(db, c.ID))

	assert.ErrorIs(t, repo.Deactivate(db, 9999), ErrNotFound)
}
