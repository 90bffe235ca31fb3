package comment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/talkboard/api-comments/internal/target"
)

type Repository interface {
	ListForTarget(db *gorm.DB, t target.Target) ([]Comment, error)
	GetActive(db *gorm.DB, id uint) (*Comment, error)
	Create(db *gorm.DB, c *Comment) error
	UpdateBody(db *gorm.DB, id uint, body string) (*Comment, error)
	Deactivate(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListForTarget returns the active comments of one target, oldest first.
func (r *repositoryImpl) ListForTarget(db *gorm.DB, t target.Target) ([]Comment, error) {
	var comments []Comment
	err := db.
		Where("content_type = ? AND object_pk = ? AND active = ?", t.ContentType, t.ObjectPK, true).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// GetActive fetches one comment by id; deactivated rows count as missing.
func (r *repositoryImpl) GetActive(db *gorm.DB, id uint) (*Comment, error) {
	var c Comment
	err := db.Where("active = ?", true).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create stores a new comment. When ParentID is set the parent must be a
// comment of the same target; its active flag is not checked.
func (r *repositoryImpl) Create(db *gorm.DB, c *Comment) error {
	if c.ParentID != nil {
		var n int64
		err := db.Model(&Comment{}).
			Where("id = ? AND content_type = ? AND object_pk = ?", *c.ParentID, c.ContentType, c.ObjectPK).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrInvalidParent
		}
	}
	return db.Create(c).Error
}

// UpdateBody replaces the body of an active comment in a single UPDATE
// and returns the stored row. The modification timestamp moves with it.
func (r *repositoryImpl) UpdateBody(db *gorm.DB, id uint, body string) (*Comment, error) {
	res := db.Model(&Comment{}).Where("id = ? AND active = ?", id, true).Update("body", body)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var c Comment
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Deactivate soft-deletes a comment. Repeating it is a no-op.
func (r *repositoryImpl) Deactivate(db *gorm.DB, id uint) error {
	res := db.Model(&Comment{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
