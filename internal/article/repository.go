package article

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, a *Article) error
	Exists(db *gorm.DB, id uint) (bool, error)
	List(db *gorm.DB) ([]Article, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, a *Article) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	var n int64
	err := db.Model(&Article{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *repositoryImpl) List(db *gorm.DB) ([]Article, error) {
	var articles []Article
	err := db.Order("id ASC").Find(&articles).Error
	return articles, err
}

// Lookup adapts the repository to the target resolver's contract.
func Lookup(db *gorm.DB, objectPK uint) (bool, error) {
	return NewRepository().Exists(db, objectPK)
}
