package account

import "gorm.io/gorm"

type Repository interface {
	FindByUsername(db *gorm.DB, username string) (*Account, error)
	FindByID(db *gorm.DB, id uint) (*Account, error)
	Save(db *gorm.DB, a *Account) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByUsername(db *gorm.DB, username string) (*Account, error) {
	var a Account
	if err := db.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Account, error) {
	var a Account
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) Save(db *gorm.DB, a *Account) error {
	return db.Save(a).Error
}
