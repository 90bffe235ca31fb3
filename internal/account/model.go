package account

import "gorm.io/gorm"

// Account is a user that can authenticate and write comments.
type Account struct {
	gorm.Model
	Username     string `json:"username" gorm:"unique"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}
