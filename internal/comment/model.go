package comment

import "gorm.io/gorm"

// Comment is a user comment attached to a target object identified by a
// (content type, object pk) pair. Author identity is captured at
// creation time; Body is the only field a user may change afterwards.
// Deactivated comments keep their row with Active=false, they are never
// deleted.
type Comment struct {
	gorm.Model
	ContentType string `json:"contentType" gorm:"index:idx_comments_target"`
	ObjectPK    uint   `json:"objectPk" gorm:"index:idx_comments_target"`
	UserID      uint   `json:"userId"`
	UserName    string `json:"userName"`
	ParentID    *uint  `json:"parentId"`
	Body        string `json:"body"`
	Active      bool   `json:"active" gorm:"default:true"`
}
