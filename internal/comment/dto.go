package comment

import "time"

// AuthorDTO identifies the comment author as captured at creation time.
type AuthorDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentDTO is the wire shape of a comment.
type CommentDTO struct {
	ID          uint      `json:"id"`
	ContentType string    `json:"contentType"`
	ObjectPK    uint      `json:"objectPk"`
	Author      AuthorDTO `json:"author"`
	ParentID    *uint     `json:"parentID"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	ModifiedAt  time.Time `json:"modifiedAt"`
	IsActive    bool      `json:"isActive"`
}

func toDTO(c Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID,
		ContentType: c.ContentType,
		ObjectPK:    c.ObjectPK,
		Author:      AuthorDTO{ID: c.UserID, Name: c.UserName},
		ParentID:    c.ParentID,
		Comment:     c.Body,
		CreatedAt:   c.CreatedAt,
		ModifiedAt:  c.UpdatedAt,
		IsActive:    c.Active,
	}
}

func toDTOs(list []Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	return out
}
