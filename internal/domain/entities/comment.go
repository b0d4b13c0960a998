package entities

import "time"

// Comment is a free-text note attached to a title. Independent of
// assessments; nothing in scoring reads comments.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	UserID    string    `json:"user_id" gorm:"column:user_id;index"`
	ShowName  string    `json:"show_name" gorm:"column:show_name;index"`
	Comment   string    `json:"comment" gorm:"column:comment"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
