package model

import "time"

// TodoModel mirrors the 'todos' table. UserID references users.id.
type TodoModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:varchar(255)"`
	UserID      int64     `gorm:"column:userId;index;not null"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;not null"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}

// Todo column names as stored in the database
const (
	TodoColumnTitle       = "title"
	TodoColumnDescription = "description"
)
