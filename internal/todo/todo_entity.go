package todo

import "time"

const uniqueOwnerText = "uq_portal_todos_owner_text"

type Todo struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	Owner     string    `gorm:"column:owner;type:text;not null;index;uniqueIndex:uq_portal_todos_owner_text,priority:1"`
	Text      string    `gorm:"column:text;type:text;not null;uniqueIndex:uq_portal_todos_owner_text,priority:2"`
	Completed bool      `gorm:"column:completed;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Todo) TableName() string {
	return "portal_todos"
}
