package model

import "time"

// Category принадлежит ровно одному пользователю, на неё ссылаются задачи (без каскада).
type Category struct {
	ID        string    `gorm:"primaryKey" json:"categoryId"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryPatch struct {
	Name  *string
	Color Optional[string]
}

func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && !p.Color.Set
}
