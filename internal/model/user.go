package model

import "time"

// User владелец категорий и задач.
type User struct {
	ID        string    `gorm:"primaryKey" json:"userId"`
	Email     string    `gorm:"not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch частичное обновление профиля, nil означает "не менять".
type UserPatch struct {
	Email *string
	Name  *string
}

// IsEmpty true, если в патче нет ни одного поля.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Name == nil
}
