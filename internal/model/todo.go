package model

import "time"

// Todo задача пользователя.
// ImageURL не хранится: он вычисляется из ImageKey при каждом чтении.
type Todo struct {
	ID          string    `gorm:"primaryKey" json:"todoId"`
	UserID      string    `gorm:"not null;index" json:"userId"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `gorm:"not null" json:"completed"`
	CategoryID  *string   `gorm:"index" json:"categoryId,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	ImageKey    *string   `json:"imageKey,omitempty"`
	ImageURL    string    `gorm:"-" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTodo поля, которые клиент задаёт при создании.
type NewTodo struct {
	Title       string
	Description *string
	CategoryID  *string
	DueDate     *string
}

// TodoPatch частичное обновление задачи.
// Title и Completed обязательны по смыслу, поэтому очищать их нельзя.
type TodoPatch struct {
	Title       *string
	Description Optional[string]
	Completed   *bool
	CategoryID  Optional[string]
	DueDate     Optional[string]
	ImageKey    Optional[string]
}

func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil &&
		!p.Description.Set && !p.CategoryID.Set && !p.DueDate.Set && !p.ImageKey.Set
}

// HasImage true, если к задаче привязан ключ картинки.
func (t *Todo) HasImage() bool {
	return t.ImageKey != nil && *t.ImageKey != ""
}
