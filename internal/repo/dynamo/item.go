package dynamo

import (
	"Reminder/internal/model"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// timeLayout фиксированной ширины: строки сортируются так же, как моменты времени,
// поэтому createdAt годится как range key индекса.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

type userItem struct {
	UserID    string `dynamodbav:"userId"`
	Email     string `dynamodbav:"email"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

func newUserItem(u *model.User) userItem {
	return userItem{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func (it userItem) toModel() (*model.User, error) {
	created, err := parseTime(it.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.User{ID: it.UserID, Email: it.Email, Name: it.Name, CreatedAt: created, UpdatedAt: updated}, nil
}

type categoryItem struct {
	CategoryID string  `dynamodbav:"categoryId"`
	UserID     string  `dynamodbav:"userId"`
	Name       string  `dynamodbav:"name"`
	Color      *string `dynamodbav:"color,omitempty"`
	CreatedAt  string  `dynamodbav:"createdAt"`
	UpdatedAt  string  `dynamodbav:"updatedAt"`
}

func newCategoryItem(c *model.Category) categoryItem {
	return categoryItem{
		CategoryID: c.ID,
		UserID:     c.UserID,
		Name:       c.Name,
		Color:      c.Color,
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func (it categoryItem) toModel() (*model.Category, error) {
	created, err := parseTime(it.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Category{
		ID:        it.CategoryID,
		UserID:    it.UserID,
		Name:      it.Name,
		Color:     it.Color,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

// todoItem не содержит imageUrl: поле производное и в таблицу не пишется.
type todoItem struct {
	TodoID      string  `dynamodbav:"todoId"`
	UserID      string  `dynamodbav:"userId"`
	Title       string  `dynamodbav:"title"`
	Description *string `dynamodbav:"description,omitempty"`
	Completed   bool    `dynamodbav:"completed"`
	CategoryID  *string `dynamodbav:"categoryId,omitempty"`
	DueDate     *string `dynamodbav:"dueDate,omitempty"`
	ImageKey    *string `dynamodbav:"imageKey,omitempty"`
	CreatedAt   string  `dynamodbav:"createdAt"`
	UpdatedAt   string  `dynamodbav:"updatedAt"`
}

func newTodoItem(t *model.Todo) todoItem {
	return todoItem{
		TodoID:      t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CategoryID:  t.CategoryID,
		DueDate:     t.DueDate,
		ImageKey:    t.ImageKey,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func (it todoItem) toModel() (*model.Todo, error) {
	created, err := parseTime(it.CreatedAt)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Todo{
		ID:          it.TodoID,
		UserID:      it.UserID,
		Title:       it.Title,
		Description: it.Description,
		Completed:   it.Completed,
		CategoryID:  it.CategoryID,
		DueDate:     it.DueDate,
		ImageKey:    it.ImageKey,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, nil
}
