package repo

import (
	"Reminder/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserRepository создаёт gorm-реализацию UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db, now: model.Now}
}

func (r *userRepo) Create(ctx context.Context, email, name string) (*model.User, error) {
	now := r.now()
	u := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	updates := map[string]any{"updated_at": r.now()}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if err := updateByID(ctx, r.db, &model.User{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// updateByID применяет updates к одной записи. Ноль затронутых строк означает, что записи нет.
func updateByID(ctx context.Context, db *gorm.DB, m any, id string, updates map[string]any) error {
	tx := db.WithContext(ctx).Model(m).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("update %s: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
