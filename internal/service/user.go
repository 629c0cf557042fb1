package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-tracker/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	u := model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		JobTitle:     req.JobTitle,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = req.Name
	u.Email = req.Email
	u.Role = req.Role
	u.JobTitle = req.JobTitle
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete removes the user and everything owned by them: daily updates with their
// line items, assigned project tasks, owned folders, and any collaborator or
// access-grant rows pointing at the user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var updateIDs []string
		if err := tx.Model(&model.DailyUpdate{}).Where("user_id = ?", id).Pluck("id", &updateIDs).Error; err != nil {
			return fmt.Errorf("collect updates: %w", err)
		}
		if len(updateIDs) > 0 {
			for _, child := range []any{&model.UpdateTask{}, &model.MissedTask{}, &model.Blocker{}} {
				if err := tx.Where("daily_update_id IN ?", updateIDs).Delete(child).Error; err != nil {
					return fmt.Errorf("delete update items: %w", err)
				}
			}
			if err := tx.Where("id IN ?", updateIDs).Delete(&model.DailyUpdate{}).Error; err != nil {
				return fmt.Errorf("delete updates: %w", err)
			}
		}

		var taskIDs []string
		if err := tx.Model(&model.ProjectTask{}).Where("assigned_user_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return fmt.Errorf("collect tasks: %w", err)
		}
		if len(taskIDs) > 0 {
			if err := tx.Where("project_task_id IN ?", taskIDs).Delete(&model.TaskCollaborator{}).Error; err != nil {
				return fmt.Errorf("delete task collaborators: %w", err)
			}
			if err := tx.Where("id IN ?", taskIDs).Delete(&model.ProjectTask{}).Error; err != nil {
				return fmt.Errorf("delete tasks: %w", err)
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.TaskCollaborator{}).Error; err != nil {
			return fmt.Errorf("delete collaborator rows: %w", err)
		}

		var folderIDs []string
		if err := tx.Model(&model.TaskFolder{}).Where("owner_id = ?", id).Pluck("id", &folderIDs).Error; err != nil {
			return fmt.Errorf("collect folders: %w", err)
		}
		if len(folderIDs) > 0 {
			if err := tx.Where("task_folder_id IN ?", folderIDs).Delete(&model.FolderAccess{}).Error; err != nil {
				return fmt.Errorf("delete folder grants: %w", err)
			}
			// tasks filed under a deleted folder survive, unfiled
			if err := tx.Model(&model.ProjectTask{}).Where("folder_id IN ?", folderIDs).Update("folder_id", nil).Error; err != nil {
				return fmt.Errorf("unfile tasks: %w", err)
			}
			if err := tx.Where("id IN ?", folderIDs).Delete(&model.TaskFolder{}).Error; err != nil {
				return fmt.Errorf("delete folders: %w", err)
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.FolderAccess{}).Error; err != nil {
			return fmt.Errorf("delete access rows: %w", err)
		}

		if err := tx.Delete(&model.User{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
