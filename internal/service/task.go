package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct{ db *gorm.DB }

func NewTaskService(db *gorm.DB) *TaskService { return &TaskService{db: db} }

// ListForUser returns the tasks where the user is the assignee or a
// collaborator.
func (s *TaskService) ListForUser(ctx context.Context, userID string) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	err := s.db.WithContext(ctx).
		Preload("Collaborators").
		Where("assigned_user_id = ? OR id IN (?)", userID,
			s.db.Model(&model.TaskCollaborator{}).Select("project_task_id").Where("user_id = ?", userID)).
		Order("created_at").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ListAll is the admin overview: every task, unfiltered.
func (s *TaskService) ListAll(ctx context.Context) ([]model.ProjectTask, error) {
	var tasks []model.ProjectTask
	if err := s.db.WithContext(ctx).Preload("Collaborators").Order("created_at").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list all tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.ProjectTask, error) {
	var t model.ProjectTask
	err := s.db.WithContext(ctx).Preload("Collaborators").First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

func (s *TaskService) Create(ctx context.Context, req model.SaveTaskRequest) (*model.ProjectTask, error) {
	t := buildTask(uuid.NewString(), req)
	t.CreatedAt = time.Now()
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &t, nil
}

// Update replaces the task's fields and its collaborator set.
func (s *TaskService) Update(ctx context.Context, actor *model.User, id string, req model.SaveTaskRequest) (*model.ProjectTask, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanEditTask(actor, *existing) {
		return nil, model.ErrForbidden
	}

	t := buildTask(id, req)
	t.CreatedAt = existing.CreatedAt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_task_id = ?", id).Delete(&model.TaskCollaborator{}).Error; err != nil {
			return fmt.Errorf("clear collaborators: %w", err)
		}
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&t).Error; err != nil {
			return fmt.Errorf("save task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TaskService) Delete(ctx context.Context, actor *model.User, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanEditTask(actor, *t) {
		return model.ErrForbidden
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_task_id = ?", id).Delete(&model.TaskCollaborator{}).Error; err != nil {
			return fmt.Errorf("delete collaborators: %w", err)
		}
		if err := tx.Delete(&model.ProjectTask{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}

func buildTask(id string, req model.SaveTaskRequest) model.ProjectTask {
	t := model.ProjectTask{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Client:          req.Client,
		AssignedUserID:  req.AssignedUserID,
		FolderID:        req.FolderID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TimeEstimate:    req.TimeEstimate,
		Status:          req.Status,
		Priority:        req.Priority,
		IsCollaborative: req.IsCollaborative,
	}
	if t.IsCollaborative {
		for _, cid := range req.CollaboratorIDs {
			if cid == req.AssignedUserID {
				continue
			}
			t.Collaborators = append(t.Collaborators, model.TaskCollaborator{ProjectTaskID: id, UserID: cid})
		}
	}
	return t
}

// --- Folders ---

// ListFolders fetches all folders and applies the visibility policy for the
// requesting user.
func (s *TaskService) ListFolders(ctx context.Context, u *model.User) ([]model.TaskFolder, error) {
	var folders []model.TaskFolder
	if err := s.db.WithContext(ctx).Preload("Access").Order("created_at").Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return VisibleFolders(u, folders), nil
}

func (s *TaskService) CreateFolder(ctx context.Context, owner *model.User, req model.CreateFolderRequest) (*model.TaskFolder, error) {
	folderType := model.FolderTypeUser
	if IsAdmin(owner) {
		folderType = model.FolderTypeAdmin
	}
	id := uuid.NewString()
	f := model.TaskFolder{
		ID:         id,
		Name:       req.Name,
		OwnerID:    owner.ID,
		Visibility: req.Visibility,
		Type:       folderType,
		CreatedAt:  time.Now(),
	}
	if req.Visibility == model.VisibilitySelective {
		for _, uid := range req.AccessibleUserIDs {
			f.Access = append(f.Access, model.FolderAccess{TaskFolderID: id, UserID: uid})
		}
	}
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return &f, nil
}

func (s *TaskService) DeleteFolder(ctx context.Context, actor *model.User, id string) error {
	var f model.TaskFolder
	err := s.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}
	if !IsAdmin(actor) && f.OwnerID != actor.ID {
		return model.ErrForbidden
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_folder_id = ?", id).Delete(&model.FolderAccess{}).Error; err != nil {
			return fmt.Errorf("delete grants: %w", err)
		}
		if err := tx.Model(&model.ProjectTask{}).Where("folder_id = ?", id).Update("folder_id", nil).Error; err != nil {
			return fmt.Errorf("unfile tasks: %w", err)
		}
		if err := tx.Delete(&model.TaskFolder{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}
		return nil
	})
}
