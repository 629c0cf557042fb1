package model

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type TaskCategory string

const (
	CategoryHPA TaskCategory = "HPA" // high priority / high impact
	CategoryCTA TaskCategory = "CTA" // client / revenue
	CategoryLPA TaskCategory = "LPA" // low priority / ops / admin
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "NOT_STARTED"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

type FolderVisibility string

const (
	VisibilityPublic    FolderVisibility = "PUBLIC"
	VisibilityPrivate   FolderVisibility = "PRIVATE"
	VisibilitySelective FolderVisibility = "SELECTIVE"
)

type FolderType string

const (
	FolderTypeAdmin FolderType = "ADMIN"
	FolderTypeUser  FolderType = "USER"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `gorm:"size:16" json:"role"`
	JobTitle     string    `json:"jobTitle,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type DailyUpdate struct {
	ID                string       `gorm:"primaryKey;size:36" json:"id"`
	UserID            string       `gorm:"size:36;uniqueIndex:uk_user_date" json:"userId"`
	UserName          string       `json:"userName"`
	Date              string       `gorm:"type:date;uniqueIndex:uk_user_date" json:"date"`
	Month             string       `gorm:"size:7;index" json:"month"`
	Tasks             []UpdateTask `gorm:"constraint:OnDelete:CASCADE" json:"tasks"`
	MissedTasks       []MissedTask `gorm:"constraint:OnDelete:CASCADE" json:"missedTasks"`
	Blockers          []Blocker    `gorm:"constraint:OnDelete:CASCADE" json:"blockers"`
	ProductivityScore int          `json:"productivityScore"`
	TotalTime         float64      `json:"totalTime"`
	SubmittedAt       time.Time    `json:"submittedAt"`
}

// UpdateTask is one logged line item inside a daily update. ProjectTaskID is an
// optional back-reference to the project task it progresses.
type UpdateTask struct {
	ID            string       `gorm:"primaryKey;size:36" json:"id"`
	DailyUpdateID string       `gorm:"size:36;index" json:"-"`
	Description   string       `json:"description"`
	TimeSpent     float64      `json:"timeSpent"`
	Category      TaskCategory `gorm:"size:8" json:"category"`
	ProjectTaskID *string      `gorm:"size:36" json:"projectTaskId,omitempty"`
}

type MissedTask struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	DailyUpdateID string `gorm:"size:36;index" json:"-"`
	Description   string `json:"description"`
	Reason        string `json:"reason"`
}

type Blocker struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	DailyUpdateID string `gorm:"size:36;index" json:"-"`
	Description   string `json:"description"`
	Reason        string `json:"reason"`
}

type ProjectTask struct {
	ID              string             `gorm:"primaryKey;size:36" json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Client          string             `json:"client"`
	AssignedUserID  string             `gorm:"size:36;index" json:"assignedUserId"`
	Collaborators   []TaskCollaborator `gorm:"constraint:OnDelete:CASCADE" json:"collaborators"`
	FolderID        *string            `gorm:"size:36;index" json:"folderId,omitempty"`
	StartDate       string             `gorm:"type:date" json:"startDate"`
	EndDate         string             `gorm:"type:date" json:"endDate"`
	TimeEstimate    float64            `json:"timeEstimate"`
	Status          TaskStatus         `gorm:"size:16" json:"status"`
	Priority        TaskPriority       `gorm:"size:8" json:"priority"`
	IsCollaborative bool               `json:"isCollaborative"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type TaskCollaborator struct {
	ProjectTaskID string `gorm:"primaryKey;size:36" json:"-"`
	UserID        string `gorm:"primaryKey;size:36" json:"userId"`
}

type TaskFolder struct {
	ID         string           `gorm:"primaryKey;size:36" json:"id"`
	Name       string           `json:"name"`
	OwnerID    string           `gorm:"size:36;index" json:"ownerId"`
	Visibility FolderVisibility `gorm:"size:16" json:"visibility"`
	Type       FolderType       `gorm:"size:8" json:"type"`
	Access     []FolderAccess   `gorm:"constraint:OnDelete:CASCADE" json:"access"`
	CreatedAt  time.Time        `json:"createdAt"`
}

type FolderAccess struct {
	TaskFolderID string `gorm:"primaryKey;size:36" json:"-"`
	UserID       string `gorm:"primaryKey;size:36" json:"userId"`
}

func (User) TableName() string             { return "app_users" }
func (DailyUpdate) TableName() string      { return "daily_updates" }
func (UpdateTask) TableName() string       { return "update_tasks" }
func (MissedTask) TableName() string       { return "missed_tasks" }
func (Blocker) TableName() string          { return "blockers" }
func (ProjectTask) TableName() string      { return "project_tasks" }
func (TaskCollaborator) TableName() string { return "task_collaborators" }
func (TaskFolder) TableName() string       { return "task_folders" }
func (FolderAccess) TableName() string     { return "folder_access" }

// HasCollaborator reports whether the user is on the task's collaborator set.
func (t ProjectTask) HasCollaborator(userID string) bool {
	for _, c := range t.Collaborators {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

// Grants reports whether the folder's explicit access list contains the user.
func (f TaskFolder) Grants(userID string) bool {
	for _, a := range f.Access {
		if a.UserID == userID {
			return true
		}
	}
	return false
}
