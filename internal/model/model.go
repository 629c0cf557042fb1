package model

type Portal string

const (
	PortalAdmin Portal = "ADMIN"
	PortalTeam  Portal = "TEAM"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Portal   Portal `json:"portal" binding:"required" validate:"oneof=ADMIN TEAM"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required" validate:"min=8"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" validate:"omitempty,oneof=ADMIN USER"`
	JobTitle string `json:"jobTitle"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"` // replaced only when non-empty
	Role     Role   `json:"role" validate:"oneof=ADMIN USER"`
	JobTitle string `json:"jobTitle"`
	IsActive *bool  `json:"isActive" binding:"required"`
}

type TaskEntry struct {
	Description   string       `json:"description" validate:"required"`
	TimeSpent     float64      `json:"timeSpent" validate:"gt=0"`
	Category      TaskCategory `json:"category" validate:"required,oneof=HPA CTA LPA"`
	ProjectTaskID *string      `json:"projectTaskId"`
}

type MissedEntry struct {
	Description string `json:"description" validate:"required"`
	Reason      string `json:"reason"`
}

type BlockerEntry struct {
	Description string `json:"description" validate:"required"`
	Reason      string `json:"reason"`
}

type SubmitUpdateRequest struct {
	Date              string         `json:"date" validate:"required,datetime=2006-01-02"`
	Tasks             []TaskEntry    `json:"tasks" validate:"required,min=1,dive"`
	MissedTasks       []MissedEntry  `json:"missedTasks" validate:"dive"`
	Blockers          []BlockerEntry `json:"blockers" validate:"dive"`
	ProductivityScore int            `json:"productivityScore" validate:"min=1,max=10"`
}

type SaveTaskRequest struct {
	Title           string       `json:"title" binding:"required"`
	Description     string       `json:"description"`
	Client          string       `json:"client"`
	AssignedUserID  string       `json:"assignedUserId" binding:"required"`
	CollaboratorIDs []string     `json:"collaboratorIds"`
	FolderID        *string      `json:"folderId"`
	StartDate       string       `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string       `json:"endDate" validate:"required,datetime=2006-01-02"`
	TimeEstimate    float64      `json:"timeEstimate" validate:"gte=0"`
	Status          TaskStatus   `json:"status" validate:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	Priority        TaskPriority `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH"`
	IsCollaborative bool         `json:"isCollaborative"`
}

type CreateFolderRequest struct {
	Name              string           `json:"name" binding:"required"`
	Visibility        FolderVisibility `json:"visibility" validate:"required,oneof=PUBLIC PRIVATE SELECTIVE"`
	AccessibleUserIDs []string         `json:"accessibleUserIds"`
}

// MonthlyStats is a derived per-user projection, recomputed on every request and
// never persisted.
type MonthlyStats struct {
	UserID           string  `json:"userId"`
	Name             string  `json:"name"`
	UpdatesSubmitted int     `json:"updatesSubmitted"`
	TotalHours       float64 `json:"totalHours"`
	AvgProductivity  float64 `json:"avgProductivity"`
	DaysMissed       int     `json:"daysMissed"`
}

type ReportRequest struct {
	UserID string `json:"userId" binding:"required"`
	Month  string `json:"month" binding:"required" validate:"datetime=2006-01"`
}

type ReportResponse struct {
	UserName string `json:"userName"`
	Month    string `json:"month"`
	Content  string `json:"content"`
}

// SeriesPoint is one chart sample of the score-over-time series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Score int     `json:"score"`
	Hours float64 `json:"hours"`
}

// MonthSummary backs the report viewer's chart panel.
type MonthSummary struct {
	TotalHours      float64                  `json:"totalHours"`
	AvgProductivity float64                  `json:"avgProductivity"`
	DaysLogged      int                      `json:"daysLogged"`
	CategoryHours   map[TaskCategory]float64 `json:"categoryHours"`
	Series          []SeriesPoint            `json:"series"`
}
