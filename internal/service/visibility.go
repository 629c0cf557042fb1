package service

import "ops-tracker/internal/model"

func IsAdmin(u *model.User) bool {
	return u != nil && u.Role == model.RoleAdmin
}

// FolderVisibleTo decides whether a user may see a folder. Admins see
// everything. A PRIVATE folder is owner-only regardless of its access list;
// the list only widens SELECTIVE folders.
func FolderVisibleTo(u *model.User, f model.TaskFolder) bool {
	if IsAdmin(u) {
		return true
	}
	if u == nil {
		return false
	}
	switch f.Visibility {
	case model.VisibilityPublic:
		return true
	case model.VisibilityPrivate:
		return f.OwnerID == u.ID
	case model.VisibilitySelective:
		return f.OwnerID == u.ID || f.Grants(u.ID)
	}
	return false
}

// VisibleFolders filters a folder set down to what the user may see,
// preserving input order.
func VisibleFolders(u *model.User, folders []model.TaskFolder) []model.TaskFolder {
	visible := make([]model.TaskFolder, 0, len(folders))
	for _, f := range folders {
		if FolderVisibleTo(u, f) {
			visible = append(visible, f)
		}
	}
	return visible
}

// TaskAppliesTo reports whether a project task is on the user's plate: either
// as the assigned primary user or as a collaborator.
func TaskAppliesTo(u *model.User, t model.ProjectTask) bool {
	if u == nil {
		return false
	}
	return t.AssignedUserID == u.ID || t.HasCollaborator(u.ID)
}

// CanEditTask limits task edits and deletes to the assignee and admins.
func CanEditTask(u *model.User, t model.ProjectTask) bool {
	return IsAdmin(u) || (u != nil && t.AssignedUserID == u.ID)
}
