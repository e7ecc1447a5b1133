// mediahub/client/guard.go
package client

import (
	"fmt"

	"mediahub/config"
)

// Operation names a guarded workspace action.
type Operation string

const (
	OpListContent    Operation = "list-content"
	OpLikeContent    Operation = "like-content"
	OpCreateCategory Operation = "create-category"
	OpCreateFolder   Operation = "create-folder"
	OpUploadFile     Operation = "upload-file"

	OpRenameItem          Operation = "rename-item"
	OpDeleteCategory      Operation = "delete-category"
	OpDeleteFolder        Operation = "delete-folder"
	OpDeleteFile          Operation = "delete-file"
	OpManageFeatured      Operation = "manage-featured"
	OpManageSlider        Operation = "manage-slider"
	OpManageAnnouncements Operation = "manage-announcements"
	OpEditBranding        Operation = "edit-branding"

	OpManageStaff Operation = "manage-staff"
)

// minLevels is the single table every mutating entry point consults. Staff
// management is absent: it is an equality check, not a floor.
var minLevels = map[Operation]int{
	OpListContent: config.LevelPublic,
	OpLikeContent: config.LevelPublic,

	OpCreateCategory: config.LevelMember,
	OpCreateFolder:   config.LevelMember,
	OpUploadFile:     config.LevelMember,

	OpRenameItem:          config.LevelEditor,
	OpDeleteCategory:      config.LevelEditor,
	OpDeleteFolder:        config.LevelEditor,
	OpDeleteFile:          config.LevelEditor,
	OpManageFeatured:      config.LevelEditor,
	OpManageSlider:        config.LevelEditor,
	OpManageAnnouncements: config.LevelEditor,
	OpEditBranding:        config.LevelEditor,
}

// Allows reports whether a role level may perform an operation. Pure, no
// side effects. Level 3 is the ceiling, so staff management checks equality
// rather than a floor.
func Allows(op Operation, level int) bool {
	if op == OpManageStaff {
		return level == config.LevelOwner
	}
	min, ok := minLevels[op]
	if !ok {
		return false
	}
	return level >= min
}

func permissionDenied(op Operation) *PermissionError {
	return &PermissionError{Message: fmt.Sprintf("insufficient permissions for %s", op)}
}
