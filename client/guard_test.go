// mediahub/client/guard_test.go
package client

import "testing"

func TestAllows(t *testing.T) {
	cases := []struct {
		name  string
		op    Operation
		level int
		want  bool
	}{
		{"PublicRead", OpListContent, 0, true},
		{"PublicLike", OpLikeContent, 0, true},
		{"PublicCreateCategory", OpCreateCategory, 0, false},
		{"MemberCreateCategory", OpCreateCategory, 1, true},
		{"MemberCreateFolder", OpCreateFolder, 1, true},
		{"MemberUploadFile", OpUploadFile, 1, true},
		{"MemberRename", OpRenameItem, 1, false},
		{"EditorRename", OpRenameItem, 2, true},
		{"MemberDeleteCategory", OpDeleteCategory, 1, false},
		{"EditorDeleteCategory", OpDeleteCategory, 2, true},
		{"EditorFeatured", OpManageFeatured, 2, true},
		{"EditorSlider", OpManageSlider, 2, true},
		{"EditorAnnouncements", OpManageAnnouncements, 2, true},
		{"EditorBranding", OpEditBranding, 2, true},
		{"EditorStaff", OpManageStaff, 2, false},
		{"OwnerStaff", OpManageStaff, 3, true},
		// Level 3 is the ceiling; staff management is an equality check and
		// a hypothetical higher level does not pass.
		{"AboveOwnerStaff", OpManageStaff, 4, false},
		{"OwnerDeleteFile", OpDeleteFile, 3, true},
		{"UnknownOperation", Operation("nonsense"), 3, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allows(tc.op, tc.level); got != tc.want {
				t.Errorf("Allows(%q, %d) = %v, want %v", tc.op, tc.level, got, tc.want)
			}
		})
	}
}
