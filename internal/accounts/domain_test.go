package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		text string
		role Role
		ok   bool
	}{
		{"OWNER", RoleOwner, true},
		{"owner", RoleOwner, true},
		{"Owner", RoleOwner, true},
		{" admin ", RoleAdmin, true},
		{"MEMBER", RoleMember, true},
		{"viewer", RoleViewer, true},
		{"", "", false},
		{"superuser", "", false},
		{"OWNERS", "", false},
		{"owner x", "", false},
	}
	for _, tc := range cases {
		role, ok := ParseRole(tc.text)
		assert.Equal(t, tc.ok, ok, "input %q", tc.text)
		assert.Equal(t, tc.role, role, "input %q", tc.text)
	}
}

func TestRolesClosedSet(t *testing.T) {
	assert.Equal(t, []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}, Roles())
}
