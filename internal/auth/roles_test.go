package auth

import "testing"

func TestRole_Meets(t *testing.T) {
	tests := []struct {
		name string
		role Role
		min  Role
		want bool
	}{
		{"owner meets owner", RoleOwner, RoleOwner, true},
		{"owner meets staff", RoleOwner, RoleStaff, true},
		{"owner meets viewer", RoleOwner, RoleViewer, true},
		{"staff meets staff", RoleStaff, RoleStaff, true},
		{"staff meets viewer", RoleStaff, RoleViewer, true},
		{"staff does not meet owner", RoleStaff, RoleOwner, false},
		{"viewer meets viewer", RoleViewer, RoleViewer, true},
		{"viewer does not meet staff", RoleViewer, RoleStaff, false},
		{"viewer does not meet owner", RoleViewer, RoleOwner, false},
		{"unknown role meets nothing", Role("admin"), RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Meets(tt.min); got != tt.want {
				t.Errorf("%q.Meets(%q) = %v, want %v", tt.role, tt.min, got, tt.want)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleStaff, RoleViewer} {
		if !r.Valid() {
			t.Errorf("%q.Valid() = false, want true", r)
		}
	}
	if Role("admin").Valid() {
		t.Error(`Role("admin").Valid() = true, want false`)
	}
	if Role("").Valid() {
		t.Error(`Role("").Valid() = true, want false`)
	}
}
