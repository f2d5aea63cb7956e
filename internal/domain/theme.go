package domain

// Color roles recognized by the theming endpoint. Partial configs are valid;
// roles absent from a ThemeConfig fall back to the default palette at render
// time.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleTopbar    = "topbar"
	RoleAccent    = "accent"
)

// ThemeRoles lists the recognized roles in render order.
var ThemeRoles = []string{RolePrimary, RoleSecondary, RoleTopbar, RoleAccent}

// ThemeConfig maps color roles to color values. It is either exactly what the
// backend returned (possibly partial) or the entire default palette; the two
// are never mixed inside one config.
type ThemeConfig map[string]string

// RoleOr returns the color for role, or fallback when the role is absent or
// empty. Merging against defaults is the render path's job, not the resolver's.
func (t ThemeConfig) RoleOr(role, fallback string) string {
	if v, ok := t[role]; ok && v != "" {
		return v
	}
	return fallback
}
