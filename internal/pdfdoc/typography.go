package pdfdoc

// Role is the semantic use of a piece of text.
type Role int

const (
	RoleBody Role = iota
	RoleTitle
	RoleHeader
	RoleSection
	RoleTableHeader
	RoleSmall
)

// Style is a concrete font selection.
type Style struct {
	Family string
	Weight string // "" regular, "B" bold
	Size   float64
}

// Typography maps roles onto one Thai-capable family.
type Typography struct {
	Family string
}

// Resolve returns the style for role; unknown roles get the body style.
func (t Typography) Resolve(role Role) Style {
	switch role {
	case RoleTitle:
		return Style{Family: t.Family, Weight: "B", Size: 22}
	case RoleHeader:
		return Style{Family: t.Family, Weight: "B", Size: 18}
	case RoleSection:
		return Style{Family: t.Family, Weight: "B", Size: 16}
	case RoleTableHeader:
		return Style{Family: t.Family, Weight: "B", Size: 14}
	case RoleSmall:
		return Style{Family: t.Family, Weight: "", Size: 12}
	default:
		return Style{Family: t.Family, Weight: "", Size: 14}
	}
}
