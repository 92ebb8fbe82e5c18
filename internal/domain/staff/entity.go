package staff

// Profile is the read-only slice of the external user store this core
// needs: who the person is, their role, department, and assigned site.
type Profile struct {
	UserID             string
	FirstName          string
	LastName           string
	Role               string
	DepartmentID       *string
	DepartmentCode     string
	DepartmentName     string
	AssignedLocationID *string
	IsActive           bool
}

// FullName joins the name parts for display and audit entries.
func (p Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
