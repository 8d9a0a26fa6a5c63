package domain

// Role is the platform role carried by the identity token.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Principal is the authenticated caller as asserted by the identity service.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsStudent() bool {
	return p.Role == RoleStudent
}

func (p Principal) IsTeacher() bool {
	return p.Role == RoleTeacher
}

// Course owns quizzes. Only the instructor may author or review its quizzes.
type Course struct {
	ID           string
	Title        string
	InstructorID string
}

// IsInstructor reports whether p teaches c.
func (c *Course) IsInstructor(p Principal) bool {
	return p.IsTeacher() && c.InstructorID == p.UserID
}
