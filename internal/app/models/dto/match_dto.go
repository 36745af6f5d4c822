package dto

// MentorMatchResponse is one mentor ranked against the requesting student
type MentorMatchResponse struct {
	MentorID   string   `json:"mentorId"`
	Name       string   `json:"name" example:"Grace Hopper"`
	Email      string   `json:"email" example:"grace@mentorbridge.com"`
	Skills     []string `json:"skills" example:"Python,Machine Learning"`
	Expertise  string   `json:"expertise" example:"Compilers"`
	Experience int      `json:"experience" example:"12"`
	Score      float64  `json:"score" example:"0.82"`
}

// InternshipMatchResponse is one internship ranked against the requesting student
type InternshipMatchResponse struct {
	InternshipID   string   `json:"internshipId"`
	Title          string   `json:"title" example:"Data Science Intern"`
	Company        string   `json:"company" example:"Acme Analytics"`
	RequiredSkills []string `json:"requiredSkills" example:"Python,SQL"`
	Score          float64  `json:"score" example:"0.71"`
}
