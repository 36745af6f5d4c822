package dto

import "github.com/yigit/mentorbridge/internal/app/careers"

// CareerProfileResponse lists the skills a career goal requires
type CareerProfileResponse struct {
	Goal   string   `json:"goal" example:"Data Scientist"`
	Skills []string `json:"skills" example:"Python,SQL,Machine Learning,Statistics,Deep Learning"`
}

// SkillGapResponse reports the missing skills of the caller for their career goal
type SkillGapResponse struct {
	Goal          string   `json:"goal" example:"Data Scientist"`
	Required      []string `json:"required" example:"Python,SQL,Machine Learning,Statistics,Deep Learning"`
	Missing       []string `json:"missing" example:"Machine Learning,Statistics,Deep Learning"`
	CompletionPct int      `json:"completionPct" example:"40"`
}

// NewSkillGapResponse converts an evaluated gap into its response
func NewSkillGapResponse(g *careers.Gap) SkillGapResponse {
	return SkillGapResponse{
		Goal:          g.Goal,
		Required:      g.Required,
		Missing:       g.Missing,
		CompletionPct: g.CompletionPct,
	}
}

// RoadmapResponse is the ordered learning plan of a career goal
type RoadmapResponse struct {
	Goal  string         `json:"goal" example:"Data Scientist"`
	Steps []careers.Step `json:"steps"`
}
