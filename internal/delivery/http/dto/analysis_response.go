package dto

type AnalysisResponse struct {
	MatchScore    int      `json:"match_score"`
	MissingSkills []string `json:"missing_skills"`
	Improvements  []string `json:"improvements"`
	Roadmap       []string `json:"roadmap"`
}
