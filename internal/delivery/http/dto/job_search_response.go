package dto

type JobListingResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type JobSearchResponse struct {
	Jobs []JobListingResponse `json:"jobs"`
}
