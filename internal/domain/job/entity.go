package job

// Source identifies where a listing came from.
type Source string

const (
	SourceLinkedIn Source = "LinkedIn"
	SourceNaukri   Source = "Naukri"
	SourceAdzuna   Source = "Adzuna"
	SourceOther    Source = "Other"
	SourceDemo     Source = "Demo"
)

// Listing is one job-search result. IDs are unique within a response batch;
// providers without native IDs fall back to the listing URL.
type Listing struct {
	ID      string
	Title   string
	Source  Source
	Link    string
	Snippet string
}
