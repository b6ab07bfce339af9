package domain

// Job is the canonical record flowing through the pipeline. URL is the
// identity key; storage assigns an ID on insert.
type Job struct {
	Company  string
	Title    string
	Location string
	URL      string
	Source   string  // "{repo}/{path}" or "linkedin/search"
	Posted   *string // ISO-ish date-time when the source exposes one
}
