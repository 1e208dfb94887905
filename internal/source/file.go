package source

// File is one input record for an analysis run, typically produced by the
// repository-fetching collaborator. An empty Content means the file body
// was unavailable; such files are skipped silently by the pipeline.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
	Size    int64  `json:"size"`
}
