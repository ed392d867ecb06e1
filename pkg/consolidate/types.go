package consolidate

// FolderStats holds the line and token counts accumulated for one folder.
type FolderStats struct {
	Lines  int
	Tokens int
}

// FolderResult describes the artifact produced for one processed folder.
type FolderResult struct {
	Folder       string // The configured folder name.
	ArtifactPath string // Path of the consolidated artifact on disk.
	FileCount    int    // Files matched by extension, including unreadable ones.
	Stats        FolderStats
}

// RunSummary aggregates the results of a full consolidation run.
// Folders contains one entry per processed folder in configuration order;
// skipped folders are absent rather than present with zero counts.
type RunSummary struct {
	Folders     []FolderResult
	TotalLines  int
	TotalTokens int
	MasterPath  string
}
