package consolidate

// Config holds the settings for one consolidation run.
type Config struct {
	SourceRoot    string   // Root directory containing the folders to consolidate.
	OutputDir     string   // Directory receiving the per-folder and master artifacts.
	Folders       []string // Top-level folders to process, in order.
	Extensions    []string // File name suffixes to include (with leading dot).
	Exclude       []string // Gitignore-style patterns skipped during the walk.
	Tokenizer     string   // Tokenizer implementation: "tiktoken" or "huggingface".
	Model         string   // Tokenizer model name; empty selects the implementation default.
	TokenizerFile string   // Path to a local tokenizer.json for the huggingface tokenizer.
	LanguageFile  string   // Optional YAML file overriding extension-to-language tags.
}

// DefaultConfig returns the configuration used when no flags or config file
// override it. The defaults mirror a conventional Next.js src layout.
func DefaultConfig() *Config {
	return &Config{
		SourceRoot: "src",
		OutputDir:  "node_consolidate",
		Folders:    []string{"app", "components", "context", "lib", "scripts", "types"},
		Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".css", ".scss", ".json", ".md"},
		Tokenizer:  "tiktoken",
	}
}
