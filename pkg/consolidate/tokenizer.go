package consolidate

import (
	"fmt"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	"go.uber.org/zap"
)

// Tokenizer maps text to a token count under a fixed encoding. Counting is
// deterministic for identical input.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const (
	defaultTiktokenModel = "gpt-4o"
	defaultHFModel       = "gpt2"
)

// NewTokenizer builds the tokenizer named by kind ("tiktoken" or
// "huggingface"). model and file refine which encoding is loaded; empty
// values select the implementation defaults.
func NewTokenizer(kind, model, file string, logger *zap.Logger) (Tokenizer, error) {
	switch strings.ToLower(kind) {
	case "tiktoken":
		return newTiktokenTokenizer(model, logger)
	case "huggingface":
		return newHFTokenizer(model, file, logger)
	default:
		return nil, fmt.Errorf("unsupported tokenizer type: %s (use 'tiktoken' or 'huggingface')", kind)
	}
}

// --- tiktoken ---

type tiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
}

func newTiktokenTokenizer(model string, logger *zap.Logger) (Tokenizer, error) {
	if model == "" {
		model = defaultTiktokenModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		logger.Warn("Tiktoken model not found, falling back to default",
			zap.String("model", model),
			zap.String("default", defaultTiktokenModel),
			zap.Error(err))
		enc, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("loading tiktoken encoding for default model %s: %w", defaultTiktokenModel, err)
		}
	}
	return &tiktokenTokenizer{enc: enc}, nil
}

func (t *tiktokenTokenizer) CountTokens(text string) int {
	if t.enc == nil {
		return 0
	}
	return len(t.enc.EncodeOrdinary(text))
}

func (t *tiktokenTokenizer) Close() {}

// --- huggingface (sugarme) ---

type hfTokenizer struct {
	tk     *hf.Tokenizer
	logger *zap.Logger
}

func newHFTokenizer(model, file string, logger *zap.Logger) (Tokenizer, error) {
	if file != "" {
		tk, err := pretrained.FromFile(file)
		if err != nil {
			return nil, fmt.Errorf("loading tokenizer from file %s: %w", file, err)
		}
		return &hfTokenizer{tk: tk, logger: logger}, nil
	}

	if model == "" {
		model = defaultHFModel
	}
	logger.Info("Loading HuggingFace tokenizer (this may download files)", zap.String("model", model))

	// CachedPath downloads tokenizer.json from the Hub if it is not cached.
	cached, err := hf.CachedPath(model, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("resolving tokenizer for model %s: %w", model, err)
	}
	tk, err := pretrained.FromFile(cached)
	if err != nil {
		return nil, fmt.Errorf("loading pretrained tokenizer for model %s: %w", model, err)
	}
	return &hfTokenizer{tk: tk, logger: logger}, nil
}

func (t *hfTokenizer) CountTokens(text string) int {
	if t.tk == nil {
		return 0
	}
	en, err := t.tk.EncodeSingle(text)
	if err != nil {
		t.logger.Warn("HuggingFace tokenizer failed to encode text", zap.Error(err))
		return 0
	}
	return len(en.Tokens)
}

func (t *hfTokenizer) Close() {}
