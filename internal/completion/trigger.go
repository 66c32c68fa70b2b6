package completion

import (
	"github.com/dshills/wordmine/internal/config"
	"github.com/dshills/wordmine/internal/engine/buffer"
)

// TriggerKind describes how a completion request started.
type TriggerKind uint8

const (
	// TriggerManual is an explicitly requested completion.
	TriggerManual TriggerKind = iota
	// TriggerAutomatic is an as-you-type completion.
	TriggerAutomatic
)

// String returns the trigger kind name.
func (k TriggerKind) String() string {
	switch k {
	case TriggerManual:
		return "manual"
	case TriggerAutomatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// Trigger describes why and where a completion request started.
type Trigger struct {
	Kind TriggerKind
	// Pos is the cursor character offset the request was raised at.
	Pos buffer.CharOffset
}

// MinWordLen returns the minimum candidate word length, in grapheme clusters,
// for this trigger kind. Manual triggers accept short words; automatic
// triggers require longer ones so as-you-type completion stays quiet on
// short identifiers.
func MinWordLen(cfg *config.Config, kind TriggerKind) int {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg.MinWordLen(kind == TriggerManual)
}
