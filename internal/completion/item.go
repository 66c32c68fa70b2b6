package completion

import "github.com/dshills/wordmine/internal/engine/buffer"

// Source identifies which provider produced a completion item. The word
// provider tags its items SourceWord; the staleness filter keys on the tag
// rather than comparing strings at runtime.
type Source uint8

const (
	// SourceWord is the viewport word-mining provider.
	SourceWord Source = iota
	// SourceLine is whole-line completion.
	SourceLine
	// SourcePath is file path completion.
	SourcePath
	// SourceLSP is a language server.
	SourceLSP
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceWord:
		return "word"
	case SourceLine:
		return "line"
	case SourcePath:
		return "path"
	case SourceLSP:
		return "lsp"
	default:
		return "unknown"
	}
}

// SnapshotToken is an opaque marker identifying the buffer version a
// response was computed against. The engine threads it through unchanged;
// the host uses it to detect staleness.
type SnapshotToken = any

// Item is a single completion suggestion: a label plus the multi-cursor
// edits that apply it.
type Item struct {
	// Label is the suggested word, shown as-is.
	Label string
	// Source tags the provider that produced the item.
	Source Source
	// Documentation is extended documentation; empty for word suggestions.
	Documentation string
	// Edits replace the typed fragment with the label at every cursor.
	Edits []buffer.Edit
}

// ResponseContext carries response-wide metadata back to the host.
type ResponseContext struct {
	// IsIncomplete is true when re-querying could produce more items.
	// Word mining always returns a complete set for the scanned ranges.
	IsIncomplete bool
	// Priority orders this provider's output against other providers.
	Priority int8
	// Token is the caller-supplied snapshot token, unchanged.
	Token SnapshotToken
}

// Response is the result of one completion request.
type Response struct {
	// Items are the suggestions in deterministic (lexicographic) order.
	Items []Item
	// Source tags the provider that produced the response.
	Source Source
	// Context carries response-wide metadata.
	Context ResponseContext
}
