package editor

import (
	"github.com/google/uuid"

	"github.com/dshills/wordmine/internal/engine/buffer"
	"github.com/dshills/wordmine/internal/engine/cursor"
)

// DocumentID is a stable, opaque identifier for an open document.
type DocumentID string

// NewDocumentID generates a new unique document ID.
func NewDocumentID() DocumentID {
	return DocumentID(uuid.NewString())
}

// Document is an open text document: a name, the current content snapshot and
// the active selection. The completion engine only ever reads documents; the
// host editor replaces the snapshot as the user edits.
type Document struct {
	id        DocumentID
	name      string
	snapshot  *buffer.Snapshot
	selection *cursor.CursorSet
}

// NewDocument creates a document with the given display name and content.
// The selection starts as a single cursor at offset 0.
func NewDocument(name, text string) *Document {
	return &Document{
		id:        NewDocumentID(),
		name:      name,
		snapshot:  buffer.NewSnapshot(text),
		selection: cursor.NewCursorSetAt(0),
	}
}

// ID returns the document's stable identifier.
func (d *Document) ID() DocumentID {
	return d.id
}

// Name returns the document's display name.
func (d *Document) Name() string {
	return d.name
}

// Snapshot returns the document's current content snapshot.
// The returned snapshot is immutable and safe to hold across edits.
func (d *Document) Snapshot() *buffer.Snapshot {
	return d.snapshot
}

// Selection returns the document's active cursor set.
func (d *Document) Selection() *cursor.CursorSet {
	return d.selection
}

// SetText replaces the document content, producing a new revision.
// The selection is clamped to the new content.
func (d *Document) SetText(text string) {
	d.snapshot = buffer.NewSnapshot(text)
	sels := d.selection.All()
	for i, sel := range sels {
		sels[i] = sel.Clamp(d.snapshot.Len())
	}
	d.selection.SetAll(sels)
}

// SetSelection replaces the document's cursor set.
func (d *Document) SetSelection(cs *cursor.CursorSet) {
	if cs == nil {
		cs = cursor.NewCursorSetAt(0)
	}
	d.selection = cs
}
