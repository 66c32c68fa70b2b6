// Package editor provides the open-document and open-view registry consumed
// by the completion engine.
//
// A Document pairs a stable DocumentID with the current content snapshot and
// active selection. A View is one visible window onto a document: a scroll
// anchor plus a height, from which the visible line range is estimated.
// Several views may show the same document.
//
// Editor is the registry. The completion engine reads it during the cheap
// synchronous phase (enumerating views, capturing snapshots and selections)
// and never writes to it; hosts mutate it on the editing path.
//
// All Editor methods are thread-safe. Document and View values are not
// individually synchronized and follow the editor's locking discipline.
package editor
