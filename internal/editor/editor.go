package editor

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/dshills/wordmine/internal/logger"
)

// Editor is the registry of open documents and views. The completion
// engine's synchronous phase reads it to enumerate every visible region;
// nothing in the engine ever mutates it.
type Editor struct {
	mu     sync.RWMutex
	docs   map[DocumentID]*Document
	views  []*View
	focus  ViewID
	nextID ViewID
	log    *log.Logger
}

// New creates an empty editor.
func New() *Editor {
	return &Editor{
		docs: make(map[DocumentID]*Document),
		log:  logger.Default("editor"),
	}
}

// OpenDocument creates and registers a document with the given name and
// content, returning it.
func (e *Editor) OpenDocument(name, text string) *Document {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := NewDocument(name, text)
	e.docs[doc.ID()] = doc
	e.log.Debug("opened document", "name", name, "id", doc.ID())
	return doc
}

// CloseDocument removes a document and every view showing it.
func (e *Editor) CloseDocument(id DocumentID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.docs[id]; !ok {
		return
	}
	delete(e.docs, id)

	views := e.views[:0]
	for _, v := range e.views {
		if v.Document() != id {
			views = append(views, v)
		}
	}
	e.views = views
	e.log.Debug("closed document", "id", id)
}

// Document returns the document with the given ID.
func (e *Editor) Document(id DocumentID) (*Document, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	doc, ok := e.docs[id]
	return doc, ok
}

// OpenView creates a view over the given document with the given height in
// lines. The first view opened receives focus.
func (e *Editor) OpenView(doc DocumentID, height int) *View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := NewView(e.nextID, doc, height)
	e.nextID++
	if len(e.views) == 0 {
		e.focus = v.ID()
	}
	e.views = append(e.views, v)
	return v
}

// Views returns a copy of the list of open views, focused or not.
func (e *Editor) Views() []*View {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*View, len(e.views))
	copy(out, e.views)
	return out
}

// SetFocus moves focus to the given view.
func (e *Editor) SetFocus(id ViewID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range e.views {
		if v.ID() == id {
			e.focus = id
			return
		}
	}
}

// Focus returns the focused view and its document.
// Both are nil when the editor has no views.
func (e *Editor) Focus() (*View, *Document) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, v := range e.views {
		if v.ID() == e.focus {
			return v, e.docs[v.Document()]
		}
	}
	return nil, nil
}
