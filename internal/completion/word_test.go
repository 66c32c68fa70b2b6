package completion

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/wordmine/internal/config"
	"github.com/dshills/wordmine/internal/editor"
	"github.com/dshills/wordmine/internal/engine/buffer"
	"github.com/dshills/wordmine/internal/engine/cursor"
)

// openFocused opens a document with its own view, focuses it and places the
// cursor at the end of the text.
func openFocused(t *testing.T, ed *editor.Editor, text string) *editor.Document {
	t.Helper()
	doc := ed.OpenDocument("focused.txt", text)
	view := ed.OpenView(doc.ID(), 40)
	ed.SetFocus(view.ID())
	doc.Selection().Set(doc.Selection().Primary().MoveTo(doc.Snapshot().Len()))
	return doc
}

// endTrigger builds a trigger of the given kind at the end of the document.
func endTrigger(doc *editor.Document, kind TriggerKind) Trigger {
	return Trigger{Kind: kind, Pos: doc.Snapshot().Len()}
}

// paddedFragment prefixes the fragment with filler too short to qualify as a
// candidate, pushing the fragment's character range past the offsets of any
// other test document.
func paddedFragment(fragment string) string {
	return strings.Repeat("x ", 30) + fragment
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func findItem(t *testing.T, items []Item, label string) Item {
	t.Helper()
	for _, item := range items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("expected an item labeled %q in %v", label, labels(items))
	return Item{}
}

func TestCompleteManualSingleDocument(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "the quick brown fox says hello wo")

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	want := []string{"brown", "fox", "hello", "quick", "says", "the"}
	if got := labels(resp.Items); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if resp.Source != SourceWord {
		t.Errorf("expected word source, got %s", resp.Source)
	}
	for _, item := range resp.Items {
		if item.Source != SourceWord {
			t.Errorf("item %q: expected word source, got %s", item.Label, item.Source)
		}
	}
}

func TestCompleteAcceptReplacesFragment(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "the quick brown fox says hello wo")
	other := ed.OpenDocument("other.txt", "world wide web")
	ed.OpenView(other.ID(), 40)

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	item := findItem(t, resp.Items, "world")
	got := buffer.ApplyEdits(doc.Snapshot(), item.Edits)
	if got != "the quick brown fox says hello world" {
		t.Errorf("accepting %q produced %q", item.Label, got)
	}
}

func TestCompleteExcludesTypedWordPositionally(t *testing.T) {
	// The fragment's own range never yields a candidate, but identical text
	// elsewhere still does.
	ed := editor.New()
	doc := openFocused(t, ed, paddedFragment("wo"))
	other := ed.OpenDocument("other.txt", "words\n")
	ed.OpenView(other.ID(), 40)

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	if got := labels(resp.Items); !reflect.DeepEqual(got, []string{"words"}) {
		t.Errorf("expected [words], got %v", got)
	}
}

func TestCompleteNoFragment(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "")

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task != nil {
		t.Error("expected nil task when there is nothing typed")
	}
}

func TestCompleteNoFocusedDocument(t *testing.T) {
	ed := editor.New()
	task := Complete(context.Background(), ed, Trigger{Kind: TriggerManual}, nil, nil)
	if task != nil {
		t.Error("expected nil task without a focused document")
	}
}

func TestCompleteWhitespaceFragmentEmptyResult(t *testing.T) {
	// The fragment spans "hello " including the trailing space. Its only
	// candidate word shares the fragment's start, so nothing survives — but
	// the task still runs and produces an empty response.
	ed := editor.New()
	doc := openFocused(t, ed, "hello ")

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	if len(resp.Items) != 0 {
		t.Errorf("expected no items, got %v", labels(resp.Items))
	}
	if resp.Context.Priority != config.DefaultPriority {
		t.Errorf("expected priority %d, got %d", config.DefaultPriority, resp.Context.Priority)
	}
	if resp.Context.IsIncomplete {
		t.Error("word responses are always complete")
	}
}

func TestCompleteWhitespaceFragmentInsertsAtCursor(t *testing.T) {
	// A fragment ending in whitespace has nothing to erase: accepting a
	// suggestion inserts at the cursor instead of replacing the fragment.
	ed := editor.New()
	doc := openFocused(t, ed, "hello ")
	other := ed.OpenDocument("other.txt", "      help\n")
	ed.OpenView(other.ID(), 40)

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	item := findItem(t, resp.Items, "help")
	if len(item.Edits) != 1 || !item.Edits[0].IsInsert() {
		t.Fatalf("expected a single insertion, got %v", item.Edits)
	}
	got := buffer.ApplyEdits(doc.Snapshot(), item.Edits)
	if got != "hello help" {
		t.Errorf("accepting %q produced %q", item.Label, got)
	}
}

func TestCompleteAutomaticRequiresLongPrefix(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, paddedFragment("proc"))

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerAutomatic), nil, nil)
	if task != nil {
		t.Error("expected nil task for a short automatic prefix")
	}
}

func TestCompleteAutomaticLongWords(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, paddedFragment("processi"))
	other := ed.OpenDocument("other.txt", "processing proc\n")
	ed.OpenView(other.ID(), 40)

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerAutomatic), nil, nil)
	if task == nil {
		t.Fatal("expected a task for an eight-cluster automatic prefix")
	}
	resp := task.Run()

	// Only words of at least eight clusters qualify; "proc" and the filler
	// are too short.
	if got := labels(resp.Items); !reflect.DeepEqual(got, []string{"processing"}) {
		t.Errorf("expected [processing], got %v", got)
	}
}

func TestCompleteDeduplicatesAcrossRanges(t *testing.T) {
	ed := editor.New()
	openFocused(t, ed, paddedFragment("wo"))

	other := ed.OpenDocument("other.txt", "shared stuff\nshared again\n")
	snap := other.Snapshot()
	// Two single-line views: one per occurrence of "shared". The line spans
	// touch without overlapping, so both are scanned separately.
	ed.OpenView(other.ID(), 1)
	v := ed.OpenView(other.ID(), 1)
	v.ScrollTo(snap.LineStartOffset(1))

	trig := Trigger{Kind: TriggerManual, Pos: mustFocusedLen(t, ed)}
	task := Complete(context.Background(), ed, trig, nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	seen := 0
	for _, item := range resp.Items {
		if item.Label == "shared" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("expected %q once, got %d occurrences in %v", "shared", seen, labels(resp.Items))
	}
	findItem(t, resp.Items, "stuff")
	findItem(t, resp.Items, "again")
}

func mustFocusedLen(t *testing.T, ed *editor.Editor) buffer.CharOffset {
	t.Helper()
	_, doc := ed.Focus()
	if doc == nil {
		t.Fatal("no focused document")
	}
	return doc.Snapshot().Len()
}

func TestCompleteHiddenLinesNotScanned(t *testing.T) {
	ed := editor.New()
	openFocused(t, ed, paddedFragment("wo"))

	other := ed.OpenDocument("other.txt", "visible\nhidden\n")
	ed.OpenView(other.ID(), 1)

	trig := Trigger{Kind: TriggerManual, Pos: mustFocusedLen(t, ed)}
	task := Complete(context.Background(), ed, trig, nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	got := labels(resp.Items)
	if !reflect.DeepEqual(got, []string{"visible"}) {
		t.Errorf("expected only the visible line's word, got %v", got)
	}
}

func TestCompleteCanceled(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "hello wo")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := Complete(ctx, ed, endTrigger(doc, TriggerManual), nil, nil)
	if task != nil {
		t.Error("expected nil task for a canceled request")
	}
}

func TestCompleteDeterministic(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "gamma alpha beta alpha ga")

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}

	first := task.Run()
	second := task.Run()
	if !reflect.DeepEqual(first, second) {
		t.Error("running the same task twice should produce equal responses")
	}
}

func TestCompleteMultiCursorEdits(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "fo bar fo")
	doc.Selection().SetAll([]cursor.Selection{
		cursor.PointSelection(2),
		cursor.PointSelection(9),
	})
	other := ed.OpenDocument("other.txt", "food bank\n")
	ed.OpenView(other.ID(), 40)

	trig := Trigger{Kind: TriggerManual, Pos: 9}
	task := Complete(context.Background(), ed, trig, nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	item := findItem(t, resp.Items, "food")
	if len(item.Edits) != 2 {
		t.Fatalf("expected one edit per cursor, got %d", len(item.Edits))
	}
	got := buffer.ApplyEdits(doc.Snapshot(), item.Edits)
	if got != "food bar food" {
		t.Errorf("accepting %q produced %q", item.Label, got)
	}
}

func TestCompleteTokenRoundTrip(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "hello wo")

	token := doc.Snapshot().RevisionID()
	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, token)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()
	if resp.Context.Token != token {
		t.Errorf("expected token %v, got %v", token, resp.Context.Token)
	}
}

func TestCompleteCustomConfig(t *testing.T) {
	cfg := &config.Config{
		MinWordLenManual:    4,
		MinWordLenAutomatic: 8,
		Priority:            5,
	}

	ed := editor.New()
	doc := openFocused(t, ed, "big words only he")

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), cfg, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	// "big" is below the raised manual minimum.
	want := []string{"only", "words"}
	if got := labels(resp.Items); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if resp.Context.Priority != 5 {
		t.Errorf("expected configured priority 5, got %d", resp.Context.Priority)
	}
}

func TestCompleteUnicodeCandidates(t *testing.T) {
	ed := editor.New()
	doc := openFocused(t, ed, "naïve café pr")

	task := Complete(context.Background(), ed, endTrigger(doc, TriggerManual), nil, nil)
	if task == nil {
		t.Fatal("expected a task")
	}
	resp := task.Run()

	want := []string{"café", "naïve"}
	if got := labels(resp.Items); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
