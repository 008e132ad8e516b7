package journal

import (
	"sort"

	"tableflip.dev/diary/pkg/latex"
	"tableflip.dev/diary/pkg/store"
)

// Aggregator maintains the top level document. References are only ever
// added.
type Aggregator struct {
	Docs store.Documents
	Key  string
	// Defaults fill in the preamble when the document has to be created
	// without asking.
	Defaults latex.Preamble
}

func (a *Aggregator) Exists() bool {
	return a.Docs.Has(a.Key)
}

func (a *Aggregator) Path() string {
	return a.Docs.Path(a.Key)
}

// Create writes a fresh aggregator with the given preamble and references
// refs. An existing aggregator is left alone and only gains missing refs.
func (a *Aggregator) Create(p latex.Preamble, refs []latex.Reference) ([]latex.Reference, error) {
	if a.Exists() {
		return a.EnsureAll(refs)
	}
	if p.Title == "" {
		p.Title = a.Defaults.Title
	}
	if p.Author == "" {
		p.Author = a.Defaults.Author
	}
	if p.EmojiDir == "" {
		p.EmojiDir = a.Defaults.EmojiDir
	}
	doc, err := latex.ParseAggregator(a.Path(), latex.AggregatorSkeleton(p))
	if err != nil {
		return nil, err
	}
	return a.add(doc, refs, true)
}

// Ensure references r, reporting whether it was missing.
func (a *Aggregator) Ensure(r latex.Reference) (bool, error) {
	added, err := a.EnsureAll([]latex.Reference{r})
	return len(added) > 0, err
}

// EnsureAll references each of refs and returns the ones that were missing.
// The document is written once, and only when it changed.
func (a *Aggregator) EnsureAll(refs []latex.Reference) ([]latex.Reference, error) {
	doc, err := a.load()
	if err != nil {
		return nil, err
	}
	return a.add(doc, refs, false)
}

func (a *Aggregator) add(doc *latex.AggregatorDocument, refs []latex.Reference, write bool) ([]latex.Reference, error) {
	var added []latex.Reference
	for _, r := range refs {
		ok, err := doc.Add(r)
		if err != nil {
			return nil, err
		}
		if ok {
			added = append(added, r)
		}
	}
	if len(added) == 0 && !write {
		return nil, nil
	}
	if err := a.Docs.Write(a.Key, doc.Bytes()); err != nil {
		return nil, err
	}
	return added, nil
}

// References lists what the aggregator includes, in document order.
func (a *Aggregator) References() ([]latex.Reference, error) {
	doc, err := a.load()
	if err != nil {
		return nil, err
	}
	return doc.References(), nil
}

func (a *Aggregator) load() (*latex.AggregatorDocument, error) {
	content, err := a.Docs.Read(a.Key)
	if err != nil {
		return nil, err
	}
	return latex.ParseAggregator(a.Path(), content)
}

func sortReferences(refs []latex.Reference) {
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Before(refs[j])
	})
}

func containsReference(refs []latex.Reference, r latex.Reference) bool {
	for _, ref := range refs {
		if ref == r {
			return true
		}
	}
	return false
}
