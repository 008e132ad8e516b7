// Package journal places entries into month documents and keeps the
// aggregator document in step with the months on disk.
package journal

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/latex"
	"tableflip.dev/diary/pkg/store"
)

// Placement describes where Save put an entry.
type Placement struct {
	Ref  latex.Reference
	Key  string
	Path string
	// Created is set when the month document did not exist before.
	Created bool
	// YearCreated is set when the year directory did not exist before.
	YearCreated bool
	// NewDay is set when the entry opened a new day section.
	NewDay bool
	// Referenced is set when the aggregator gained a reference.
	Referenced bool
}

// Journal is the diary rooted at one directory.
type Journal struct {
	Docs store.Documents
	Ext  string

	Aggregator *Aggregator
}

func New(cfg store.Config, docs store.Documents) *Journal {
	return &Journal{
		Docs: docs,
		Ext:  cfg.Extension(),
		Aggregator: &Aggregator{
			Docs: docs,
			Key:  cfg.MainName() + "." + cfg.Extension(),
			Defaults: latex.Preamble{
				Title:    cfg.Title(),
				Author:   cfg.Author(),
				EmojiDir: cfg.EmojiDir(),
			},
		},
	}
}

// Key is the store key of the month document for r.
func (j *Journal) Key(r latex.Reference) string {
	return monthKey(r, j.Ext)
}

func monthKey(r latex.Reference, ext string) string {
	return path.Join(r.Dir(), r.Name()+"."+ext)
}

// parseMonthKey reverses monthKey; keys of anything else are rejected.
func parseMonthKey(key, ext string) (latex.Reference, bool) {
	dir, file := path.Split(key)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || strings.Contains(dir, "/") || !strings.HasSuffix(file, "."+ext) {
		return latex.Reference{}, false
	}
	ref, ok := latex.ParseReference(strings.TrimSuffix(file, "."+ext))
	if !ok || strconv.Itoa(ref.Year) != dir {
		return latex.Reference{}, false
	}
	// Abbreviated names are readable but are not the names this diary writes.
	if monthKey(ref, ext) != key {
		return latex.Reference{}, false
	}
	return ref, true
}

func ReferenceFor(t time.Time) latex.Reference {
	return latex.Reference{Year: t.Year(), Month: t.Month()}
}

// Save places e in its month document, creating the year directory and the
// document as needed, and references a newly created document from the
// aggregator.
func (j *Journal) Save(ctx context.Context, e *entry.Entry) (*Placement, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	ref := ReferenceFor(e.Date)
	key := j.Key(ref)
	p := &Placement{
		Ref:         ref,
		Key:         key,
		Path:        j.Docs.Path(key),
		Created:     !j.Docs.Has(key),
		YearCreated: !j.Docs.HasDir(ref.Dir()),
	}

	content := latex.MonthlySkeleton(ref.Year, ref.Month)
	if !p.Created {
		var err error
		if content, err = j.Docs.Read(key); err != nil {
			return nil, err
		}
	}

	doc, err := latex.ParseMonthly(p.Path, ref.Year, ref.Month, content)
	if err != nil {
		return nil, err
	}
	p.NewDay = !doc.HasDay(e.Date.Day())
	if err := doc.Insert(e); err != nil {
		return nil, err
	}
	if err := j.Docs.Write(key, doc.Bytes()); err != nil {
		return nil, err
	}

	switch {
	case !j.Aggregator.Exists():
		added, err := j.CreateAggregator(ctx, j.Aggregator.Defaults)
		if err != nil {
			return p, fmt.Errorf("entry saved to %s but the aggregator was not created: %w", p.Path, err)
		}
		p.Referenced = containsReference(added, ref)
	default:
		added, err := j.Aggregator.Ensure(ref)
		if err != nil {
			return p, fmt.Errorf("entry saved to %s but the aggregator was not updated: %w", p.Path, err)
		}
		p.Referenced = added
	}
	return p, nil
}

// CreateAggregator writes a new aggregator referencing every month document
// already on disk.
func (j *Journal) CreateAggregator(ctx context.Context, p latex.Preamble) ([]latex.Reference, error) {
	return j.Aggregator.Create(p, j.Months(ctx))
}

// Months lists the month documents on disk, oldest first.
func (j *Journal) Months(ctx context.Context) []latex.Reference {
	var refs []latex.Reference
	for _, key := range j.Docs.Keys(ctx) {
		if ref, ok := parseMonthKey(key, j.Ext); ok {
			refs = append(refs, ref)
		}
	}
	sortReferences(refs)
	return refs
}

// Month parses the month document for r. A missing document yields nil.
func (j *Journal) Month(r latex.Reference) (*latex.MonthlyDocument, error) {
	key := j.Key(r)
	if !j.Docs.Has(key) {
		return nil, nil
	}
	content, err := j.Docs.Read(key)
	if err != nil {
		return nil, err
	}
	return latex.ParseMonthly(j.Docs.Path(key), r.Year, r.Month, content)
}

// Find returns the entries written for the day of on.
func (j *Journal) Find(on time.Time) ([]*entry.Entry, error) {
	doc, err := j.Month(ReferenceFor(on))
	if err != nil || doc == nil {
		return nil, err
	}
	return doc.Entries(on.Day()), nil
}

// Sync references every month document on disk the aggregator is missing.
func (j *Journal) Sync(ctx context.Context) ([]latex.Reference, error) {
	if !j.Aggregator.Exists() {
		return j.CreateAggregator(ctx, j.Aggregator.Defaults)
	}
	return j.Aggregator.EnsureAll(j.Months(ctx))
}
