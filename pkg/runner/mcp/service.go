// Package mcp provides the Model Context Protocol server integration for the diary.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/latex"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/timeutil"
)

// Service coordinates journal operations that are shared by the MCP server.
type Service struct {
	Journal *journal.Journal
	Dates   timeutil.Resolver

	// Documents are rewritten whole; one writer at a time.
	mu sync.Mutex
}

// WriteEntryOptions captures the parameters used to add an entry.
type WriteEntryOptions struct {
	Date string
	Body string
	BoxA string
	BoxB string
	Mood string
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Body      string `json:"body"`
	BoxA      string `json:"boxA,omitempty"`
	BoxB      string `json:"boxB,omitempty"`
	MoodCode  int    `json:"moodCode"`
	MoodLabel string `json:"mood"`
	MoodEmoji string `json:"moodEmoji"`
}

// PlacementDTO reports where an entry was saved.
type PlacementDTO struct {
	Month       string   `json:"month"`
	Path        string   `json:"path"`
	Created     bool     `json:"created"`
	YearCreated bool     `json:"yearCreated"`
	NewDay      bool     `json:"newDay"`
	Referenced  bool     `json:"referenced"`
	Entry       EntryDTO `json:"entry"`
}

// MonthSummary describes one month document.
type MonthSummary struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Target     string `json:"target"`
	Days       []int  `json:"days"`
	Referenced bool   `json:"referenced"`
}

// MoodDTO describes one selectable mood.
type MoodDTO struct {
	Code     int      `json:"code"`
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
	Emoji    string   `json:"emoji"`
	Default  bool     `json:"default,omitempty"`
}

// NewService builds a service wrapper around the journal.
func NewService(j *journal.Journal) *Service {
	return &Service{Journal: j}
}

// WriteEntry saves a new entry.
func (s *Service) WriteEntry(ctx context.Context, opts WriteEntryOptions) (*PlacementDTO, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	on, err := s.Dates.Resolve(opts.Date)
	if err != nil {
		return nil, err
	}
	e := entry.New(on, opts.Body, mood.Resolve(opts.Mood))
	e.BoxA = opts.BoxA
	e.BoxB = opts.BoxB

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.Journal.Save(ctx, e)
	if err != nil {
		return nil, err
	}
	return &PlacementDTO{
		Month:       p.Ref.Name(),
		Path:        p.Path,
		Created:     p.Created,
		YearCreated: p.YearCreated,
		NewDay:      p.NewDay,
		Referenced:  p.Referenced,
		Entry:       toDTO(e),
	}, nil
}

// Day returns the entries written on the given day.
func (s *Service) Day(_ context.Context, date string) ([]EntryDTO, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	dates := s.Dates
	dates.AllowFuture = true
	on, err := dates.Resolve(date)
	if err != nil {
		return nil, err
	}
	found, err := s.Journal.Find(on)
	if err != nil {
		return nil, err
	}
	return toDTOs(found), nil
}

// ListMonths summarizes every month document on disk.
func (s *Service) ListMonths(ctx context.Context) ([]MonthSummary, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	var referenced []latex.Reference
	if s.Journal.Aggregator.Exists() {
		var err error
		if referenced, err = s.Journal.Aggregator.References(); err != nil {
			return nil, err
		}
	}

	months := s.Journal.Months(ctx)
	summaries := make([]MonthSummary, 0, len(months))
	for _, r := range months {
		doc, err := s.Journal.Month(r)
		if err != nil {
			return nil, err
		}
		summary := MonthSummary{
			Name:   r.Name(),
			Title:  r.String(),
			Target: r.Target(),
			Days:   []int{},
		}
		if doc != nil && len(doc.Days()) > 0 {
			summary.Days = doc.Days()
		}
		for _, ref := range referenced {
			if ref == r {
				summary.Referenced = true
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// MonthDocument returns the raw markup of a month document.
func (s *Service) MonthDocument(_ context.Context, year, month string) (string, error) {
	if s.Journal == nil {
		return "", errors.New("journal is not configured")
	}
	ref, ok := latex.ParseReference(month + "_" + year)
	if !ok {
		return "", fmt.Errorf("unknown month %q %q", month, year)
	}
	key := s.Journal.Key(ref)
	if !s.Journal.Docs.Has(key) {
		return "", fmt.Errorf("no document for %s", ref)
	}
	b, err := s.Journal.Docs.Read(key)
	return string(b), err
}

// MainDocument returns the raw markup of the aggregator document.
func (s *Service) MainDocument(_ context.Context) (string, error) {
	if s.Journal == nil {
		return "", errors.New("journal is not configured")
	}
	if !s.Journal.Aggregator.Exists() {
		return "", fmt.Errorf("%s does not exist yet", s.Journal.Aggregator.Key)
	}
	b, err := s.Journal.Docs.Read(s.Journal.Aggregator.Key)
	return string(b), err
}

// Sync references every month document from the aggregator.
func (s *Service) Sync(ctx context.Context) ([]string, error) {
	if s.Journal == nil {
		return nil, errors.New("journal is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	added, err := s.Journal.Sync(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(added))
	for _, r := range added {
		names = append(names, r.Name())
	}
	return names, nil
}

// Moods lists the selectable moods.
func Moods() []MoodDTO {
	all := mood.All()
	out := make([]MoodDTO, 0, len(all))
	for _, m := range all {
		g := m.Glyph()
		out = append(out, MoodDTO{
			Code:     g.Code,
			Label:    g.Label,
			Keywords: g.Keywords,
			Emoji:    g.Emoji,
			Default:  m == mood.Fallback,
		})
	}
	return out
}

func toDTO(e *entry.Entry) EntryDTO {
	g := e.Mood.Glyph()
	return EntryDTO{
		Date:      timeutil.FormatDate(e.Date),
		Weekday:   e.Date.Weekday().String(),
		Body:      e.Body,
		BoxA:      strings.TrimSpace(e.BoxA),
		BoxB:      strings.TrimSpace(e.BoxB),
		MoodCode:  g.Code,
		MoodLabel: g.Label,
		MoodEmoji: g.Emoji,
	}
}

func toDTOs(entries []*entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	return out
}
