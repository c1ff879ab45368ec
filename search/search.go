package search

import (
	"context"
	"fmt"

	"github.com/abiiranathan/cnabsearch/cnab"
	"golang.org/x/sync/errgroup"
)

// Query selects the searches to run against a record set.
// A search runs only when its key (Segment or Name) is set.
type Query struct {
	Segment string // Segment code to filter by.
	From    int    // First column of the extracted field (1-indexed).
	To      int    // Last column of the extracted field (inclusive).
	Name    string // Company name to search for.
}

// HasSegment reports whether a segment query was requested.
func (q Query) HasSegment() bool {
	return q.Segment != ""
}

// HasName reports whether a name query was requested.
func (q Query) HasName() bool {
	return q.Name != ""
}

// Results holds the independent output of each requested search.
// A search that was not requested leaves its slice nil.
type Results struct {
	Segments []cnab.SegmentFieldResult
	Names    []cnab.NameMatch
}

// Empty reports whether no search produced a result.
func (r *Results) Empty() bool {
	return len(r.Segments) == 0 && len(r.Names) == 0
}

// Run executes the searches selected by q. When both are requested they run
// concurrently; each keeps the order of records. On error no results are returned.
func Run(ctx context.Context, records []cnab.Record, q Query) (*Results, error) {
	var res Results

	g, ctx := errgroup.WithContext(ctx)

	if q.HasSegment() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			segments, err := cnab.QuerySegment(records, q.Segment, q.From, q.To)
			if err != nil {
				return fmt.Errorf("segment query %q: %w", q.Segment, err)
			}
			res.Segments = segments
			return nil
		})
	}

	if q.HasName() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			names, err := cnab.QueryByName(records, q.Name)
			if err != nil {
				return fmt.Errorf("name query %q: %w", q.Name, err)
			}
			res.Names = names
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}
