package main

import (
	"context"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

// eventRow matches a row in the events table.
type eventRow struct {
	ID   int64  `json:"id,omitempty"`
	Text string `json:"text"`
}

// supabaseStore keeps curated events in a Supabase table.
type supabaseStore struct {
	client *supa.Client
	table  string
}

func newSupabaseStore(url, key, table string) (*supabaseStore, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to Supabase: %w", err)
	}
	return &supabaseStore{client: client, table: table}, nil
}

// listPageSize stays under PostgREST's usual max-rows cap.
const listPageSize = 500

// List returns stored events in id order, one page at a time. The postgrest
// client does not take a context, so ctx is checked between pages.
func (s *supabaseStore) List(ctx context.Context) ([]string, error) {
	return listPaged(ctx, listPageSize, func(from, to int) ([]eventRow, error) {
		var rows []eventRow
		_, err := s.client.From(s.table).
			Select("id,text", "", false).
			Order("id", &postgrest.OrderOpts{Ascending: true}).
			Range(from, to, "").
			ExecuteTo(&rows)
		if err != nil {
			return nil, fmt.Errorf("select from %s: %w", s.table, err)
		}
		return rows, nil
	})
}

// listPaged calls fetch with inclusive row ranges until a short page comes back.
func listPaged(ctx context.Context, size int, fetch func(from, to int) ([]eventRow, error)) ([]string, error) {
	var events []string
	for from := 0; ; from += size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := fetch(from, from+size-1)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			events = append(events, row.Text)
		}
		if len(rows) < size {
			return events, nil
		}
	}
}

func (s *supabaseStore) Insert(ctx context.Context, events []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, eventRow{Text: e})
	}
	var inserted []eventRow
	_, err := s.client.From(s.table).Insert(rows, false, "", "", "").ExecuteTo(&inserted)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", s.table, err)
	}
	return nil
}
