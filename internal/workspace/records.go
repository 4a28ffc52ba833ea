package workspace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ShotaGhoona/starup-hp/internal/markup"
	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
)

type listResponse[T any] struct {
	Results    []T     `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

func (l listResponse[T]) cursor() (string, bool) {
	if !l.HasMore || l.NextCursor == nil || *l.NextCursor == "" {
		return "", false
	}
	return *l.NextCursor, true
}

type queryRequest struct {
	Sorts       []schema.Sort  `json:"sorts,omitempty"`
	Filter      map[string]any `json:"filter,omitempty"`
	PageSize    int            `json:"page_size,omitempty"`
	StartCursor string         `json:"start_cursor,omitempty"`
}

// FetchRecords queries a collection and returns every matching record in
// the order the workspace returned them.
func (c *Client) FetchRecords(ctx context.Context, collectionID string, q schema.Query) ([]property.Record, error) {
	id, err := NormalizeID(collectionID)
	if err != nil {
		return nil, err
	}

	path := "/databases/" + id + "/query"
	return drain(func(cursor string) (listResponse[property.Record], error) {
		var page listResponse[property.Record]
		body := queryRequest{
			Sorts:       q.Sorts,
			Filter:      q.Filter,
			PageSize:    c.pageSize,
			StartCursor: cursor,
		}
		err := c.do(ctx, http.MethodPost, path, nil, body, &page)
		return page, err
	})
}

// FetchRecordDetail returns a single record.
func (c *Client) FetchRecordDetail(ctx context.Context, recordID string) (property.Record, error) {
	id, err := NormalizeID(recordID)
	if err != nil {
		return property.Record{}, err
	}
	var record property.Record
	if err := c.do(ctx, http.MethodGet, "/pages/"+id, nil, nil, &record); err != nil {
		return property.Record{}, err
	}
	return record, nil
}

// FetchContentNodes returns the top-level blocks of a record's body in
// document order.
func (c *Client) FetchContentNodes(ctx context.Context, recordID string) ([]markup.Node, error) {
	id, err := NormalizeID(recordID)
	if err != nil {
		return nil, err
	}

	path := "/blocks/" + id + "/children"
	blocks, err := drain(func(cursor string) (listResponse[rawBlock], error) {
		var page listResponse[rawBlock]
		query := url.Values{"page_size": {strconv.Itoa(c.pageSize)}}
		if cursor != "" {
			query.Set("start_cursor", cursor)
		}
		err := c.do(ctx, http.MethodGet, path, query, nil, &page)
		return page, err
	})
	if err != nil {
		return nil, err
	}

	nodes := make([]markup.Node, 0, len(blocks))
	for _, block := range blocks {
		nodes = append(nodes, block.node())
	}
	return nodes, nil
}

func drain[T any](fetch func(cursor string) (listResponse[T], error)) ([]T, error) {
	var (
		out    []T
		cursor string
		seen   = map[string]struct{}{}
	)
	for {
		page, err := fetch(cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Results...)

		next, more := page.cursor()
		if !more {
			return out, nil
		}
		if _, dup := seen[next]; dup {
			return nil, ErrCursorLoop
		}
		seen[next] = struct{}{}
		cursor = next
	}
}
