package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

type result struct {
	query   string
	columns []string
	rows    [][]interface{}
}

// run executes queries with at most parallel of them in flight and returns
// the results in query order.
func run(ctx context.Context, db *sql.DB, queries []string, parallel int) ([]*result, error) {
	results := make([]*result, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	for i, q := range queries {
		g.Go(func() error {
			r, err := query(ctx, db, q)
			if err != nil {
				return fmt.Errorf("query #%d %q: %w", i+1, q, err)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func query(ctx context.Context, db *sql.DB, q string) (_ *result, err error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); err == nil {
			err = closeErr
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	r := &result{query: q, columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err = rows.Scan(pointers...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		r.rows = append(r.rows, values)
	}

	return r, rows.Err()
}

// readQueries reads one query per non-blank line.
func readQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			queries = append(queries, line)
		}
	}

	return queries, scanner.Err()
}
