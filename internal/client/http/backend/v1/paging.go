package backendclient

import "context"

// PageFunc fetches one page of a list endpoint. Pages start at 1.
type PageFunc[T any] func(ctx context.Context, page, limit int) ([]T, Paging, error)

// ListAll walks a list endpoint page by page. The backend may cap the page
// size below limit, so a reported total decides when to stop. Without a
// total a short page marks the end.
func ListAll[T any](ctx context.Context, limit int, fetch PageFunc[T]) ([]T, error) {
	out := []T{}

	for page := 1; ; page++ {
		batch, p, err := fetch(ctx, page, limit)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return out, nil
		}
		out = append(out, batch...)

		if p.Total > 0 {
			if len(out) >= p.Total {
				return out, nil
			}
			continue
		}
		if len(batch) < limit {
			return out, nil
		}
	}
}
