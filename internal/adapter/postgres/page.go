package postgres

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/account-service/internal/domain"
)

// Keyset applies keyset pagination over (created_at, id) ascending.
// It fetches one extra row so BuildPage can report HasNextPage.
func Keyset(b squirrel.SelectBuilder, req domain.PageRequest) (squirrel.SelectBuilder, error) {
	req = req.Normalize()

	if req.After != nil {
		cur, err := domain.DecodeCursor(*req.After)
		if err != nil {
			return b, err
		}
		b = b.Where(squirrel.Expr("(created_at, id) > (?, ?)", cur.CreatedAt, cur.ID))
	}

	return b.OrderBy("created_at ASC", "id ASC").Limit(uint64(req.First + 1)), nil
}

// BuildPage trims the extra row fetched by Keyset and fills the page info.
func BuildPage[T any](items []T, req domain.PageRequest, cursor func(T) domain.Cursor) domain.Page[T] {
	req = req.Normalize()

	page := domain.Page[T]{Items: items}
	if len(items) > req.First {
		page.Items = items[:req.First]
		page.HasNextPage = true
	}
	if n := len(page.Items); n > 0 {
		end := cursor(page.Items[n-1]).Encode()
		page.EndCursor = &end
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page
}
