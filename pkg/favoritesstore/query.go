package favoritesstore

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// Column expressions of a list resolved for a caller. Every expression takes
// the caller address as its only argument unless stated otherwise.
const (
	// The default list has no stored updated_at: it is the caller's last pick in it.
	listUpdatedAtExpr = `CASE WHEN l.user_address = '` + favorites.DefaultListUserAddress + `'
		THEN (SELECT MAX(p.created_at) FROM picks AS p WHERE p.list_id = l.id AND p.user_address = ?)
		ELSE l.updated_at END AS updated_at`
	// Picks of the caller and of the owner.
	listItemsCountExpr = `(SELECT COUNT(*) FROM picks AS p
		WHERE p.list_id = l.id AND p.user_address IN (?, l.user_address)) AS items_count`
	listPreviewExpr = `ARRAY(SELECT p.item_id FROM picks AS p
		WHERE p.list_id = l.id AND p.user_address IN (?, l.user_address)
		ORDER BY p.created_at DESC LIMIT ?) AS preview`
	// Picks of the caller only, used when listing the caller's own lists.
	ownItemsCountExpr = `(SELECT COUNT(*) FROM picks AS p
		WHERE p.list_id = l.id AND p.user_address = ?) AS items_count`
	ownPreviewExpr = `ARRAY(SELECT p.item_id FROM picks AS p
		WHERE p.list_id = l.id AND p.user_address = ?
		ORDER BY p.created_at DESC LIMIT ?) AS preview`
	// Takes the caller and the item id.
	isItemInListExpr = `EXISTS (SELECT 1 FROM picks AS p
		WHERE p.list_id = l.id AND p.user_address = ? AND p.item_id = ?) AS is_item_in_list`

	listIsPrivateExpr = `NOT EXISTS (SELECT 1 FROM acl AS x WHERE x.list_id = l.id) AS is_private`
	listIsDefaultExpr = `(l.user_address = '` + favorites.DefaultListUserAddress + `') AS is_default`
)

// sortColumns maps the accepted sort keys to output columns. Only these
// identifiers ever reach ORDER BY.
var sortColumns = map[favorites.SortBy]string{
	favorites.SortByCreatedAt: "created_at",
	favorites.SortByUpdatedAt: "updated_at",
	favorites.SortByName:      "name",
}

// applyAccessRule restricts a query over lists aliased "l" to the lists rule
// allows and selects the caller's strongest grant as "permission". Several
// grants yield several rows; callers order by permission to keep the strongest.
func applyAccessRule(q *bun.SelectQuery, rule favorites.AccessRule) *bun.SelectQuery {
	granting := permissionValues(rule.Required.Granting())
	if len(granting) == 0 {
		return q.
			ColumnExpr("NULL::varchar AS permission").
			Where("l.user_address IN (?)", bun.In(rule.Owners()))
	}

	return q.
		ColumnExpr("a.permission").
		Join("LEFT JOIN acl AS a ON a.list_id = l.id AND a.grantee IN (?) AND a.permission IN (?)",
			bun.In(rule.Grantees()), bun.In(granting)).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("l.user_address IN (?)", bun.In(rule.Owners())).
				WhereOr("a.permission IS NOT NULL")
		})
}

// applyListsOptions adds the optional filters, sorting and paging of a lists query.
func applyListsOptions(q *bun.SelectQuery, opts favorites.ListsOptions) *bun.SelectQuery {
	if opts.ItemID != nil {
		q = q.ColumnExpr(isItemInListExpr, opts.UserAddress, *opts.ItemID)
	}
	if opts.Query != nil && *opts.Query != "" {
		q = q.Where("l.name ILIKE ?", "%"+escapeLike(*opts.Query)+"%")
	}

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		column = sortColumns[favorites.SortByCreatedAt]
	}
	direction := "DESC"
	if opts.SortDirection == favorites.SortAsc {
		direction = "ASC"
	}
	order := column + " " + direction
	if opts.SortBy == favorites.SortByUpdatedAt {
		order += " NULLS LAST"
	}

	q = q.OrderExpr("is_default DESC").OrderExpr(order)
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	return q
}

func permissionValues(perms []favorites.Permission) []string {
	values := make([]string, len(perms))
	for i, p := range perms {
		values[i] = string(p)
	}
	return values
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// pageTotal returns the window count read from rows, or, when a page past the
// end came back empty, the count of q's first page.
func pageTotal[T any](ctx context.Context, q *bun.SelectQuery, rows []T, offset int, count func(*T) int) (int, error) {
	if len(rows) > 0 {
		return count(&rows[len(rows)-1]), nil
	}
	if offset <= 0 {
		return 0, nil
	}

	var first []T
	if err := q.Offset(0).Limit(1).Scan(ctx, &first); err != nil {
		return 0, err
	}
	if len(first) == 0 {
		return 0, nil
	}
	return count(&first[0]), nil
}
