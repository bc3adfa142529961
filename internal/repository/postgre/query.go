package postgre

import (
	"fmt"
	"strings"

	repo "giftlist/internal/repository"
)

// The builders below turn Options structs into WHERE clauses. All non-empty
// fields are applied as AND conditions; an empty filter degenerates to 1=1.

func buildGetOneUserQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.IdentificationID != "" {
		conditions = append(conditions, fmt.Sprintf("identification_id = $%d", idx))
		args = append(args, opt.IdentificationID)
	}
	return joinConditions(conditions), args
}

func buildGetOneListQuery(opt repo.GetOneListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
	}
	return joinConditions(conditions), args
}

func buildCountListsQuery(opt repo.ListListsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "user_id = $1")
		args = append(args, opt.UserID)
	}
	return joinConditions(conditions), args
}

func buildListListsQuery(opt repo.ListListsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY created_at, id")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}

func buildGetOneItemQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.ListID != "" {
		conditions = append(conditions, fmt.Sprintf("list_id = $%d", idx))
		args = append(args, opt.ListID)
		idx++
	}
	if opt.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title = $%d", idx))
		args = append(args, opt.Title)
	}
	return joinConditions(conditions), args
}

// buildCountItemsWhere mirrors the ListItems filters without pagination.
func buildCountItemsWhere(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ListID != "" {
		conditions = append(conditions, fmt.Sprintf("list_id = $%d", idx))
		args = append(args, opt.ListID)
	}
	if !opt.IncludeArchived {
		conditions = append(conditions, "NOT archived")
	}
	return joinConditions(conditions), args
}

func buildListItemsQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.ListID != "" {
		conditions = append(conditions, fmt.Sprintf("list_id = $%d", idx))
		args = append(args, opt.ListID)
		idx++
	}
	if !opt.IncludeArchived {
		conditions = append(conditions, "NOT archived")
	}
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}
	parts = append(parts, "ORDER BY ordinal, created_at, id")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}
	return strings.Join(parts, " "), args
}

func buildCountItemsQuery(opt repo.CountItemsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ListID != "" {
		conditions = append(conditions, "list_id = $1")
		args = append(args, opt.ListID)
	}
	return joinConditions(conditions), args
}

func buildGetOneReservationQuery(opt repo.GetOneReservationOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.ItemID != "" {
		conditions = append(conditions, fmt.Sprintf("item_id = $%d", idx))
		args = append(args, opt.ItemID)
	}
	return joinConditions(conditions), args
}

func buildListReservationsQuery(opt repo.ListReservationsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.HolderID != "" {
		conditions = append(conditions, "holder_id = $1")
		args = append(args, opt.HolderID)
	}
	return joinConditions(conditions), args
}

func joinConditions(conditions []string) string {
	if len(conditions) == 0 {
		return "1=1"
	}
	return strings.Join(conditions, " AND ")
}
