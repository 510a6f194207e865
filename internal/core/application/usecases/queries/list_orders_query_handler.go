package queries

import (
	"context"
	"database/sql"

	"fleetdispatch/internal/core/domain/policy"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy policy.Policy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: policy.New()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Principal()
	if err := h.policy.CanListOrders(p); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)
	db := h.db.WithContext(ctx)
	if p.IsAdmin() {
		rows, err = db.Raw(selectOrders + newestFirst).Rows()
	} else {
		rows, err = db.Raw(selectOrders+` WHERE o.requester_id = ?`+newestFirst, p.UserID.Bytes()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
