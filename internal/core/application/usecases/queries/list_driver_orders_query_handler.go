package queries

import (
	"context"

	"fleetdispatch/internal/core/domain/policy"

	"gorm.io/gorm"
)

type ListDriverOrdersQueryHandler struct {
	db     *gorm.DB
	policy policy.Policy
}

func NewListDriverOrdersQueryHandler(db *gorm.DB) ListDriverOrdersQueryHandler {
	return ListDriverOrdersQueryHandler{db: db, policy: policy.New()}
}

func (h ListDriverOrdersQueryHandler) Handle(ctx context.Context, query ListDriverOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Principal()
	if err := h.policy.CanListDriverOrders(p); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectOrders+` WHERE v.driver_id = ?`+newestFirst, p.UserID.Bytes()).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
