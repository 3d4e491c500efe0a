package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/datanexus/crm-service/internal/middlewares"
)

// execer returns the per-request transaction when one was opened by the
// tx middleware, and the shared pool otherwise.
func execer(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
