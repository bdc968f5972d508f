// Package tr передаёт открытую транзакцию pgx через контекст:
// сценарии кладут её в ключ CtxKey, репозитории достают через TxFromCtx.
package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/matbakh-tech/go-backend/pkg/e"
)

const CtxKey = "tx"

// TxFromCtx извлекает pgx.Tx из контекста.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(CtxKey).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}
