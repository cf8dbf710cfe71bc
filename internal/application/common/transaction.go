// Package common holds ports shared by the application services.
package common

import "context"

// TransactionManager runs fn in a database transaction. Repositories called
// with the context passed to fn take part in the same transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
