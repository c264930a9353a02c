package sqlconfig

import (
	"context"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

// IUserTable registers the identities that own transactions and budgets.
//
//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	Ensure(ctx context.Context, userID string) error
}

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

// Ensure inserts the user row if it does not exist yet.
func (t *UsersTable) Ensure(ctx context.Context, userID string) error {
	q := psql.Insert(
		im.Into("users", "id"),
		im.Values(psql.Arg(userID)),
		im.OnConflict("id").DoNothing(),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return fmt.Errorf("ensure user %s: %w", userID, err)
	}
	return nil
}
