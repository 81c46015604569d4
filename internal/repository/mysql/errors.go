package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/conduit-labs/conduit/domain"
)

const mysqlErrDuplicateEntry = 1062

// translateError maps driver-level failures onto domain sentinels so the
// usecases never see engine specifics. Uniqueness violations become
// ErrConflict; everything else propagates opaquely.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return domain.ErrConflict
	}
	return err
}
