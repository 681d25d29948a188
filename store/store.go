package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrOptimisticLock reports a guarded update that matched no row.
var ErrOptimisticLock = errors.New("optimistic lock failed")

func IsErrNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func IsErrDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func IsErrOptimisticLock(err error) bool {
	return errors.Is(err, ErrOptimisticLock)
}

func IsErrUnavailable(err error) bool {
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn)
}
