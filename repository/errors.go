package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrLockDeadlock   = 1213
	mysqlErrLockWaitTimeout = 1205
)

var (
	// ErrStoreUnavailable when the database can not be reached
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDuplicateKey when a unique constraint is violated
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrLockConflict when the transaction lost a lock race (deadlock or lock wait timeout)
	ErrLockConflict = errors.New("lock conflict")
)

// ClassifyError wraps driver errors with the sentinel errors of this package
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		case mysqlErrLockDeadlock, mysqlErrLockWaitTimeout:
			return fmt.Errorf("%w: %v", ErrLockConflict, err)
		default:
			return err
		}
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
