package store

import (
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Several tp processes may write one WAL database at once. busy_timeout
// absorbs most lock waits inside the driver; writes that still fail with a
// lock or short-read error are retried here.

// writePolicy bounds the retries of a single store write.
type writePolicy struct {
	retries uint64 // attempts after the first
	initial time.Duration
	ceiling time.Duration
	jitter  float64
}

var defaultWritePolicy = writePolicy{
	retries: 3,
	initial: 50 * time.Millisecond,
	ceiling: 500 * time.Millisecond,
	jitter:  0.5,
}

func (p writePolicy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initial
	b.MaxInterval = p.ceiling
	b.Multiplier = 2
	b.RandomizationFactor = p.jitter
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, p.retries)
}

// transientCodes are the primary and extended result codes worth retrying.
var transientCodes = map[int]bool{
	sqlite3.SQLITE_BUSY:             true,
	sqlite3.SQLITE_LOCKED:           true,
	sqlite3.SQLITE_IOERR_SHORT_READ: true,
}

// isTransientSQLiteErr reports whether err is a lock conflict or WAL short
// read that may succeed on a later attempt.
func isTransientSQLiteErr(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return transientCodes[code] || transientCodes[code&0xff]
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "SQLITE_LOCKED") ||
		strings.Contains(msg, "IOERR_SHORT_READ")
}

// retryWrite runs fn until it succeeds, fails with a non-transient error or
// p runs out of retries. notify, when set, sees each error that is about to
// be retried and the wait before the next attempt.
func retryWrite(p writePolicy, fn func() error, notify backoff.Notify) error {
	op := func() error {
		err := fn()
		if err != nil && !isTransientSQLiteErr(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.RetryNotify(op, p.backOff(), notify)
}
