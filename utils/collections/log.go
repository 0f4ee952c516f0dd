package collections

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

var logger atomic.Value

func init() {
	SetLogger(nil)
}

func getLogger() *log.Entry {
	return logger.Load().(*log.Entry)
}

// SetLogger routes the package logs through l. A nil entry restores the standard logger.
// It is safe to call while sets are in use.
func SetLogger(l *log.Entry) {
	if l == nil {
		l = log.NewEntry(log.StandardLogger())
	}
	logger.Store(l.WithFields(log.Fields{"component": "collections"}))
}
