package index

import "sync/atomic"

import "github.com/bnclabs/golog"

import "github.com/AlonMell/ostree/internal/rbtree"

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled,
// if applications want log information for index components
// call this function with "self" or "all" or "index" as argument.
// "all" also enables the underlying tree's logging.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "index", "self":
			atomic.StoreInt64(&logok, 1)
		case "all":
			atomic.StoreInt64(&logok, 1)
			rbtree.LogComponents("all")
		}
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Warnf(format, v...)
	}
}
