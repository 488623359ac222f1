package rbtree

import "sync/atomic"

import "github.com/bnclabs/golog"

var logok = int64(0)

// LogComponents enable logging. By default logging is disabled,
// if applications want log information for rbtree components
// call this function with "self" or "all" or "rbtree" as argument.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "rbtree", "self", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

func errorf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Errorf(format, v...)
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func tracef(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Tracef(format, v...)
	}
}
