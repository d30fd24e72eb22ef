package logger

import (
	"fmt"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int32 = INFO
	limiter int64
	filter  atomic.Value
	counter *hashmap.HashMap
)

func init() {
	counter = &hashmap.HashMap{}
}

// Setup applies the level, the RE2 filter and the repetition limiter at once.
func Setup(l int, pattern string, limit int) error {
	err := SetFilter(pattern)
	if err != nil {
		return err
	}
	SetLevel(l)
	SetLimiter(limit)
	return nil
}

func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

func Level() int {
	return int(atomic.LoadInt32(&level))
}

func SetLimiter(l int) {
	atomic.StoreInt64(&limiter, int64(l))
}

func SetFilter(pattern string) error {
	if pattern == "" {
		filter.Store((*regexp.Regexp)(nil))
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter.Store(reg)
	return nil
}

func Println(v ...interface{}) {
	if Level() >= INFO {
		log.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	if Level() >= INFO {
		log.Printf(format, v...)
	}
}

func Errorf(format string, v ...interface{}) {
	if Level() >= ERROR {
		log.Printf("ERROR "+format, v...)
	}
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if Level() < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	log.Print(out)
}

func limiterAvailable(out string) bool {
	limit := atomic.LoadInt64(&limiter)
	if limit == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	count := atomic.AddInt64(actual, 1) - 1
	return count < limit
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	reg, _ := filter.Load().(*regexp.Regexp)
	if reg == nil || reg.MatchString(out) {
		return out
	}
	return ""
}
