package lambdapi

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/xstats"
)

const (
	statDispatchTiming = "dispatch.timing"
	statDispatchError  = "dispatch.error"
)

// StatFromContext extracts the metrics client injected for the current
// invocation. A no-op client is returned when none was injected.
func StatFromContext(ctx context.Context) Stat {
	return xstats.FromContext(ctx)
}

// observe emits per-invocation metrics tagged by method and final status.
func (d *Dispatcher) observe(method string, statusCode int, start time.Time) {
	if d.stat == nil {
		return
	}
	tags := []string{"method:" + method, "status:" + strconv.Itoa(statusCode)}
	d.stat.Timing(statDispatchTiming, time.Since(start), tags...)
	if statusCode >= 500 {
		d.stat.Count(statDispatchError, 1, tags...)
	}
}
