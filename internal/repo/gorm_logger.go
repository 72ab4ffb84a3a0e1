package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger adapts GORM's logger to zerolog. Lines go to the logger found in
// the statement's context, so SQL logged during a request carries its
// request_id.
//
// Failed statements log at error (record-not-found excepted), statements
// slower than the threshold at warn, and every statement at trace.
type GormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

var _ logger.Interface = (*GormLogger)(nil)

// NewGormLogger returns a GormLogger at warn level. slow <= 0 disables
// slow-statement logging.
func NewGormLogger(slow time.Duration) *GormLogger {
	return &GormLogger{level: logger.Warn, slowThreshold: slow}
}

// LogMode returns a copy logging at level.
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		zerolog.Ctx(ctx).Info().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		zerolog.Ctx(ctx).Warn().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		zerolog.Ctx(ctx).Error().Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace logs one executed statement. The SQL is rendered by GORM with its
// bound values, so anything above trace level drops it unless the statement
// failed or was slow.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	lg := zerolog.Ctx(ctx)

	var ev *zerolog.Event
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		ev = lg.Error().Err(err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		ev = lg.Warn().Dur("threshold", l.slowThreshold)
	case l.level >= logger.Info:
		ev = lg.Trace()
	default:
		return
	}
	sql, rows := fc()
	ev.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("gorm")
}
