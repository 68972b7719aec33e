package infra

import (
	"context"
	"errors"

	"ticket-booking/booking/domain"

	"go.uber.org/zap"
)

// LogReporter narra cada resultado no logger.
// Sold/SoldOut em Info, Rejected/Abandoned em Warn.
type LogReporter struct {
	log *zap.Logger
}

func NewLogReporter(log *zap.Logger) *LogReporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogReporter{log: log}
}

func (r *LogReporter) Report(_ context.Context, res domain.Result) error {
	fields := []zap.Field{
		zap.Int("worker", int(res.Worker)),
		zap.Int("show", int(res.Show)),
		zap.Stringer("outcome", res.Outcome),
	}
	switch res.Outcome {
	case domain.Sold:
		r.log.Info("booking successful", append(fields, zap.Int("remaining", res.Remaining))...)
	case domain.SoldOut:
		r.log.Info("show sold out", fields...)
	default:
		r.log.Warn("booking not attempted", append(fields, zap.Error(res.Err))...)
	}
	return nil
}

// MultiReporter repassa o resultado para todos os reporters, na ordem.
// Um reporter com erro não impede os seguintes.
type MultiReporter []domain.Reporter

func (m MultiReporter) Report(ctx context.Context, res domain.Result) error {
	var errs []error
	for _, r := range m {
		if r == nil {
			continue
		}
		if err := r.Report(ctx, res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
