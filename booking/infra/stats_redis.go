package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ticket-booking/booking/domain"

	"github.com/redis/go-redis/v9"
)

// RedisReporter acumula os resultados em hashes no Redis.
//
// Layout das chaves (prefixo padrão "booking:stats"):
//
//	<prefix>[:run:<id>]:total           -> sold / sold_out / rejected / abandoned
//	<prefix>[:run:<id>]:show:<show>     -> idem, por sessão
//	<prefix>[:run:<id>]:minute:<yyyymmddhhmm>
type RedisReporter struct {
	rdb *redis.Client

	prefix string
	runID  string
	// ttl aplica apenas em chaves de série temporal e de execução.
	// Sem runID, total e show são cumulativos e não expiram.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"
}

type RedisReporterOption func(*RedisReporter)

func WithStatsPrefix(prefix string) RedisReporterOption {
	return func(r *RedisReporter) {
		r.prefix = strings.Trim(prefix, ":")
	}
}

// WithStatsRunID separa as chaves por execução.
func WithStatsRunID(id string) RedisReporterOption {
	return func(r *RedisReporter) { r.runID = strings.TrimSpace(id) }
}

func WithStatsTTL(d time.Duration) RedisReporterOption {
	return func(r *RedisReporter) { r.ttl = d }
}

func WithStatsBucket(bucket string) RedisReporterOption {
	return func(r *RedisReporter) { r.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func NewRedisReporter(rdb *redis.Client, opts ...RedisReporterOption) *RedisReporter {
	r := &RedisReporter{
		rdb:    rdb,
		prefix: "booking:stats",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RedisReporter) keyPrefix() string {
	if r.runID == "" {
		return r.prefix
	}
	return r.prefix + ":run:" + r.runID
}

func (r *RedisReporter) Report(ctx context.Context, res domain.Result) error {
	if r == nil || r.rdb == nil {
		return nil
	}

	field := res.Outcome.String()
	base := r.keyPrefix()
	scoped := r.runID != "" && r.ttl > 0

	totalKey := base + ":total"
	showKey := base + ":show:" + res.Show.String()

	pipe := r.rdb.Pipeline()
	pipe.HIncrBy(ctx, totalKey, field, 1)
	pipe.HIncrBy(ctx, showKey, field, 1)
	if scoped {
		pipe.Expire(ctx, totalKey, r.ttl)
		pipe.Expire(ctx, showKey, r.ttl)
	}

	if r.bucket == "minute" {
		bucketKey := fmt.Sprintf("%s:minute:%s", base, time.Now().UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, field, 1)
		if r.ttl > 0 {
			pipe.Expire(ctx, bucketKey, r.ttl)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
