package shared

import (
	"context"
	"math"
	"strconv"
	"strings"
	"travelease/shared/cache"
	"travelease/shared/dto"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins key parts with the cache namespace separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery builds a cache key that varies with the query
// params so each page is cached separately.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, parts ...string) string {
	keyParts := append([]string{prefix}, parts...)
	keyParts = append(
		keyParts,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
	)

	return BuildCacheKey(keyParts...)
}

// InvalidateCaches clears every cache entry under the given prefix.
// Failures are logged only; cache invalidation is best-effort.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
