// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 1 * time.Hour

// SessionCachePrefix is the prefix for coordination session keys.
const SessionCachePrefix = "coordination:session:"

// SessionCacheTTL is how long an idle coordination session survives.
const SessionCacheTTL = 24 * time.Hour

// WeatherCacheKey holds the cached forecast payload.
const WeatherCacheKey = "weather:forecast"

// WeatherCacheTTL bounds forecast staleness.
const WeatherCacheTTL = 30 * time.Minute
