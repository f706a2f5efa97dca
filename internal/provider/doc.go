// Package provider turns the Al Adhan API into a total source of schedules.
//
// Fetch tries the cache, then the API, then falls back to a fixed day
// (Fajr 05:00, Dhuhr 12:00, Asr 15:30, Maghrib 18:00, Isha 19:30). Callers
// always get a Schedule; Result.Source and Result.Err say whether it is real.
//
// The schedule's timezone is taken from configuration when set, otherwise
// from the API's meta.timezone, otherwise the local zone.
package provider
