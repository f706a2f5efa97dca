// Package config loads prayerclock's configuration.
//
// # Overview
//
// Configuration lives in ~/.config/prayerclock/config.toml. Every field is
// optional; a missing file yields Default(), which points at Bani Suwayf,
// Egypt with calculation method 5.
//
// # File Format
//
//	city = "Cairo"
//	country = "Egypt"
//	method = 5
//	api_base = "https://api.aladhan.com"
//	timezone = "Africa/Cairo"   # empty: use the zone reported by the API
//	refresh_minutes = 60
//	log_file = "~/.local/state/prayerclock/prayerclock.log"
//	log_level = "info"
//	redis_addr = ""             # empty: no cache
//	cache_ttl_hours = 24
//	language = "en"             # en or ar
//
// Strings are trimmed and blank values fall back to defaults. Paths starting
// with ~ are expanded against the user's home directory.
//
// # Environment
//
// After the file is read, PRAYERCLOCK_CITY, PRAYERCLOCK_COUNTRY,
// PRAYERCLOCK_METHOD, PRAYERCLOCK_API_BASE, PRAYERCLOCK_REDIS_ADDR and
// PRAYERCLOCK_LOG_LEVEL override it. LoadDotEnv can seed these from a .env
// file first; it never overrides variables already present.
//
// # Errors
//
// Load fails only for unreadable files, invalid TOML ("parse config: ...")
// or a non-numeric PRAYERCLOCK_METHOD.
package config
