// Package jsonfile implements the Review Store and Daily Quota Store
// as whole-file JSON documents on local disk. Every mutating operation
// rewrites the full document; writes go to a temporary file in the same
// directory and are renamed into place so a crash mid-write never
// leaves a truncated document behind. A missing or malformed file is
// replaced with defaults at load time rather than failing startup.
package jsonfile
