// Package sources reads the configuration store that records plugin
// directories. A store holds entries of several kinds; the Registry narrows
// them to enabled plugin directories in ascending priority order, which is
// the precedence the command catalog relies on. Two store backends exist:
// a YAML file (FileStore) and a SQLite database (package sqlite).
package sources
