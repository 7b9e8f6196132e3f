// Package commands builds the command catalog. It walks the project, user
// and plugin commands directories, turns nested folders into colon-separated
// namespaces, and merges the results so that project commands shadow user
// commands, which shadow plugin commands. It also serves the body of a
// single command document.
package commands
