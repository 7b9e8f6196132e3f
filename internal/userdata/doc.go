// Package userdata resolves the on-disk locations cmdlayer reads: the home
// directory that holds user commands, the ~/.cmdlayer data directory, and
// the plugin source store files. It also reports the health of the
// command roots for the doctor command.
package userdata
