// Package config manages user-level settings stored at ~/.cmdlayer/config.yaml.
// It provides functions to load, read, and write configuration keys and to
// resolve them once into a Settings value at the command boundary.
package config
