// Package frontmatter splits a command document into its leading metadata
// block and its body. Metadata is decoded as YAML; when the YAML decoder
// rejects the block a line-oriented recovery decoder takes over, so parsing
// never fails on hand-written files.
package frontmatter
