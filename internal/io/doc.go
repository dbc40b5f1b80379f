// Package ioutils provides filesystem and image helpers for fanbox-dl:
// directory creation, small file writes, and the cover-art resize and
// JPEG conversion pipeline.
package ioutils
