// Package ticker normalizes ticker symbols and derives the on-disk layout of a
// ticker's report folders. Nothing here touches the filesystem.
package ticker
