// Package reportconfig models the two per-ticker report configuration files
// (Initiation and Updates), parses them, validates them against embedded JSON
// schemas and checks individual field formats. It also knows the placeholder
// defaults written by the scaffolder so unedited fields can be told apart from
// malformed ones.
package reportconfig
