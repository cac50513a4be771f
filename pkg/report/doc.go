// Package report defines the renderer-neutral document model (an append-only
// sequence of heading, paragraph, and table blocks) and the builder that maps
// decoded record categories onto it using the loaded templates.
package report
