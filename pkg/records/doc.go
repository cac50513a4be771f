// Package records exposes the public contracts for the record ingestion
// stages: sources, raw documents, the typed record categories, and the
// Loader/Decoder interfaces. Implementations live under internal/records to
// keep decoding details hidden from consumers.
package records
