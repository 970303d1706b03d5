// Package llm wraps the OpenAI Responses API for the two call shapes the
// gateway needs: free-text persona answers and schema-constrained
// interpretations. Schemas are reflected from Go types with
// GenerateSchema, and model output is decoded leniently with
// DecodeModelJSON since models occasionally wrap their JSON in prose.
// Transient API failures (429, 5xx) are retried a few times with short
// waits; anything else surfaces to the handler.
package llm
