// Package config handles configuration loading for persona-gateway.
//
// Configuration is loaded from a YAML file with environment variable
// expansion. Values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${PERSONA_JWT_SECRET}"
//
// Sections:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//
//	auth:
//	  jwt_secret: "${PERSONA_JWT_SECRET}"   # empty = auth requests fail 500
//
//	storage:
//	  data_dir: "/var/lib/persona-gateway"  # JSON document stores
//
//	openai:
//	  api_key: "${OPENAI_API_KEY}"
//	  model: "gpt-4.1"
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// Load() validates that server.http_addr and storage.data_dir are set. The
// JWT secret is deliberately not validated at load time; its absence is
// surfaced per-request so unauthenticated routes keep working.
package config
