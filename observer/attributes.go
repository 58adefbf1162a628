package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for chunking observability spans and metrics.
var (
	AttrChunkerKind = attribute.Key("chunk.kind")
	AttrChunkCount  = attribute.Key("chunk.count")
	AttrChunkBytes  = attribute.Key("chunk.bytes")
	AttrInputBytes  = attribute.Key("chunk.input_bytes")
	AttrStatus      = attribute.Key("chunk.status")
)
