package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrResource = "resource"
	AttrSource   = "source"
)

// Sources distinguish the data service from the terminal client in shared metrics.
const (
	SourceService = "service"
	SourceClient  = "client"
)
