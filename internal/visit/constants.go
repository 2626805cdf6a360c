package visit

// Span names
const (
	SpanView     = "visit.View"
	SpanFeatured = "visit.Featured"
)

// LogMsgFeaturedComputed is logged when the featured ranking is rebuilt
const LogMsgFeaturedComputed = "Featured gardens computed"
