package shop

// Span names
const (
	SpanList     = "shop.List"
	SpanPurchase = "shop.Purchase"
)

// Log messages
const (
	LogMsgItemPurchased         = "Shop item purchased"
	LogMsgPublishPurchaseFailed = "Failed to publish purchase event"
)
