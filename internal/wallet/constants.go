package wallet

// SpanConnect names the Connect span
const SpanConnect = "wallet.Connect"

// Log messages
const (
	LogMsgWalletConnected     = "Wallet connected"
	LogMsgPublishWalletFailed = "Failed to publish wallet event"
)
