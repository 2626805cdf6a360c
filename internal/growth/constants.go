package growth

// Span and job names
const (
	SpanTick         = "growth.Tick"
	SpanUpdateGarden = "growth.UpdateGarden"
	JobName          = "growth-tick"
)

// Log messages
const (
	LogMsgTickStarted          = "Growth tick started"
	LogMsgTickCompleted        = "Growth tick completed"
	LogMsgGardenUpdateFailed   = "Growth update failed for garden"
	LogMsgListGardensFailed    = "Growth tick could not list gardens"
	LogMsgPlantMatured         = "Plant matured"
	LogMsgUnknownPlantDetails  = "Matured plant has no catalog entry"
	LogMsgPublishMaturedFailed = "Failed to publish plant matured event"
)
