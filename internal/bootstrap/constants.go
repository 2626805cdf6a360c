package bootstrap

import "time"

// File system permissions
const (
	DirPermission = 0755

	LogFilePermission = 0666
)

// Log file management
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is how many older session logs survive a restart
	LogFileRetentionCount = 9
)

// Logger setup messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting Trench Garden"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Event system
const (
	EventDefaultMaxRetries = 5

	EventDefaultRetryDelay = 2 * time.Second

	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Storage
const (
	LogMsgStorageOpened       = "Garden storage opened"
	LogMsgStorageCloseFailed  = "Garden storage close failed"
	ErrMsgUnknownStorage      = "unknown storage backend"
	ErrMsgFailedOpenStorage   = "failed to open garden storage"
	ErrMsgFailedMigrateSchema = "failed to migrate database schema"
)

// Event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgDiscordNotifierEnabled     = "Discord notifier enabled"
	LogMsgDiscordNotifierFailed      = "Discord notifier unavailable, continuing without it"
)

// Background jobs
const (
	JobNameGrowthTick        = "growth_tick"
	LogMsgBackgroundJobsUp   = "Background jobs started"
	LogMsgTracingInitialized = "Tracing initialized"
	ErrMsgFailedLoadCatalog  = "failed to load plant catalog"
	ErrMsgFailedSetupTracing = "failed to set up tracing"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgStoppingBackgroundJobs     = "Stopping background jobs..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDiscordCloseFailed         = "Discord notifier close failed"
	LogMsgTracingShutdownFailed      = "Tracing shutdown failed"
)
