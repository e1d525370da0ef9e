package worker

// Log messages
const (
	LogMsgWorkerJobFailed = "Background job failed"
	LogMsgWorkerPanic     = "Background job panicked"
	LogMsgQueueFull       = "Worker queue full, dropping job"
)

// jobNameUnknown labels jobs that do not name themselves.
const jobNameUnknown = "unnamed"
