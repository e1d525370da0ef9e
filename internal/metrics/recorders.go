package metrics

import (
	"strconv"
	"time"
)

// RecordCatalogMiss counts an equipped item the scorer could not resolve.
func RecordCatalogMiss(reason string) {
	CatalogMisses.WithLabelValues(reason).Inc()
}

// RecordArmoryRequest records one armory call. status is the HTTP status, or 0
// when the request never got a response.
func RecordArmoryRequest(endpoint string, status int, elapsed time.Duration) {
	label := strconv.Itoa(status)
	if status == 0 {
		label = "error"
	}
	ArmoryRequestsTotal.WithLabelValues(endpoint, label).Inc()
	ArmoryRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// RecordJobRun counts a background job execution.
func RecordJobRun(job string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	BackgroundRuns.WithLabelValues(job, result).Inc()
}
