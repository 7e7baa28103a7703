package core

import "time"

// Metrics records service measurements
type Metrics interface {
	// RecordOperation counts a ledger operation by action and outcome
	RecordOperation(action, outcome string)
	// RecordListenerFailure counts a failed or panicking event handler
	RecordListenerFailure(listener string)
	// SetOpenCheckIns sets how many users are checked in today
	SetOpenCheckIns(count int)
	// SetStaleCheckIns sets how many open entries are left from earlier days
	SetStaleCheckIns(count int)
	// ObserveHTTPRequest records one served request
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}
