package domain

// Status classifies the outcome of a single check run.
type Status string

const (
	// StatusPass means the check ran and found nothing wrong.
	StatusPass Status = "pass"

	// StatusFail means the check ran and found a violated requirement.
	// This is the intended output of a failing validation, not an error.
	StatusFail Status = "fail"

	// StatusSkipped means the activation gate decided the check does not
	// apply to this host. Distinct from both pass and fail.
	StatusSkipped Status = "skipped"

	// StatusError means the check could not reliably produce a verdict,
	// e.g. the mount table did not resolve for a required path.
	StatusError Status = "error"
)

// Result is the verdict of one check on one host.
type Result struct {
	Check   string
	Status  Status
	Message string

	// Populated on disk-space failures for structured reporting.
	Path          string
	FreeBytes     int64
	RequiredBytes int64
}

// Failed reports whether the result should fail the host's preflight.
func (r Result) Failed() bool {
	return r.Status == StatusFail || r.Status == StatusError
}
