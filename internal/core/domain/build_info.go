package domain

import "time"

// BuildInfo records the last successful bundle of a job.
type BuildInfo struct {
	JobKey     string    `json:"job_key,omitzero"`
	OutputPath string    `json:"output_path,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
