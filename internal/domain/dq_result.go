package domain

import "time"

// DQResult is a single data-quality finding written by the ingestion side.
type DQResult struct {
	Id          int64     `db:"id"`
	DatasetName string    `db:"dataset_name"`
	RuleType    string    `db:"rule_type"`
	Severity    string    `db:"severity"`
	Message     string    `db:"message"`
	Timestamp   time.Time `db:"timestamp"`
}
