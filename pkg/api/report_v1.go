// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for one deletion-scan run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	K          int               `json:"k"`
	DelSize    int               `json:"del_size"`
	Limit      uint64            `json:"limit,omitempty"`
	Positions  uint64            `json:"positions_processed"`
	Kmers      uint64            `json:"kmers_examined"`
	SeqFiles   []string          `json:"sequence_files,omitempty"`
	AbundHist  map[string]uint64 `json:"abundance_histogram"`
	UniqueHist map[string]uint64 `json:"uniqueness_histogram"`
}
