package datamodels

// Unrecognized JSON fields are dropped by the decoder and never reach
// storage.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Pointer fields distinguish "absent" from "present but empty".
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ImportRowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// ImportResult reports a partial-success CSV import. SampleErrors holds at
// most the first five row failures.
type ImportResult struct {
	Imported     int              `json:"imported"`
	Rejected     int              `json:"rejected"`
	SampleErrors []ImportRowError `json:"sampleErrors"`
}
