package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"

	dto "task-manager.com/task-manager/internal/data_models"
	"task-manager.com/task-manager/internal/http/validators"
	model "task-manager.com/task-manager/internal/models"
)

const sampleErrorLimit = 5

// ImportCSV streams the upload row by row: each data row runs through the
// create validator, failures are collected instead of aborting, and all
// staged rows are written in one atomic batch after the stream is exhausted.
// Only a malformed stream or a failed batch write surfaces as an error.
func (s *TaskService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	rows, err := newCSVRowIterator(r)
	if err != nil {
		return nil, err
	}

	staged := make([]model.Task, 0)
	sampleErrors := make([]dto.ImportRowError, 0, sampleErrorLimit)
	rejected := 0

	for line := 1; ; line++ {
		record, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		req := dto.CreateTaskRequest{
			Title:       record["title"],
			Description: record["description"],
		}
		if err := validators.ValidateCreateTaskRequest(&req); err != nil {
			rejected++
			if len(sampleErrors) < sampleErrorLimit {
				sampleErrors = append(sampleErrors, dto.ImportRowError{Line: line, Error: err.Error()})
			}
			continue
		}

		now := model.Now()
		staged = append(staged, model.Task{
			ID:          uuid.NewString(),
			Title:       req.Title,
			Description: req.Description,
			Completed:   false,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if len(staged) > 0 {
		if err := s.repo.BulkInsert(ctx, staged); err != nil {
			return nil, err
		}
	}

	return &dto.ImportResult{
		Imported:     len(staged),
		Rejected:     rejected,
		SampleErrors: sampleErrors,
	}, nil
}

// csvRowIterator is a lazy, single-pass reader over a CSV stream: the first
// row names the columns, every later Read yields one header-keyed record.
// Rows are parsed on demand and never buffered.
type csvRowIterator struct {
	reader *csv.Reader
	header []string
}

func newCSVRowIterator(r io.Reader) (*csvRowIterator, error) {
	br := bufio.NewReader(r)
	stripBOM(br)

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// empty upload: zero rows, not an error
			return &csvRowIterator{reader: cr}, nil
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	return &csvRowIterator{reader: cr, header: header}, nil
}

// Next returns io.EOF once the stream is exhausted. Fields beyond the header
// width are dropped, missing trailing fields read as "".
func (it *csvRowIterator) Next() (map[string]string, error) {
	if it.header == nil {
		return nil, io.EOF
	}

	fields, err := it.reader.Read()
	if err != nil {
		return nil, err
	}

	record := make(map[string]string, len(it.header))
	for i, name := range it.header {
		value := ""
		if i < len(fields) {
			value = strings.TrimSpace(fields[i])
		}
		record[name] = value
	}

	return record, nil
}

func stripBOM(br *bufio.Reader) {
	bom, err := br.Peek(3)
	if err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}
}
