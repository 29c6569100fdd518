// Package jobfile implements parsing of YAML batch job files describing a
// list of transfer operations between filesystem endpoints.
package jobfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoJobs is an error that occurs when a job file contains no jobs.
	ErrNoJobs = errors.New("job file contains no jobs")

	// ErrEmptyJob is an error that occurs when a job list entry is empty.
	ErrEmptyJob = errors.New("job entry is empty")

	// ErrInvalidOp is an error that occurs when a job names an operation
	// other than "copy" or "move".
	ErrInvalidOp = errors.New("invalid job operation")

	// ErrMissingURI is an error that occurs when a job is missing its source
	// or destination URI.
	ErrMissingURI = errors.New("job is missing a source or destination uri")
)

// Job is one transfer operation read from a job file. The ID is assigned at
// load time and not part of the file format.
type Job struct {
	ID     string `yaml:"-"`
	Op     string `yaml:"op"`
	Src    string `yaml:"src"`
	Dst    string `yaml:"dst"`
	Verify bool   `yaml:"verify"`
}

type jobFile struct {
	Jobs []*Job `yaml:"jobs"`
}

// Load reads and validates a YAML job file, assigning each [Job] a unique ID.
func Load(path string) ([]*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("(jobfile) failed to read %q: %w", path, err)
	}

	return Parse(data)
}

// Parse parses and validates YAML job file contents, assigning each [Job] a
// unique ID.
func Parse(data []byte) ([]*Job, error) {
	var file jobFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("(jobfile) failed to parse: %w", err)
	}

	if len(file.Jobs) == 0 {
		return nil, fmt.Errorf("(jobfile) %w", ErrNoJobs)
	}

	for i, job := range file.Jobs {
		if job == nil {
			return nil, fmt.Errorf("(jobfile) job %d: %w", i, ErrEmptyJob)
		}

		if job.Op != "copy" && job.Op != "move" {
			return nil, fmt.Errorf("(jobfile) job %d: %q: %w", i, job.Op, ErrInvalidOp)
		}

		if job.Src == "" || job.Dst == "" {
			return nil, fmt.Errorf("(jobfile) job %d: %w", i, ErrMissingURI)
		}

		job.ID = uuid.NewString()
	}

	return file.Jobs, nil
}
