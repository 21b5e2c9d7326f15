package file

//go:generate mockgen -source source.go -destination source_mock.go -package file

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/exp/slices"
)

// DefaultMaxReferences is the largest reference sequence a trace file may hold unless the caller
// configures another bound.
const DefaultMaxReferences = 100

// Source supplies the ordered reference sequence of a simulation run. The whole sequence must be
// available before the first reference is processed, since the optimal policy looks ahead.
type Source interface {
	References() ([]PageId, error)
}

// Sequence is a Source backed by an in-memory reference sequence.
type Sequence []PageId

// NewSequence builds a Sequence from plain integers.
func NewSequence(pages ...int) Sequence {
	seq := make(Sequence, len(pages))
	for i, p := range pages {
		seq[i] = PageId(p)
	}
	return seq
}

// References returns a copy of the sequence so that callers cannot mutate the source. Like a trace file, a
// sequence may hold at most DefaultMaxReferences ids.
func (s Sequence) References() ([]PageId, error) {
	if len(s) > DefaultMaxReferences {
		return nil, fmt.Errorf("sequence holds %d references, more than %d", len(s), DefaultMaxReferences)
	}
	for i, p := range s {
		if p < 0 {
			return nil, fmt.Errorf("reference %d: negative page id %d", i, int(p))
		}
	}
	return slices.Clone([]PageId(s)), nil
}

/*
TraceFile reads a reference sequence from a text file. The file holds decimal page ids separated by any
whitespace (spaces, tabs or newlines). The file is read on every call to References, so a TraceFile can be
shared between runs.
*/
type TraceFile struct {
	path          string
	maxReferences int
}

// NewTraceFile creates a TraceFile reading at most maxReferences ids from path. A non-positive bound
// falls back to DefaultMaxReferences.
func NewTraceFile(path string, maxReferences int) *TraceFile {
	if maxReferences <= 0 {
		maxReferences = DefaultMaxReferences
	}
	return &TraceFile{
		path:          path,
		maxReferences: maxReferences,
	}
}

// Path returns the location of the trace file.
func (t *TraceFile) Path() string {
	return t.path
}

// MaxReferences returns the largest sequence the trace file may hold.
func (t *TraceFile) MaxReferences() int {
	return t.maxReferences
}

func (t *TraceFile) References() ([]PageId, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open trace file %s: %w", t.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	refs := make([]PageId, 0, t.maxReferences)
	for scanner.Scan() {
		token := scanner.Text()
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("reference %d in %s: invalid page id %q", len(refs), t.path, token)
		}
		if n < 0 {
			return nil, fmt.Errorf("reference %d in %s: negative page id %d", len(refs), t.path, n)
		}
		if len(refs) == t.maxReferences {
			return nil, fmt.Errorf("trace file %s holds more than %d references", t.path, t.maxReferences)
		}
		refs = append(refs, PageId(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read trace file %s: %v", t.path, err)
	}
	return refs, nil
}
