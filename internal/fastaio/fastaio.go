// Package fastaio reads and writes the FASTA files that accompany
// Juicebox .assembly files.
package fastaio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// InvalidFastaError is returned when a FASTA file cannot be interpreted:
// duplicated record names or sequence content before the first header.
type InvalidFastaError struct {
	Path   string
	Reason string
}

func (e *InvalidFastaError) Error() string {
	return fmt.Sprintf("invalid fasta %s: %s", e.Path, e.Reason)
}

// SequenceStore maps contig/fragment names to their sequences while
// remembering insertion order so output is deterministic.
type SequenceStore struct {
	names     []string
	sequences map[string]string
}

// NewSequenceStore returns an empty store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{sequences: map[string]string{}}
}

// Set adds or replaces a sequence. A new name is appended to the order.
func (s *SequenceStore) Set(name, seq string) {
	if _, seen := s.sequences[name]; !seen {
		s.names = append(s.names, name)
	}
	s.sequences[name] = seq
}

// Get returns the sequence stored under name.
func (s *SequenceStore) Get(name string) (string, bool) {
	seq, ok := s.sequences[name]
	return seq, ok
}

// Has reports whether a sequence is stored under name.
func (s *SequenceStore) Has(name string) bool {
	_, ok := s.sequences[name]
	return ok
}

// Names returns the record names in insertion order.
func (s *SequenceStore) Names() []string {
	return s.names
}

// Len is the number of records in the store.
func (s *SequenceStore) Len() int {
	return len(s.names)
}

// Read parses the FASTA file at path into a SequenceStore.
func Read(path string) (*SequenceStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open fasta file %s", path)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads FASTA records from r. path is only used in error messages.
//
// A record starts at a ">" line whose first whitespace-delimited word is the
// record name; every following non-blank line is concatenated into the
// record's sequence until the next header.
func Parse(r io.Reader, path string) (*SequenceStore, error) {
	store := NewSequenceStore()

	var active string
	var seqLines []string
	inRecord := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if inRecord {
				store.Set(active, strings.Join(seqLines, ""))
				seqLines = seqLines[:0]
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, &InvalidFastaError{Path: path, Reason: "contains a record with no name"}
			}
			active = fields[0]
			if store.Has(active) {
				return nil, &InvalidFastaError{
					Path:   path,
					Reason: fmt.Sprintf("contains multiple contigs named %s", active),
				}
			}
			store.Set(active, "")
			inRecord = true
		} else if inRecord {
			seqLines = append(seqLines, line)
		} else {
			return nil, &InvalidFastaError{Path: path, Reason: "does not begin with a contig name"}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read fasta file %s", path)
	}

	if inRecord {
		store.Set(active, strings.Join(seqLines, ""))
	}

	return store, nil
}

// Write writes contents to the file at path.
func Write(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
