package contract

import (
	"strconv"

	"github.com/pkg/errors"

	"forestlab/sdk"
)

// saveProject writes a project record under its id.
func saveProject(s sdk.State, id uint64, p *Project) {
	s.Set(projectKey(id), string(EncodeProject(p)))
}

// loadProject reads a project record. Nil with nil error means absent.
func loadProject(s sdk.State, id uint64) (*Project, error) {
	ptr := s.Get(projectKey(id))
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	p, err := DecodeProject([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(err, "decode project %d", id)
	}
	return p, nil
}

// requireProject loads a project and rejects the call when it is absent.
func requireProject(s sdk.State, id uint64) (*Project, error) {
	p, err := loadProject(s, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.Wrapf(ErrProjectNotFound, "project %d", id)
	}
	return p, nil
}

// nextProjectID increments the project counter and returns the fresh id.
// The counter lives as a decimal string so it stays readable in raw dumps.
func nextProjectID(s sdk.State) uint64 {
	var current uint64
	if ptr := s.Get(ProjectsCount); ptr != nil {
		if parsed, err := strconv.ParseUint(*ptr, 10, 64); err == nil {
			current = parsed
		}
	}
	next := current + 1
	s.Set(ProjectsCount, strconv.FormatUint(next, 10))
	return next
}

// loadProjectIndex reads the ordered list of registered project ids.
func loadProjectIndex(s sdk.State) ([]uint64, error) {
	ptr := s.Get(projectIndexKey())
	if ptr == nil || *ptr == "" {
		return nil, nil
	}
	ids, err := DecodeIDList([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrap(err, "decode project index")
	}
	return ids, nil
}

// appendProjectIndex records a newly registered id at the tail of the index.
func appendProjectIndex(s sdk.State, id uint64) error {
	ids, err := loadProjectIndex(s)
	if err != nil {
		return err
	}
	ids = append(ids, id)
	s.Set(projectIndexKey(), string(EncodeIDList(ids)))
	return nil
}
