package model

import "encoding/json"

// FileEntry is a single file yielded by the tree walk.
type FileEntry struct {
	Dir  string // The directory path as constructed during descent
	Name string // Bare file name
}

// Path returns the full path of the entry, joined the way the walk built it.
func (e FileEntry) Path() string {
	return JoinPath(e.Dir, e.Name)
}

// PortMatch records the port assignments found in a single file.
type PortMatch struct {
	Path  string   `json:"path"`
	Ports []string `json:"ports"` // Digit strings in order of appearance, duplicates kept
}

// TechnologyFiles is one technology with its matching files, used for ordered output.
type TechnologyFiles struct {
	Technology Technology `json:"technology"`
	Files      []string   `json:"files"`
}

// ScanResult contains the output of both analysis passes.
type ScanResult struct {
	Root     string
	Backends *BackendMatches
	Ports    []PortMatch
}

// MarshalJSON encodes the technologies as an ordered list.
func (r ScanResult) MarshalJSON() ([]byte, error) {
	technologies := []TechnologyFiles{}
	if r.Backends != nil {
		technologies = r.Backends.Found()
	}
	ports := r.Ports
	if ports == nil {
		ports = []PortMatch{}
	}
	return json.Marshal(struct {
		Root         string            `json:"root"`
		Technologies []TechnologyFiles `json:"technologies"`
		Ports        []PortMatch       `json:"ports"`
	}{r.Root, technologies, ports})
}

// BackendMatches maps every known technology to the files that matched it.
// All technologies are present from construction, bound to empty lists.
type BackendMatches struct {
	files map[Technology][]string
	order []Technology // Technologies in order of their first match
}

// NewBackendMatches returns a match set with an empty list per technology.
func NewBackendMatches() *BackendMatches {
	files := make(map[Technology][]string, len(Technologies))
	for _, tech := range Technologies {
		files[tech] = []string{}
	}
	return &BackendMatches{files: files}
}

// Add appends path to the list for tech.
func (b *BackendMatches) Add(tech Technology, path string) {
	existing, ok := b.files[tech]
	if !ok || len(existing) == 0 {
		b.order = append(b.order, tech)
	}
	b.files[tech] = append(existing, path)
}

// Files returns the paths recorded for tech, in discovery order.
func (b *BackendMatches) Files(tech Technology) []string {
	return b.files[tech]
}

// Found returns the technologies with at least one file, in order of first match.
func (b *BackendMatches) Found() []TechnologyFiles {
	found := make([]TechnologyFiles, 0, len(b.order))
	for _, tech := range b.order {
		found = append(found, TechnologyFiles{Technology: tech, Files: b.files[tech]})
	}
	return found
}

// Len returns the number of technologies with at least one file.
func (b *BackendMatches) Len() int {
	return len(b.order)
}
