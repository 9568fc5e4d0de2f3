package tile

import (
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Table is an insertion-ordered name to value mapping. Indices are stable
// for as long as the table lives, so they can be stored in level grids.
type Table[T any] struct {
	names  []string
	values []T
	index  map[string]int
}

// Palette maps tile names to tiles
type Palette = Table[Tile]

// Entities maps entity names to entities
type Entities = Table[Entity]

// NewTable creates an empty table
func NewTable[T any]() *Table[T] {
	return &Table[T]{index: make(map[string]int)}
}

// Add appends name, or overwrites its value in place if it already exists.
// It returns the index of name.
func (t *Table[T]) Add(name string, value T) int {
	if i, ok := t.index[name]; ok {
		t.values[i] = value
		return i
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.values = append(t.values, value)
	return len(t.names) - 1
}

// Len returns the number of entries
func (t *Table[T]) Len() int {
	return len(t.names)
}

// Index returns the index of name
func (t *Table[T]) Index(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, &PaletteLookupError{Name: name}
	}
	return i, nil
}

// Get returns the value stored under name
func (t *Table[T]) Get(name string) (T, error) {
	i, err := t.Index(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.values[i], nil
}

// At returns the value at index i
func (t *Table[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(t.values) {
		var zero T
		return zero, false
	}
	return t.values[i], true
}

// Name returns the name at index i
func (t *Table[T]) Name(i int) (string, bool) {
	if i < 0 || i >= len(t.names) {
		return "", false
	}
	return t.names[i], true
}

// Names returns the names in index order
func (t *Table[T]) Names() []string {
	return append([]string(nil), t.names...)
}

// Parse reads a TOML document of [name] tables in document order
func Parse[T any](data string) (*Table[T], error) {
	var raw map[string]T
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, err
	}
	return fromDecoded(raw, md)
}

// Load reads a TOML palette file from fsys
func Load[T any](fsys fs.FS, path string) (*Table[T], error) {
	var raw map[string]T
	md, err := toml.DecodeFS(fsys, path, &raw)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	table, err := fromDecoded(raw, md)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return table, nil
}

func fromDecoded[T any](raw map[string]T, md toml.MetaData) (*Table[T], error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %s", undecoded[0])
	}

	table := NewTable[T]()
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		table.Add(key[0], raw[key[0]])
	}
	return table, nil
}
