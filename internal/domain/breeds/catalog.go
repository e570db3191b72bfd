package breeds

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound        = errors.New("breed not found")
	ErrInvalidCatalog  = errors.New("invalid breed catalog")
	ErrInvalidCategory = errors.New("invalid category")
)

//go:embed breeds.yaml
var embeddedCatalog []byte

// Catalog es la tabla de referencia de razas. Solo lectura después de cargada.
type Catalog struct {
	items []Breed
	byID  map[string]int
}

type catalogFile struct {
	Breeds []Breed `yaml:"breeds"`
}

// Load parsea un catálogo YAML y valida ids únicos y categorías.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		items: make([]Breed, 0, len(f.Breeds)),
		byID:  make(map[string]int, len(f.Breeds)),
	}
	for _, b := range f.Breeds {
		b.ID = strings.TrimSpace(b.ID)
		if b.ID == "" || strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("%w: breed without id or name", ErrInvalidCatalog)
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicated id %q", ErrInvalidCatalog, b.ID)
		}
		if !b.Category.Valid() {
			return nil, fmt.Errorf("%w: breed %q has category %q", ErrInvalidCatalog, b.ID, b.Category)
		}
		c.byID[b.ID] = len(c.items)
		c.items = append(c.items, b)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default devuelve el catálogo embebido en el binario.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(embeddedCatalog))
	})
	return defaultCatalog, defaultErr
}

// All devuelve una copia en el orden del catálogo.
func (c *Catalog) All() []Breed {
	out := make([]Breed, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ByID(id string) (Breed, error) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Breed{}, ErrNotFound
	}
	return c.items[i], nil
}

func (c *Catalog) ByCategory(cat Category) ([]Breed, error) {
	if !cat.Valid() {
		return nil, ErrInvalidCategory
	}
	out := make([]Breed, 0)
	for _, b := range c.items {
		if b.Category == cat {
			out = append(out, b)
		}
	}
	return out, nil
}

// SearchByName busca por substring (sin mayúsculas) en nombre o nombre en inglés.
func (c *Catalog) SearchByName(query string) []Breed {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Breed, 0)
	for _, b := range c.items {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.NameEn), q) {
			out = append(out, b)
		}
	}
	return out
}

// Lookup resuelve el texto libre que el tutor escribió en el onboarding:
// id exacto o nombre exacto (pt o en), sin distinguir mayúsculas.
func (c *Catalog) Lookup(text string) (Breed, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return Breed{}, false
	}
	if b, err := c.ByID(strings.ToLower(t)); err == nil {
		return b, true
	}
	for _, b := range c.items {
		if strings.EqualFold(b.Name, t) || strings.EqualFold(b.NameEn, t) {
			return b, true
		}
	}
	return Breed{}, false
}
