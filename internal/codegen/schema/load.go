package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
)

// Format is the syntax of a schema document.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromPath picks the format by file extension, defaulting to TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// LoadComponents reads and parses a component schema file.
func LoadComponents(path string) (*ComponentDocument, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseComponents(data, FormatFromPath(path))
	if err != nil {
		return nil, generr.InSource(err, path)
	}
	doc.Source = path
	return doc, nil
}

// LoadEvents reads and parses an event schema file.
func LoadEvents(path string) (*EventDocument, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseEvents(data, FormatFromPath(path))
	if err != nil {
		return nil, generr.InSource(err, path)
	}
	doc.Source = path
	return doc, nil
}

func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		e := generr.Wrap(generr.NotFound, err, "schema file must exist and be readable")
		e.Source = path
		return nil, e
	}
	return data, nil
}

func decode(data []byte, format Format) (*Table, error) {
	var (
		t   *Table
		err error
	)
	switch format {
	case YAML:
		t, err = decodeYAML(data)
	default:
		t, err = decodeTOML(data)
	}
	if err != nil {
		return nil, generr.Wrap(generr.ParseError, err, fmt.Sprintf("not a valid %s document", strings.ToUpper(string(format))))
	}
	return t, nil
}

// ParseComponents parses a component document from memory.
func ParseComponents(data []byte, format Format) (*ComponentDocument, error) {
	root, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	nsValue, ok := root.Get("namespace")
	if !ok {
		return nil, generr.New(generr.SchemaStructureError, "must specify a namespace")
	}
	namespace, ok := nsValue.(string)
	if !ok {
		return nil, generr.New(generr.WrongKind, fmt.Sprintf("namespace must be a string, got %s", kindName(nsValue)))
	}

	compValue, ok := root.Get("component")
	if !ok {
		return nil, generr.New(generr.SchemaStructureError, "does not contain array of tables field: component")
	}
	list, ok := compValue.([]any)
	if !ok {
		return nil, generr.New(generr.SchemaStructureError, fmt.Sprintf("component must be an array of tables, got %s", kindName(compValue)))
	}

	doc := &ComponentDocument{Namespace: namespace}
	for i, item := range list {
		t, ok := item.(*Table)
		if !ok {
			return nil, generr.New(generr.SchemaStructureError, fmt.Sprintf("component[%d] must be a table, got %s", i, kindName(item)))
		}
		c, err := parseComponent(t)
		if err != nil {
			return nil, err
		}
		doc.Components = append(doc.Components, c)
	}
	return doc, nil
}

type componentMeta struct {
	Name        *string `mapstructure:"_name_"`
	Namespace   string  `mapstructure:"_namespace_"`
	Description string  `mapstructure:"_description_"`
}

func parseComponent(t *Table) (Component, error) {
	metaKeys := map[string]any{}
	for _, k := range t.Keys() {
		if IsMetaKey(k) {
			v, _ := t.Get(k)
			metaKeys[k] = plain(v)
		}
	}
	var meta componentMeta
	if err := mapstructure.Decode(metaKeys, &meta); err != nil {
		return Component{}, generr.Wrap(generr.WrongKind, err, "component metadata must be strings")
	}
	if meta.Name == nil || *meta.Name == "" {
		return Component{}, generr.New(generr.MissingField, "component must contain _name_ field")
	}

	c := Component{
		Name:        *meta.Name,
		Namespace:   meta.Namespace,
		Description: meta.Description,
	}
	err := t.Each(func(key string, v any) error {
		if IsMetaKey(key) {
			return nil
		}
		f, err := parseField(key, v)
		if err != nil {
			return err
		}
		c.Fields = append(c.Fields, f)
		return nil
	})
	if err != nil {
		return Component{}, generr.InRecord(err, c.Name)
	}
	return c, nil
}

// ParseEvents parses an event document from memory.
func ParseEvents(data []byte, format Format) (*EventDocument, error) {
	root, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	doc := &EventDocument{}
	err = root.Each(func(name string, v any) error {
		t, ok := v.(*Table)
		if !ok {
			e := generr.New(generr.WrongKind, fmt.Sprintf("event must be a table, got %s", kindName(v)))
			e.Record = name
			return e
		}
		ev := Event{Name: name}
		err := t.Each(func(key string, fv any) error {
			f, err := parseField(key, fv)
			if err != nil {
				return err
			}
			ev.Fields = append(ev.Fields, f)
			return nil
		})
		if err != nil {
			return generr.InRecord(err, name)
		}
		doc.Events = append(doc.Events, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
