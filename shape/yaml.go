package shape

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDoc is the on-disk form of a shape description file.
type fileDoc struct {
	Types   []typeDoc   `yaml:"types"`
	Targets []targetDoc `yaml:"targets"`
}

type typeDoc struct {
	Name     string       `yaml:"name"`
	Variants []variantDoc `yaml:"variants"`
	// Fields is shorthand for a single variant named after the type.
	Fields []fieldDoc `yaml:"fields"`
}

type variantDoc struct {
	Name   string     `yaml:"name"`
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type targetDoc struct {
	Host string `yaml:"host"`
	To   string `yaml:"to"`
}

// Parse reads a YAML shape description. The document has a types list,
// each with variants (or a flat fields list as single-variant shorthand),
// and an optional targets list of host/to pairs.
func Parse(r io.Reader) ([]TypeDef, []Target, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	var defs []TypeDef
	for _, td := range doc.Types {
		def, err := td.typeDef()
		if err != nil {
			return nil, nil, err
		}
		defs = append(defs, def)
	}
	var targets []Target
	for _, t := range doc.Targets {
		if t.Host == "" || t.To == "" {
			return nil, nil, fmt.Errorf("%w: target needs host and to", ErrBadShape)
		}
		targets = append(targets, Target{Host: t.Host, To: t.To})
	}
	return defs, targets, nil
}

// LoadFile parses the shape description at path.
func LoadFile(path string) ([]TypeDef, []Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	defs, targets, err := Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, targets, nil
}

func (td typeDoc) typeDef() (TypeDef, error) {
	if td.Name == "" {
		return TypeDef{}, fmt.Errorf("%w: type needs a name", ErrBadShape)
	}
	if len(td.Variants) > 0 && len(td.Fields) > 0 {
		return TypeDef{}, fmt.Errorf("%w: type %s has both variants and fields", ErrBadShape, td.Name)
	}
	vds := td.Variants
	if len(vds) == 0 {
		vds = []variantDoc{{Name: td.Name, Fields: td.Fields}}
	}
	def := TypeDef{Name: td.Name}
	for _, vd := range vds {
		if vd.Name == "" {
			return TypeDef{}, fmt.Errorf("%w: type %s has an unnamed variant", ErrBadShape, td.Name)
		}
		v := Variant{Name: vd.Name}
		for _, fd := range vd.Fields {
			if fd.Name == "" {
				return TypeDef{}, fmt.Errorf("%w: %s.%s has an unnamed field", ErrBadShape, td.Name, vd.Name)
			}
			ref, err := ParseTypeRef(fd.Type)
			if err != nil {
				return TypeDef{}, fmt.Errorf("%s.%s.%s: %w", td.Name, vd.Name, fd.Name, err)
			}
			v.Fields = append(v.Fields, Field{Name: fd.Name, Type: ref})
		}
		def.Variants = append(def.Variants, v)
	}
	return def, nil
}
