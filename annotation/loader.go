package annotation

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/xeipuuv/gojsonschema"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

// Dump mirrors the analyzer's JSON document.
type Dump struct {
	Classes []ClassDump `json:"classes"`
}

// ClassDump is one class's annotation tree in the dump.
type ClassDump struct {
	Name        string       `json:"name"`
	Bases       []string     `json:"bases,omitempty"`
	Polymorphic bool         `json:"polymorphic,omitempty"`
	Blanks      []string     `json:"blanks,omitempty"`
	Triples     [][3]string  `json:"triples,omitempty"`
	Path        *PathDump    `json:"path,omitempty"`
	Members     []MemberDump `json:"members,omitempty"`
}

// PathDump is the path annotation set of one class.
type PathDump struct {
	Uid      string `json:"uid,omitempty"`
	Template string `json:"template,omitempty"`
	SubPath  string `json:"subpath,omitempty"`
	Absolute bool   `json:"absolute,omitempty"`
}

// MemberDump is one member binding in the dump.
type MemberDump struct {
	Name         string      `json:"name"`
	Triples      [][3]string `json:"triples,omitempty"`
	Path         string      `json:"path,omitempty"`
	PathAbsolute bool        `json:"path_absolute,omitempty"`
	Container    bool        `json:"container,omitempty"`
	Optional     bool        `json:"optional,omitempty"`
	ValueClass   string      `json:"value_class,omitempty"`
}

// Accessors supplies the funcs that cannot travel through JSON, keyed by
// class name. Uid is required for uid-mode classes; Members is keyed by
// member name.
type Accessors struct {
	Type    reflect.Type
	Project func(any) any
	Uid     func(any) string

	Members map[string]schema.MemberDecl
}

// AccessorSet maps class names to their accessor sets.
type AccessorSet map[string]Accessors

// Parse validates raw dump bytes against the embedded JSON schema and
// decodes them. Validation failures identify the offending location by
// JSON pointer.
func Parse(data []byte) (*Dump, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(dumpSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Annotation", "Parse", "validating dump")
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, errors.WrapInvalid(
			fmt.Errorf("dump invalid at %s: %s (%d findings)", first.Field(), first.Description(), len(result.Errors())),
			"Annotation", "Parse", "validating dump")
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, errors.WrapInvalid(err, "Annotation", "Parse", "decoding dump")
	}
	return &dump, nil
}

// Build declares and binds every dumped class in a fresh registry, then
// attaches accessors by name. The two-phase registry protocol keeps
// forward references between dumped classes working regardless of their
// order in the document.
func Build(dump *Dump, ns *vocabulary.Namespaces, accessors AccessorSet) (*schema.Registry, error) {
	reg := schema.NewRegistry()

	for _, cd := range dump.Classes {
		if err := reg.Declare(cd.Name); err != nil {
			return nil, err
		}
	}

	for _, cd := range dump.Classes {
		if err := reg.Bind(cd.Name, toClassDecl(cd, accessors[cd.Name]), ns); err != nil {
			return nil, err
		}
	}

	for _, cd := range dump.Classes {
		acc, ok := accessors[cd.Name]
		if !ok {
			continue
		}
		for member, md := range acc.Members {
			if err := reg.AttachAccessors(cd.Name, member, md); err != nil {
				return nil, err
			}
		}
		if acc.Uid != nil {
			if err := reg.AttachUid(cd.Name, acc.Uid); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

// Load is the one-call path from raw dump bytes to a bound registry.
func Load(data []byte, ns *vocabulary.Namespaces, accessors AccessorSet) (*schema.Registry, error) {
	dump, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(dump, ns, accessors)
}

func toClassDecl(cd ClassDump, acc Accessors) schema.ClassDecl {
	decl := schema.ClassDecl{
		Type:        acc.Type,
		Blanks:      cd.Blanks,
		Polymorphic: cd.Polymorphic,
	}

	for _, base := range cd.Bases {
		ref := schema.BaseDecl{Name: base}
		// A single projection func serves the common one-base case; a
		// multi-base class attaches per-base projections through the
		// member accessor path instead.
		if len(cd.Bases) == 1 {
			ref.Project = acc.Project
		}
		decl.Bases = append(decl.Bases, ref)
	}

	for _, t := range cd.Triples {
		decl.Triples = append(decl.Triples, schema.TripleDecl(t))
	}

	if p := cd.Path; p != nil {
		decl.Path = schema.PathDecl{
			Uid:      p.Uid,
			Template: p.Template,
			SubPath:  p.SubPath,
			Absolute: p.Absolute,
		}
	}

	for _, md := range cd.Members {
		member := schema.MemberDecl{
			Name:         md.Name,
			Path:         md.Path,
			PathAbsolute: md.PathAbsolute,
			Container:    md.Container,
			Optional:     md.Optional,
			ValueClass:   md.ValueClass,
		}
		for _, t := range md.Triples {
			member.Triples = append(member.Triples, schema.TripleDecl(t))
		}
		decl.Members = append(decl.Members, member)
	}

	return decl
}
