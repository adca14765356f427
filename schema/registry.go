package schema

import (
	"fmt"
	"reflect"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

// TripleDecl is one raw triple from the annotation tree, in the analyzer's
// grammar (see package doc).
type TripleDecl [3]string

// MemberDecl is the raw declaration of one member binding.
type MemberDecl struct {
	Name         string
	Triples      []TripleDecl
	Path         string
	PathAbsolute bool
	Container    bool
	Optional     bool
	ValueClass   string

	// Accessors may be attached here or later via AttachAccessors; the
	// annotation loader leaves them nil and attaches by name.
	Get      func(any) any
	Set      func(any, any) error
	Elements func(any) []any
	New      func() any
	Decode   DecodeFunc
}

// PathDecl is the raw path annotation set of one class. At most one of
// Uid, Template and SubPath may be specified.
type PathDecl struct {
	Uid      string
	UidFunc  func(any) string
	Template string
	SubPath  string
	Absolute bool
}

// BaseDecl names one base class in declaration order.
type BaseDecl struct {
	Name    string
	Project func(any) any
}

// ClassDecl is the fully-resolved annotation tree of one class, as handed
// over by the external analyzer.
type ClassDecl struct {
	Type        reflect.Type
	Bases       []BaseDecl
	Blanks      []string
	Triples     []TripleDecl
	Members     []MemberDecl
	Path        PathDecl
	Polymorphic bool
}

// Registry resolves classes across the schema graph in two phases: declare
// all class identities first, bind triple and member bodies second. The
// split allows forward references between mutually referencing classes.
//
// A Registry is assembled single-threaded before a compilation run and is
// read-only during the run.
type Registry struct {
	classes map[string]*ClassSchema
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*ClassSchema)}
}

// Declare registers a class identity. Redeclaring a name is an error.
func (r *Registry) Declare(name string) error {
	if _, ok := r.classes[name]; ok {
		return errors.NewSchemaError(name, errors.ErrDuplicateClass)
	}
	r.classes[name] = &ClassSchema{Name: name}
	r.order = append(r.order, name)
	return nil
}

// Get returns the schema for a declared class.
func (r *Registry) Get(name string) (*ClassSchema, error) {
	cs, ok := r.classes[name]
	if !ok {
		return nil, errors.NewSchemaError(name, errors.ErrUnknownClass)
	}
	return cs, nil
}

// Names returns the declared class names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Bind attaches a class body to a declared identity, expanding prefixed
// names through the namespace table and validating the construction rules
// from the specification. Bind fails with a SchemaError identifying class
// and member; a failed class stays unbound and emits no logic.
func (r *Registry) Bind(name string, decl ClassDecl, ns *vocabulary.Namespaces) error {
	cs, ok := r.classes[name]
	if !ok {
		return errors.NewSchemaError(name, errors.ErrUnknownClass)
	}
	if cs.bound {
		return errors.NewSchemaError(name, errors.ErrDuplicateClass)
	}

	path, err := parsePathDecl(name, decl.Path)
	if err != nil {
		return err
	}

	blanks := make(map[string]bool, len(decl.Blanks))
	for _, id := range decl.Blanks {
		if blanks[id] {
			return errors.NewSchemaError(name, fmt.Errorf("blank %q declared twice: %w", id, errors.ErrDuplicateClass))
		}
		blanks[id] = true
	}

	bases := make([]BaseRef, 0, len(decl.Bases))
	for _, b := range decl.Bases {
		if _, ok := r.classes[b.Name]; !ok {
			return errors.NewSchemaError(name, fmt.Errorf("base %q: %w", b.Name, errors.ErrUnknownClass))
		}
		bases = append(bases, BaseRef{Name: b.Name, Project: b.Project})
	}

	classTriples := make([]Triple, 0, len(decl.Triples))
	for _, td := range decl.Triples {
		t, err := parseTriple(td, blanks, ns, false)
		if err != nil {
			return errors.NewSchemaError(name, err)
		}
		classTriples = append(classTriples, t)
	}

	bindings := make([]*MemberBinding, 0, len(decl.Members))
	for _, md := range decl.Members {
		mb, err := bindMember(name, md, blanks, ns)
		if err != nil {
			return err
		}
		bindings = append(bindings, mb)
	}

	cs.Type = decl.Type
	cs.Bases = bases
	cs.Blanks = append([]string(nil), decl.Blanks...)
	cs.ClassTriples = classTriples
	cs.Bindings = bindings
	cs.Path = path
	cs.Polymorphic = decl.Polymorphic
	cs.bound = true
	return nil
}

// AttachAccessors attaches accessor funcs to a bound member by name. Used
// by flows where declarations arrive without funcs (the annotation loader)
// and must happen before the compilation run takes ownership.
func (r *Registry) AttachAccessors(class, member string, md MemberDecl) error {
	cs, ok := r.classes[class]
	if !ok || !cs.bound {
		return errors.NewSchemaError(class, errors.ErrUnknownClass)
	}
	mb := cs.Binding(member)
	if mb == nil {
		return errors.NewMemberError(class, member, errors.ErrUnknownMember)
	}
	mb.Get = md.Get
	mb.Set = md.Set
	mb.Elements = md.Elements
	mb.New = md.New
	mb.Decode = md.Decode
	return nil
}

// AttachUid attaches the uid accessor func of a uid-mode class.
func (r *Registry) AttachUid(class string, uid func(any) string) error {
	cs, ok := r.classes[class]
	if !ok || !cs.bound {
		return errors.NewSchemaError(class, errors.ErrUnknownClass)
	}
	if cs.Path.Mode != PathUid {
		return errors.NewSchemaError(class, errors.ErrConflictingPathModes)
	}
	cs.Path.Uid = uid
	return nil
}

func parsePathDecl(class string, pd PathDecl) (PathSpec, error) {
	modes := 0
	if pd.Uid != "" {
		modes++
	}
	if pd.Template != "" {
		modes++
	}
	if pd.SubPath != "" {
		modes++
	}
	if modes > 1 {
		return PathSpec{}, errors.NewSchemaError(class, errors.ErrConflictingPathModes)
	}
	switch {
	case pd.Uid != "":
		return PathSpec{Mode: PathUid, UidAccessor: pd.Uid, Uid: pd.UidFunc}, nil
	case pd.Template != "":
		return PathSpec{Mode: PathTemplate, Template: pd.Template}, nil
	default:
		return PathSpec{Mode: PathConcat, SubPath: pd.SubPath, Absolute: pd.Absolute}, nil
	}
}

func bindMember(class string, md MemberDecl, blanks map[string]bool, ns *vocabulary.Namespaces) (*MemberBinding, error) {
	triples := make([]Triple, 0, len(md.Triples))
	for _, td := range md.Triples {
		t, err := parseTriple(td, blanks, ns, true)
		if err != nil {
			return nil, errors.NewMemberError(class, md.Name, err)
		}
		triples = append(triples, t)
	}

	for _, t := range triples {
		if md.Container {
			if !t.RefsThatElement() {
				return nil, errors.NewMemberError(class, md.Name, errors.ErrMixedBindingTriples)
			}
			// Element anchors are independently resolved nodes; a
			// class-scoped blank inside a per-element pattern has no
			// unambiguous reading and is rejected.
			for _, role := range t.Roles() {
				if role.Kind == RoleBlank {
					return nil, errors.NewMemberError(class, md.Name,
						fmt.Errorf("blank %q in per-element triple: %w", role.Blank, errors.ErrBadTriplePosition))
				}
			}
		} else if t.RefsThatElement() {
			return nil, errors.NewMemberError(class, md.Name, errors.ErrMixedBindingTriples)
		}
	}

	return &MemberBinding{
		Member:       md.Name,
		Triples:      triples,
		Path:         md.Path,
		PathAbsolute: md.PathAbsolute,
		Container:    md.Container,
		Optional:     md.Optional,
		ValueClass:   md.ValueClass,
		Get:          md.Get,
		Set:          md.Set,
		Elements:     md.Elements,
		New:          md.New,
		Decode:       md.Decode,
	}, nil
}
