package annotation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/vocabulary"
)

const poseDump = `{
  "classes": [
    {
      "name": "Pose",
      "triples": [["$this", "rdf:type", "spatial:Pose"]],
      "members": [
        {
          "name": "getTranslation",
          "triples": [["$this", "spatial:translation", "$that"]],
          "path": "/transl",
          "value_class": "Translation"
        }
      ]
    },
    {
      "name": "Translation",
      "blanks": ["_:2"],
      "triples": [
        ["$this", "vom:quantityValue", "_:2"],
        ["_:2", "rdf:type", "maths:Vector3D"]
      ],
      "members": [
        {"name": "getX", "triples": [["_:2", "maths:x", "$that"]]},
        {"name": "getY", "triples": [["_:2", "maths:y", "$that"]]},
        {"name": "getZ", "triples": [["_:2", "maths:z", "$that"]]}
      ]
    }
  ]
}`

func testNamespaces() *vocabulary.Namespaces {
	ns := vocabulary.NewNamespaces()
	ns.Bind("spatial", "http://vocab.arvida.de/2015/06/spatial/vocab#")
	ns.Bind("maths", "http://vocab.arvida.de/2015/06/maths/vocab#")
	ns.Bind("vom", "http://vocab.arvida.de/2015/06/vom/vocab#")
	return ns
}

func TestParseValidDump(t *testing.T) {
	dump, err := Parse([]byte(poseDump))
	require.NoError(t, err)
	require.Len(t, dump.Classes, 2)
	assert.Equal(t, "Pose", dump.Classes[0].Name)
	assert.Equal(t, []string{"_:2"}, dump.Classes[1].Blanks)
	assert.Equal(t, "Translation", dump.Classes[0].Members[0].ValueClass)
}

func TestParseRejectsMalformedDumps(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not an object",
			data: `[]`,
		},
		{
			name: "missing classes",
			data: `{}`,
		},
		{
			name: "class without name",
			data: `{"classes": [{"triples": []}]}`,
		},
		{
			name: "two-position triple",
			data: `{"classes": [{"name": "C", "triples": [["$this", "rdf:type"]]}]}`,
		},
		{
			name: "blank without prefix",
			data: `{"classes": [{"name": "C", "blanks": ["b2"]}]}`,
		},
		{
			name: "unknown member field",
			data: `{"classes": [{"name": "C", "members": [{"name": "m", "getter": "x"}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

type translation struct {
	X, Y, Z float64
}

type pose struct {
	Translation translation
}

func poseAccessors() AccessorSet {
	coord := func(get func(*translation) float64, set func(*translation, float64)) schema.MemberDecl {
		return schema.MemberDecl{
			Get: func(v any) any { return get(v.(*translation)) },
			Set: func(v, val any) error {
				set(v.(*translation), val.(float64))
				return nil
			},
		}
	}
	return AccessorSet{
		"Pose": {
			Type: reflect.TypeOf(&pose{}),
			Members: map[string]schema.MemberDecl{
				"getTranslation": {
					Get: func(v any) any { tr := v.(*pose).Translation; return &tr },
					New: func() any { return &translation{} },
					Set: func(v, val any) error {
						v.(*pose).Translation = *val.(*translation)
						return nil
					},
				},
			},
		},
		"Translation": {
			Type: reflect.TypeOf(&translation{}),
			Members: map[string]schema.MemberDecl{
				"getX": coord(func(tr *translation) float64 { return tr.X }, func(tr *translation, f float64) { tr.X = f }),
				"getY": coord(func(tr *translation) float64 { return tr.Y }, func(tr *translation, f float64) { tr.Y = f }),
				"getZ": coord(func(tr *translation) float64 { return tr.Z }, func(tr *translation, f float64) { tr.Z = f }),
			},
		},
	}
}

func TestLoadBuildsBoundRegistry(t *testing.T) {
	reg, err := Load([]byte(poseDump), testNamespaces(), poseAccessors())
	require.NoError(t, err)

	cs, err := reg.Get("Translation")
	require.NoError(t, err)
	require.True(t, cs.Bound())
	assert.Len(t, cs.ClassTriples, 2)
	require.NotNil(t, cs.Binding("getX"))
	assert.NotNil(t, cs.Binding("getX").Get, "accessors attached by name")

	cs, err = reg.Get("Pose")
	require.NoError(t, err)
	mb := cs.Binding("getTranslation")
	require.NotNil(t, mb)
	assert.Equal(t, "Translation", mb.ValueClass)
	assert.Equal(t, "/transl", mb.Path)
}

func TestLoadForwardReferences(t *testing.T) {
	// Pose references Translation, which is dumped after it; declaration
	// and binding are separate phases so this resolves.
	reg, err := Load([]byte(poseDump), testNamespaces(), poseAccessors())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pose", "Translation"}, reg.Names())
}

func TestBuildRejectsConflictingPathModes(t *testing.T) {
	const dump = `{
	  "classes": [
	    {"name": "C", "path": {"uid": "getUid", "template": "x{this}"}}
	  ]
	}`
	d, err := Parse([]byte(dump))
	require.NoError(t, err)
	_, err = Build(d, testNamespaces(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConflictingPathModes)

	var se *errors.SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "C", se.Class)
}

func TestBuildRejectsUnknownPrefix(t *testing.T) {
	const dump = `{
	  "classes": [
	    {"name": "C", "triples": [["$this", "rdf:type", "nope:Thing"]]}
	  ]
	}`
	d, err := Parse([]byte(dump))
	require.NoError(t, err)
	_, err = Build(d, vocabulary.NewNamespaces(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownPrefix)
}

func TestAttachUidOnUidModeClass(t *testing.T) {
	const dump = `{
	  "classes": [
	    {"name": "Device", "path": {"uid": "getUid"}}
	  ]
	}`
	acc := AccessorSet{
		"Device": {Uid: func(v any) string { return "devices/d1" }},
	}
	reg, err := Load([]byte(dump), testNamespaces(), acc)
	require.NoError(t, err)

	cs, err := reg.Get("Device")
	require.NoError(t, err)
	assert.Equal(t, schema.PathUid, cs.Path.Mode)
	require.NotNil(t, cs.Path.Uid)
	assert.Equal(t, "devices/d1", cs.Path.Uid(nil))
}
