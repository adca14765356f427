package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph/memstore"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

func TestJoinPath(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"http://example.com", "things", "http://example.com/things"},
		{"http://example.com/", "/things", "http://example.com/things"},
		{"http://example.com", "", "http://example.com"},
		{"", "/things", "/things"},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinPath(tt.a, tt.b), "JoinPath(%q, %q)", tt.a, tt.b)
	}
}

func TestParseInlineTemplate(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		segments []string
		isExpr   []bool
		wantErr  bool
	}{
		{
			name:     "text only",
			pattern:  "devices/head",
			segments: []string{"devices/head"},
			isExpr:   []bool{false},
		},
		{
			name:     "single placeholder",
			pattern:  "devices/{id}/head",
			segments: []string{"devices/", "id", "/head"},
			isExpr:   []bool{false, true, false},
		},
		{
			name:     "leading placeholder",
			pattern:  "{id}/head",
			segments: []string{"id", "/head"},
			isExpr:   []bool{true, false},
		},
		{
			name:     "escaped braces stay literal",
			pattern:  `lit\{eral\}`,
			segments: []string{"lit{eral}"},
			isExpr:   []bool{false},
		},
		{
			name:     "nested braces stay inside the expression",
			pattern:  `v/{m[{"a": 1}]}`,
			segments: []string{"v/", `m[{"a": 1}]`},
			isExpr:   []bool{false, true},
		},
		{
			name:    "unterminated placeholder",
			pattern: "devices/{id",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, isExpr, err := parseInlineTemplate(tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrBadTemplate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.segments, segments)
			assert.Equal(t, tt.isExpr, isExpr)
		})
	}
}

type sensor struct {
	DeviceID string
}

func sensorDecl(template string) schema.ClassDecl {
	return schema.ClassDecl{
		Type: reflect.TypeOf(&sensor{}),
		Path: schema.PathDecl{Template: template},
		Members: []schema.MemberDecl{
			{
				Name: "deviceID",
				Get:  func(v any) any { return v.(*sensor).DeviceID },
			},
		},
	}
}

func TestTemplatePathOf(t *testing.T) {
	t.Run("absolute pattern ignores traversal root", func(t *testing.T) {
		table := compileAll(t, map[string]schema.ClassDecl{
			"Sensor": sensorDecl("http://devices.example.com/{deviceID}/head"),
		})
		ctx := testContext(memstore.New())
		uri, err := table.byName["Sensor"].PathOf(ctx, &sensor{DeviceID: "dev42"})
		require.NoError(t, err)
		assert.Equal(t, "http://devices.example.com/dev42/head", uri)
	})

	t.Run("relative pattern joins under traversal root", func(t *testing.T) {
		table := compileAll(t, map[string]schema.ClassDecl{
			"Sensor": sensorDecl("sensors/{deviceID}"),
		})
		ctx := testContext(memstore.New())
		uri, err := table.byName["Sensor"].PathOf(ctx, &sensor{DeviceID: "dev42"})
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/root/sensors/dev42", uri)
	})

	t.Run("bad placeholder expression fails at compile time", func(t *testing.T) {
		reg := schema.NewRegistry()
		require.NoError(t, reg.Declare("Sensor"))
		require.NoError(t, reg.Bind("Sensor", sensorDecl("x/{deviceID +}"), testNamespaces()))
		cs, err := reg.Get("Sensor")
		require.NoError(t, err)
		_, err = NewGenerator(newOpsTable()).Compile(cs)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrBadTemplate)
	})
}

func TestUidPathIsRootIndependent(t *testing.T) {
	decl := schema.ClassDecl{
		Type: reflect.TypeOf(&sensor{}),
		Path: schema.PathDecl{
			Uid:     "uid",
			UidFunc: func(v any) string { return "sensors/" + v.(*sensor).DeviceID },
		},
	}
	table := compileAll(t, map[string]schema.ClassDecl{"Sensor": decl})
	ops := table.byName["Sensor"]

	s := &sensor{DeviceID: "dev42"}
	ctxA := testContext(memstore.New())
	ctxB := testContext(memstore.New())
	ctxB.Path = "http://example.com/another/root/entirely"

	uriA, err := ops.PathOf(ctxA, s)
	require.NoError(t, err)
	uriB, err := ops.PathOf(ctxB, s)
	require.NoError(t, err)

	assert.Equal(t, uriA, uriB, "uid identity must not depend on the traversal root")
	assert.Equal(t, "http://example.com/sensors/dev42", uriA)
}
