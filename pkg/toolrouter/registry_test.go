package toolrouter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return args, nil
}

func stringTool(name string, params ...string) ToolSpec {
	spec := ToolSpec{
		Name:        name,
		Description: "Test tool " + name,
		Handler:     echoHandler,
	}
	for _, p := range params {
		spec.Params = append(spec.Params, Param{Name: p, Type: TypeString, Description: p})
	}
	return spec
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(stringTool("negative_comment", "game"))
	assert.NoError(t, err)

	spec, err := reg.Lookup("negative_comment")
	require.NoError(t, err)
	assert.Equal(t, "negative_comment", spec.Name)
	assert.Len(t, spec.Params, 1)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg := NewRegistry()

	first := stringTool("negative_comment", "game")
	require.NoError(t, reg.Register(first))

	second := stringTool("negative_comment", "game", "reason")
	err := reg.Register(second)

	var dup *DuplicateToolError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "negative_comment", dup.Name)

	// First registration survives unchanged.
	spec, err := reg.Lookup("negative_comment")
	require.NoError(t, err)
	assert.Len(t, spec.Params, 1)
}

func TestRegistry_Register_InvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		spec ToolSpec
	}{
		{
			name: "empty name",
			spec: ToolSpec{Description: "Test", Handler: echoHandler},
		},
		{
			name: "empty description",
			spec: ToolSpec{Name: "test", Handler: echoHandler},
		},
		{
			name: "nil handler",
			spec: ToolSpec{Name: "test", Description: "Test"},
		},
		{
			name: "empty parameter name",
			spec: ToolSpec{
				Name:        "test",
				Description: "Test",
				Params:      []Param{{Type: TypeString}},
				Handler:     echoHandler,
			},
		},
		{
			name: "invalid parameter type",
			spec: ToolSpec{
				Name:        "test",
				Description: "Test",
				Params:      []Param{{Name: "x", Type: "float"}},
				Handler:     echoHandler,
			},
		},
		{
			name: "duplicate parameter name",
			spec: ToolSpec{
				Name:        "test",
				Description: "Test",
				Params:      []Param{{Name: "x", Type: TypeString}, {Name: "x", Type: TypeNumber}},
				Handler:     echoHandler,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_Lookup_Unknown(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(stringTool("negative_comment", "game")))

	_, err := reg.Lookup("translate_comment")

	var unknown *UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "translate_comment", unknown.Name)
}

func TestRegistry_List_InsertionOrder(t *testing.T) {
	reg := NewRegistry()
	names := []string{"zeta", "alpha", "mike", "bravo"}
	for _, name := range names {
		require.NoError(t, reg.Register(stringTool(name, "x")))
	}

	listed := reg.List()
	require.Len(t, listed, len(names))
	for i, name := range names {
		assert.Equal(t, name, listed[i].Name)
	}
}

func TestRegistry_List_Empty(t *testing.T) {
	reg := NewRegistry()
	assert.Empty(t, reg.List())
	assert.Equal(t, 0, reg.Len())
}
