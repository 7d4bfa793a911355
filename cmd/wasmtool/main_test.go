package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
)

func TestExampleModule(tb *testing.T) {
	ctx := context.Background()

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.Instantiate(ctx, exampleModule().Finish())
	require.NoError(tb, err)

	res, err := mod.ExportedFunction("add").Call(ctx, 40, 2)
	require.NoError(tb, err)
	assert.Equal(tb, []uint64{42}, res)

	assert.Equal(tb, uint64(42), mod.ExportedGlobal("answer").Get())
}

func TestSectionName(tb *testing.T) {
	assert.Equal(tb, "code", sectionName("module", 10))
	assert.Equal(tb, "canonical function", sectionName("component", 9))
}
