// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/mat"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "verify", "--pairs", "64", "--workers", "2", "--backend", "lu")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 64 pairs")
	assert.Contains(t, out, "backend lu")
}

func TestVerifyCommand_ConfigThenFlags(t *testing.T) {
	p := writeConfig(t, "verify:\n  pairs: 10\n  backend: lu\n")

	out, err := execute(t, "verify", "--config", p)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 10 pairs")

	out, err = execute(t, "verify", "--config", p, "--pairs", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 12 pairs", "flags override the file")
}

func TestVerifyCommand_InvalidFlag(t *testing.T) {
	_, err := execute(t, "verify", "--pairs", "0")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--iterations", "10")
	require.NoError(t, err)
	for _, k := range mat.Kernels() {
		assert.Contains(t, out, k.String())
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, mat.KernelEnv)
	assert.Contains(t, out, "kernel:   "+mat.DefaultKernel().String())
}
