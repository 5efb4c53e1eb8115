package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())

	return out.String(), errOut.String()
}

func TestSelftest(t *testing.T) {
	color.NoColor = true

	stdout, stderr := execute(t, "selftest")

	assert.Contains(t, stdout, "converted 7 records into 6 records")
	assert.Contains(t, stdout, "item demo::AbstractGadget was skipped: ")
	assert.Contains(t, stdout, "1 of 6 items were skipped")

	// One line per failure: the attributed abstract class and the
	// silently dropped variadic function.
	assert.Contains(t, stderr, "Ignored demo::AbstractGadget: ")
	assert.Contains(t, stderr, "Ignored demo::make_anything: ")
}

func TestVersion(t *testing.T) {
	stdout, _ := execute(t, "version")

	assert.Contains(t, stdout, "bridge-generator version")
}
