package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildInfo_Defaults(t *testing.T) {
	b := NewBuildInfo("", "2026-01-02", "")

	assert.Equal(t, BuildInfo{Version: "N/A", Date: "2026-01-02", Commit: "N/A"}, b)
}

func TestBuildInfo_Print(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewBuildInfo("1.0.0", "today", "abc123").Print(&out))

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123\n", out.String())
}
