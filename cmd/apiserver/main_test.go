package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdConfFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("conf")
	require.NotNil(t, flag)
	assert.Equal(t, "configs/apiserver.yaml", flag.DefValue)
}

func TestVersionCommandRegistered(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "version" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHelpOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})
	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Sentra API Server")
}
