package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var previewNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRenderPreview(t *testing.T) {
	guild, err := readGuild(nil, "testdata/guild.json")
	require.NoError(t, err)

	out, err := renderPreview(guild, 1, "", previewNow)
	require.NoError(t, err)

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Equal(t, "SERVER ROLE MATRIX: PREVIEW GUILD", lines[0])
	require.Equal(t, "ROLE NAME            │ MEM PREVALENCE", lines[2])
	require.Equal(t, "Owner"+strings.Repeat(" ", 15)+" │   1 ░░░░░░░░", lines[4])
	require.Contains(t, out, "TOTAL ROLES: 12\n")
	require.Contains(t, out, "Page 1/2\n")
}

func TestRenderPreview_SecondPageWithDetail(t *testing.T) {
	guild, err := readGuild(nil, "testdata/guild.json")
	require.NoError(t, err)

	out, err := renderPreview(guild, 2, "200000000000000001", previewNow)
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Member"+strings.Repeat(" ", 14)+" │  18 ███████░")
	require.NotContains(t, plain, "Musician")
	require.Contains(t, plain, "Page 2/2")
	require.Contains(t, plain, "🔹 Owner")
	require.Contains(t, plain, "✅ Administrator")
	require.Contains(t, plain, "**Color Hex:** #e74c3c")
}

func TestRenderPreview_Errors(t *testing.T) {
	guild, err := readGuild(nil, "testdata/guild.json")
	require.NoError(t, err)

	_, err = renderPreview(guild, 3, "", previewNow)
	require.EqualError(t, err, "page 3 out of range 1-2")

	_, err = renderPreview(guild, 1, "999", previewNow)
	require.Error(t, err)

	_, err = readGuild(nil, "testdata/missing.json")
	require.Error(t, err)
}

func TestReadGuild_Stdin(t *testing.T) {
	guild, err := readGuild(strings.NewReader(`{"id":"1","name":"G","roles":[{"id":"1","name":"@everyone"}]}`), "-")
	require.NoError(t, err)

	out, err := renderPreview(guild, 1, "", previewNow)
	require.NoError(t, err)
	require.Equal(t, "No roles found!\n", out)
}

func TestPreviewCommand_Plain(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"preview", "--file", "testdata/guild.json", "--page", "2", "--plain"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	require.NotContains(t, out.String(), "\x1b[")
	require.Contains(t, out.String(), "Page 2/2")
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"commands"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "📦 RoleMatrix v1.0.0")
	require.Contains(t, out.String(), "/roles - Launch the advanced Role Matrix dashboard [guild only]")
	require.Contains(t, out.String(), "📊 Summary: 2 modules, 2 commands")
}
