package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/empdash/internal/cli"
	"github.com/rshade/empdash/internal/config"
	"github.com/rshade/empdash/internal/engine"
	"github.com/rshade/empdash/internal/roster"
)

// setupCLITest isolates config and logs in a temp EMPDASH_HOME.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("EMPDASH_HOME", home)
	t.Setenv("EMPDASH_PAGE_SIZE", "")
	t.Setenv("EMPDASH_DATA", "")
	t.Setenv("EMPDASH_LOG_LEVEL", "error")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeJSON(t *testing.T, out string) engine.JSONOutput {
	t.Helper()
	var got engine.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func ids(records []roster.Record) []roster.ID {
	out := make([]roster.ID, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestList_JSONFemaleAscending(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "list", "--gender", "Female", "--sort", "asc", "--output", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, []roster.ID{15, 13, 9, 17, 1, 11, 19, 3}, ids(got.Visible))
	assert.Equal(t, 10, got.TotalFilteredCount)
	assert.Equal(t, 2, got.Meta.TotalPages)
	assert.True(t, got.Meta.HasNext)
	assert.False(t, got.Meta.HasPrevious)
	assert.Equal(t, engine.GenderFemale, got.View.Gender)
	assert.Equal(t, engine.SortAsc, got.View.Sort)
}

func TestList_JSONStableDescendingSecondPage(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "list", "--gender", "Male", "--sort", "desc", "--page", "2", "--output", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	// 6 and 8 earn the same and keep their original order.
	assert.Equal(t, []roster.ID{6, 8}, ids(got.Visible))
	assert.False(t, got.Meta.HasNext)
	assert.True(t, got.Meta.HasPrevious)
}

func TestList_JSONPageBeyondData(t *testing.T) {
	for _, page := range []string{"9", "2305843009213693952", "9223372036854775807"} {
		t.Run(page, func(t *testing.T) {
			setupCLITest(t)

			out, err := execute(t, "list", "--page", page, "--output", "json")
			require.NoError(t, err)

			got := decodeJSON(t, out)
			assert.NotNil(t, got.Visible)
			assert.Empty(t, got.Visible)
			assert.Equal(t, 20, got.TotalFilteredCount)
			assert.False(t, got.Meta.HasNext)
			assert.Contains(t, out, `"employees": []`)
		})
	}
}

func TestList_SearchNoMatchesPlain(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "list", "--search", "zzz", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "No employees match the current filters.")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, "[prev: off] [next: off]")
}

func TestList_PlainTable(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "list", "--search", "ADA", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Lovelace")
	assert.Contains(t, out, "$98,000")
	assert.Contains(t, out, "Page 1 of 1  (1 matching")
}

func TestList_PageSizeFromConfigAndFlag(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("view:\n  page_size: 5\n"), 0600))

	out, err := execute(t, "list", "--output", "json")
	require.NoError(t, err)
	got := decodeJSON(t, out)
	assert.Len(t, got.Visible, 5)
	assert.Equal(t, 4, got.Meta.TotalPages)

	config.ResetGlobalConfigForTest()
	out, err = execute(t, "list", "--output", "json", "--page-size", "15")
	require.NoError(t, err)
	got = decodeJSON(t, out)
	assert.Len(t, got.Visible, 15)
}

func TestList_NDJSON(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "list", "--output", "ndjson", "--page-size", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	var rec roster.Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, roster.ID(1), rec.ID)
}

func TestList_DataFiles(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte(`[{"id":1,"first_name":"Ann","last_name":"Ash","gender":"Female","salary":10}]`), 0600))
	require.NoError(t, os.WriteFile(b, []byte("- first_name: Bob\n  last_name: Birch\n  gender: Male\n  salary: 20\n"), 0600))

	out, err := execute(t, "list", "--data", a, "--data", b, "--output", "json")
	require.NoError(t, err)

	got := decodeJSON(t, out)
	assert.Equal(t, []roster.ID{1, 2}, ids(got.Visible))
	assert.Equal(t, "Bob", got.Visible[1].FirstName)
}

func TestList_DataFileErrors(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "list", "--data", filepath.Join(t.TempDir(), "missing.json"), "--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading employees")
	assert.Equal(t, 1, cli.ExitCode(err))
}

func TestList_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown gender", args: []string{"--gender", "robot"}, wantErr: engine.ErrUnknownGenderFilter},
		{name: "lowercase gender", args: []string{"--gender", "female"}, wantErr: engine.ErrUnknownGenderFilter},
		{name: "unknown sort", args: []string{"--sort", "sideways"}, wantErr: engine.ErrUnknownSortMode},
		{name: "page zero", args: []string{"--page", "0"}},
		{name: "page size too large", args: []string{"--page-size", "5000"}},
		{name: "unknown output", args: []string{"--output", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, err := execute(t, append([]string{"list", "--plain"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			var usageErr *cli.UsageError
			assert.ErrorAs(t, err, &usageErr)
			assert.Equal(t, cli.ExitCodeUsage, cli.ExitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 1, cli.ExitCode(assert.AnError))
	assert.Equal(t, 2, cli.ExitCode(&cli.UsageError{Err: assert.AnError}))
}
