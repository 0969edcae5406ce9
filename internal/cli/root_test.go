package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/locvowork/case_upload_template/internal/bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(bootstrap.NewApp())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootWritesSampleCases(t *testing.T) {
	dir := inTempDir(t)

	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t,
		"✅ Excel file created successfully: SAMPLE_CASES.xlsx\n"+
			"📊 Sample data includes 10 test cases (CASE-001 to CASE-010)\n"+
			"📌 Ready to upload to the system!\n",
		out)

	// a second run replaces the file instead of appending
	_, err = run(t)
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, "SAMPLE_CASES.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Cases")
	require.NoError(t, err)
	assert.Len(t, rows, 11)
}

func TestDemoCommand(t *testing.T) {
	dir := inTempDir(t)

	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "DEMO-001 to DEMO-015")
	assert.FileExists(t, filepath.Join(dir, "DEMO_CASES.xlsx"))
	assert.NoFileExists(t, filepath.Join(dir, "SAMPLE_CASES.xlsx"))
}

func TestRootRejectsArguments(t *testing.T) {
	inTempDir(t)

	_, err := run(t, "extra")
	assert.Error(t, err)
}

func TestRootWriteFailurePrintsNothing(t *testing.T) {
	dir := inTempDir(t)
	// a directory in the way makes the save fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "SAMPLE_CASES.xlsx"), 0o755))

	out, err := run(t)
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestRootIgnoresServerPort(t *testing.T) {
	dir := inTempDir(t)
	t.Setenv("APP_PORT", "abc")

	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t,
		"✅ Excel file created successfully: SAMPLE_CASES.xlsx\n"+
			"📊 Sample data includes 10 test cases (CASE-001 to CASE-010)\n"+
			"📌 Ready to upload to the system!\n",
		out)
	assert.FileExists(t, filepath.Join(dir, "SAMPLE_CASES.xlsx"))

	_, err = run(t, "demo")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "DEMO_CASES.xlsx"))
}

func TestServeRejectsInvalidPort(t *testing.T) {
	inTempDir(t)
	t.Setenv("APP_PORT", "abc")

	_, err := run(t, "serve")
	assert.ErrorContains(t, err, "invalid APP_PORT")
}
