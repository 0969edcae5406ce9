package service_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/locvowork/case_upload_template/internal/casetemplate"
	"github.com/locvowork/case_upload_template/internal/domain"
	"github.com/locvowork/case_upload_template/internal/logger"
	"github.com/locvowork/case_upload_template/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sheet = "Cases"

var wantWidths = []float64{15, 12, 12, 15, 25, 30, 15, 15, 12}

func generateSample(t *testing.T, path string) *excelize.File {
	t.Helper()
	svc := service.NewTemplateService()
	require.NoError(t, svc.Generate(context.Background(), casetemplate.PresetSample, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func styleAt(t *testing.T, f *excelize.File, cell string) *excelize.Style {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style
}

func hasHeaderFill(style *excelize.Style) bool {
	for _, c := range style.Fill.Color {
		if strings.HasSuffix(strings.ToUpper(c), "4472C4") {
			return true
		}
	}
	return false
}

func TestGenerateSampleContents(t *testing.T) {
	f := generateSample(t, filepath.Join(t.TempDir(), "SAMPLE_CASES.xlsx"))

	assert.Equal(t, []string{sheet}, f.GetSheetList())

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 11)
	for _, row := range rows {
		assert.Len(t, row, 9)
	}

	assert.Equal(t, domain.CaseColumns(), rows[0])

	p, err := casetemplate.Lookup(casetemplate.PresetSample)
	require.NoError(t, err)
	for i, rec := range p.Records {
		assert.Equal(t, rec.Values(), rows[i+1])
		assert.Equal(t, fmt.Sprintf("CASE-%03d", i+1), rows[i+1][0])
	}

	// numeric-looking values stay text
	cellType, err := f.GetCellType(sheet, "D2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeNumber, cellType)
}

func TestGenerateSampleStyles(t *testing.T) {
	f := generateSample(t, filepath.Join(t.TempDir(), "SAMPLE_CASES.xlsx"))

	for col := 1; col <= 9; col++ {
		cell, err := excelize.CoordinatesToCellName(col, 1)
		require.NoError(t, err)
		style := styleAt(t, f, cell)

		require.NotNil(t, style.Font, cell)
		assert.True(t, style.Font.Bold, cell)
		assert.True(t, strings.HasSuffix(strings.ToUpper(style.Font.Color), "FFFFFF"), cell)
		assert.True(t, hasHeaderFill(style), cell)
		require.NotNil(t, style.Alignment, cell)
		assert.Equal(t, "center", style.Alignment.Horizontal, cell)
		assert.Equal(t, "center", style.Alignment.Vertical, cell)
	}

	for row := 2; row <= 11; row++ {
		for col := 1; col <= 9; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			require.NoError(t, err)
			style := styleAt(t, f, cell)

			assert.False(t, style.Font != nil && style.Font.Bold, cell)
			assert.False(t, hasHeaderFill(style), cell)
			require.NotNil(t, style.Alignment, cell)
			assert.Equal(t, "left", style.Alignment.Horizontal, cell)
			assert.Equal(t, "center", style.Alignment.Vertical, cell)
		}
	}
}

func TestGenerateSampleColumnWidths(t *testing.T) {
	f := generateSample(t, filepath.Join(t.TempDir(), "SAMPLE_CASES.xlsx"))

	for i, want := range wantWidths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		require.NoError(t, err)
		got, err := f.GetColWidth(sheet, colName)
		require.NoError(t, err)
		assert.Equal(t, want, got, colName)
	}
}

func TestGenerateOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SAMPLE_CASES.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	first := generateSample(t, path)
	firstRows, err := first.GetRows(sheet)
	require.NoError(t, err)

	second := generateSample(t, path)
	secondRows, err := second.GetRows(sheet)
	require.NoError(t, err)

	assert.Len(t, secondRows, 11)
	assert.Equal(t, firstRows, secondRows)
}

func TestGenerateIntoMissingDirectoryFails(t *testing.T) {
	svc := service.NewTemplateService()
	path := filepath.Join(t.TempDir(), "missing", "SAMPLE_CASES.xlsx")

	err := svc.Generate(context.Background(), casetemplate.PresetSample, path)
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBuildDemoPreset(t *testing.T) {
	svc := service.NewTemplateService()
	f, err := svc.Build(context.Background(), casetemplate.PresetDemo)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 16)
	assert.Equal(t, "DEMO-015", rows[15][0])

	for _, cell := range []string{"A1", "I16"} {
		style := styleAt(t, f, cell)
		assert.Len(t, style.Border, 4, cell)
	}

	width, err := f.GetColWidth(sheet, "E")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)
}

func TestBytesOpensAsWorkbook(t *testing.T) {
	svc := service.NewTemplateService()
	b, err := svc.Bytes(context.Background(), casetemplate.PresetSample)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(sheet, "A11")
	require.NoError(t, err)
	assert.Equal(t, "CASE-010", value)
}

func TestUnknownPreset(t *testing.T) {
	svc := service.NewTemplateService()
	_, err := svc.Bytes(context.Background(), "missing")
	assert.ErrorIs(t, err, casetemplate.ErrUnknownPreset)
}

func TestGenerateIsQuietAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf, zerolog.InfoLevel)
	t.Cleanup(func() { logger.InitLogging("", "info") })

	svc := service.NewTemplateService()
	path := filepath.Join(t.TempDir(), "SAMPLE_CASES.xlsx")
	require.NoError(t, svc.Generate(context.Background(), casetemplate.PresetSample, path))

	assert.Empty(t, buf.String())
}
