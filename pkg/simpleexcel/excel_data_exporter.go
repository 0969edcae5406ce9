package simpleexcel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

const defaultSheetName = "Sheet1"

// borderStyles maps border names to excelize line style codes.
var borderStyles = map[string]int{
	"thin":   1,
	"medium": 2,
	"dashed": 3,
	"dotted": 4,
	"thick":  5,
	"double": 6,
}

// DataExporter is the main entry point for exporting data.
// A DataExporter is not safe for concurrent use.
type DataExporter struct {
	// data holds data bound to specific section IDs (for YAML flow)
	data map[string]interface{}
	// sheets holds both YAML-initialized and programmatically added sheets
	sheets []*SheetBuilder
	// formatters holds registered formatter functions by name
	formatters map[string]func(interface{}) interface{}

	styleCache map[string]int
	fieldCache map[fieldCacheKey]int
}

// fieldCacheKey is a unique key for caching field indices.
type fieldCacheKey struct {
	Type      reflect.Type
	FieldName string
}

// =============================================================================
// Constructors
// =============================================================================

func NewDataExporter() *DataExporter {
	return &DataExporter{
		data:       make(map[string]interface{}),
		sheets:     []*SheetBuilder{},
		formatters: make(map[string]func(interface{}) interface{}),
		styleCache: make(map[string]int),
		fieldCache: make(map[fieldCacheKey]int),
	}
}

// NewDataExporterFromYamlConfig creates an exporter whose sheets and
// sections are declared in yamlConfig. Section data is bound afterwards
// with BindSectionData.
func NewDataExporterFromYamlConfig(yamlConfig string) (*DataExporter, error) {
	if strings.TrimSpace(yamlConfig) == "" {
		return nil, fmt.Errorf("yaml config is empty")
	}
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(yamlConfig), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(tmpl.Sheets) == 0 {
		return nil, fmt.Errorf("yaml config declares no sheets")
	}

	exporter := NewDataExporter()
	for i := range tmpl.Sheets {
		sheetTmpl := &tmpl.Sheets[i]
		sb := exporter.AddSheet(sheetTmpl.Name)
		for j := range sheetTmpl.Sections {
			sb.AddSection(&sheetTmpl.Sections[j])
		}
	}
	return exporter, nil
}

// =============================================================================
// Fluent API
// =============================================================================

// AddSheet starts a new sheet builder.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{
		exporter: e,
		name:     name,
		sections: []*SectionConfig{},
	}
	e.sheets = append(e.sheets, sb)
	return sb
}

// BindSectionData binds data to a section ID (for YAML-based export).
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// RegisterFormatter registers a formatter function with a name.
// This allows referencing formatters by name in YAML configurations.
func (e *DataExporter) RegisterFormatter(name string, f func(interface{}) interface{}) *DataExporter {
	e.formatters[name] = f
	return e
}

// GetSheet returns a SheetBuilder by name, or nil if not found.
func (e *DataExporter) GetSheet(name string) *SheetBuilder {
	for _, sheet := range e.sheets {
		if sheet.name == name {
			return sheet
		}
	}
	return nil
}

// BuildExcel renders every sheet into a new in-memory workbook.
// The caller owns the returned file and must Close it.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	if len(e.sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	// styles are workbook-scoped
	e.styleCache = make(map[string]int)

	for i, sb := range e.sheets {
		sheetName := sb.name
		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", sheetName, err)
			}
		} else {
			idx, err := f.GetSheetIndex(sheetName)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("lookup sheet %q: %w", sheetName, err)
			}
			if idx == -1 {
				if _, err := f.NewSheet(sheetName); err != nil {
					f.Close()
					return nil, fmt.Errorf("create sheet %q: %w", sheetName, err)
				}
			}
		}

		// Late binding for any section that has an ID and matching data in e.data
		for _, sec := range sb.sections {
			if sec.ID != "" {
				if data, ok := e.data[sec.ID]; ok {
					sec.Data = data
				}
			}
		}

		if err := e.renderSections(f, sheetName, sb.sections); err != nil {
			f.Close()
			return nil, fmt.Errorf("render sheet %q: %w", sheetName, err)
		}
	}

	return f, nil
}

// ExportToExcel generates the Excel file on disk, replacing any existing file.
func (e *DataExporter) ExportToExcel(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ToBytes exports the Excel file to an in-memory byte slice.
func (e *DataExporter) ToBytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := e.ToWriter(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWriter exports the Excel file directly to a writer.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// =============================================================================
// SheetBuilder
// =============================================================================

type SheetBuilder struct {
	exporter *DataExporter
	name     string
	sections []*SectionConfig
}

func (sb *SheetBuilder) AddSection(config *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, config)
	return sb
}

func (sb *SheetBuilder) Build() *DataExporter {
	return sb.exporter
}

// Name returns the sheet name.
func (sb *SheetBuilder) Name() string {
	return sb.name
}

// =============================================================================
// Rendering Logic
// =============================================================================

// renderSections stacks sections vertically starting at A1.
func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	currentRow := 1

	for _, sec := range sections {
		// Render Title
		if sec.Title != nil {
			cell, _ := excelize.CoordinatesToCellName(1, currentRow)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return err
			}
			defaultTitle := &StyleTemplate{
				Font:      &FontTemplate{Bold: true},
				Alignment: &AlignmentTemplate{Horizontal: "center", Vertical: "top"},
			}
			styleID, err := e.createStyle(f, resolveStyle(sec.TitleStyle, defaultTitle))
			if err != nil {
				return err
			}
			endCell := cell
			if len(sec.Columns) > 1 {
				endCell, _ = excelize.CoordinatesToCellName(len(sec.Columns), currentRow)
				if err := f.MergeCell(sheet, cell, endCell); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(sheet, cell, endCell, styleID); err != nil {
				return err
			}
			currentRow++
		}

		// Render Header
		if sec.ShowHeader {
			defaultHeader := &StyleTemplate{
				Font:      &FontTemplate{Bold: true},
				Alignment: &AlignmentTemplate{Horizontal: "center", Vertical: "top"},
			}
			styleID, err := e.createStyle(f, resolveStyle(sec.HeaderStyle, defaultHeader))
			if err != nil {
				return err
			}
			for i, col := range sec.Columns {
				cell, _ := excelize.CoordinatesToCellName(i+1, currentRow)
				if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
					return err
				}
			}
			currentRow++
		}

		for i, col := range sec.Columns {
			if col.Width <= 0 {
				continue
			}
			colName, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
				return err
			}
		}

		// Render Data
		dataStyleID, err := e.createStyle(f, resolveStyle(sec.DataStyle, nil))
		if err != nil {
			return err
		}
		dataVal := reflect.ValueOf(sec.Data)
		if dataVal.Kind() == reflect.Ptr {
			dataVal = dataVal.Elem()
		}
		if sec.Data != nil && dataVal.Kind() != reflect.Slice {
			return fmt.Errorf("section %q: data must be a slice, got %s", sec.ID, dataVal.Kind())
		}
		dataLen := 0
		if dataVal.IsValid() {
			dataLen = dataVal.Len()
		}
		for i := 0; i < dataLen; i++ {
			item := dataVal.Index(i)
			for j, col := range sec.Columns {
				cell, _ := excelize.CoordinatesToCellName(j+1, currentRow)
				if err := f.SetCellValue(sheet, cell, e.formatValue(col, e.extractValue(item, col.FieldName))); err != nil {
					return err
				}
				if dataStyleID != 0 {
					if err := f.SetCellStyle(sheet, cell, cell, dataStyleID); err != nil {
						return err
					}
				}
			}
			currentRow++
		}
	}
	return nil
}

func (e *DataExporter) formatValue(col ColumnConfig, val interface{}) interface{} {
	if col.Formatter != nil {
		return col.Formatter(val)
	}
	if col.FormatterName != "" {
		if fn, ok := e.formatters[col.FormatterName]; ok {
			return fn(val)
		}
	}
	return val
}

// resolveStyle merges a configured style with a default style.
// Missing font, fill, alignment or border fall back to the default's.
func resolveStyle(base *StyleTemplate, defaultStyle *StyleTemplate) *StyleTemplate {
	if base == nil {
		if defaultStyle == nil {
			return nil
		}
		s := *defaultStyle
		return &s
	}
	s := *base
	if defaultStyle == nil {
		return &s
	}
	if s.Font == nil {
		s.Font = defaultStyle.Font
	}
	if s.Fill == nil {
		s.Fill = defaultStyle.Fill
	}
	if s.Alignment == nil {
		s.Alignment = defaultStyle.Alignment
	}
	if s.Border == nil {
		s.Border = defaultStyle.Border
	}
	return &s
}

func (e *DataExporter) createStyle(f *excelize.File, tmpl *StyleTemplate) (int, error) {
	if tmpl == nil {
		return 0, nil
	}

	// Generate a unique key for this style
	var sb strings.Builder
	if tmpl.Font != nil {
		fmt.Fprintf(&sb, "f:%v:%s|", tmpl.Font.Bold, tmpl.Font.Color)
	}
	if tmpl.Fill != nil {
		fmt.Fprintf(&sb, "i:%s|", tmpl.Fill.Color)
	}
	if tmpl.Alignment != nil {
		fmt.Fprintf(&sb, "a:%s:%s|", tmpl.Alignment.Horizontal, tmpl.Alignment.Vertical)
	}
	if tmpl.Border != nil {
		fmt.Fprintf(&sb, "b:%s:%s|", tmpl.Border.Style, tmpl.Border.Color)
	}
	key := sb.String()

	if id, ok := e.styleCache[key]; ok {
		return id, nil
	}

	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	if tmpl.Alignment != nil {
		style.Alignment = &excelize.Alignment{
			Horizontal: tmpl.Alignment.Horizontal,
			Vertical:   tmpl.Alignment.Vertical,
		}
	}
	if tmpl.Border != nil {
		lineStyle, ok := borderStyles[tmpl.Border.Style]
		if !ok {
			return 0, fmt.Errorf("unknown border style %q", tmpl.Border.Style)
		}
		color := strings.TrimPrefix(tmpl.Border.Color, "#")
		if color == "" {
			color = "000000"
		}
		for _, edge := range []string{"left", "top", "right", "bottom"} {
			style.Border = append(style.Border, excelize.Border{Type: edge, Color: color, Style: lineStyle})
		}
	}
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	e.styleCache[key] = id
	return id, nil
}

func (e *DataExporter) extractValue(item reflect.Value, fieldName string) interface{} {
	if item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		item = item.Elem()
	}
	if item.Kind() == reflect.Struct {
		t := item.Type()
		key := fieldCacheKey{Type: t, FieldName: fieldName}
		index, ok := e.fieldCache[key]
		if !ok {
			index = -1
			if f, found := t.FieldByName(fieldName); found && len(f.Index) == 1 {
				index = f.Index[0]
			}
			e.fieldCache[key] = index
		}
		if index != -1 {
			return item.Field(index).Interface()
		}
	} else if item.Kind() == reflect.Map {
		val := item.MapIndex(reflect.ValueOf(fieldName))
		if val.IsValid() {
			return val.Interface()
		}
	}
	return ""
}
