package simpleexcel

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a block of rows in a sheet: an optional title,
// an optional header row and one row per data item.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       interface{}    `yaml:"title"`
	Data        interface{}    `yaml:"-"` // Data is bound at runtime
	ShowHeader  bool           `yaml:"show_header"`
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	DataStyle   *StyleTemplate `yaml:"data_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName     string                        `yaml:"field_name"` // Struct field name or map key
	Header        string                        `yaml:"header"`
	Width         float64                       `yaml:"width"`
	Formatter     func(interface{}) interface{} `yaml:"-"`         // Programmatic formatter
	FormatterName string                        `yaml:"formatter"` // Name of registered formatter (YAML)
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font      *FontTemplate      `yaml:"font"`
	Fill      *FillTemplate      `yaml:"fill"`
	Alignment *AlignmentTemplate `yaml:"alignment"`
	Border    *BorderTemplate    `yaml:"border"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

type AlignmentTemplate struct {
	Horizontal string `yaml:"horizontal"` // center, left, right
	Vertical   string `yaml:"vertical"`   // top, center, bottom
}

// BorderTemplate draws the same line on all four edges of a cell.
type BorderTemplate struct {
	Style string `yaml:"style"` // thin, medium, thick, dashed, dotted, double
	Color string `yaml:"color"` // Hex color, defaults to black
}
