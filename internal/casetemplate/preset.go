// Package casetemplate holds the fixed case upload templates: their sheet
// layouts, sample records and the console summary printed after a run.
package casetemplate

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/locvowork/case_upload_template/internal/domain"
)

// SectionID is the layout section that receives the records.
const SectionID = "cases"

const (
	PresetSample = "sample"
	PresetDemo   = "demo"
)

// ErrUnknownPreset is returned by Lookup for names that are not registered.
var ErrUnknownPreset = errors.New("unknown template preset")

var (
	//go:embed layouts/sample_cases.yaml
	sampleLayout string
	//go:embed layouts/demo_cases.yaml
	demoLayout string
)

// Preset bundles everything needed to produce one template file.
type Preset struct {
	Name       string
	OutputPath string
	// Layout is a simpleexcel YAML layout with a section named SectionID.
	Layout  string
	Records []domain.CaseRecord

	summary func(path string, records []domain.CaseRecord) []string
}

// Summary returns the console lines reported after the template was written to path.
func (p Preset) Summary(path string) []string {
	return p.summary(path, p.Records)
}

// CaseRange returns the first and last case number, e.g. "CASE-001 to CASE-010".
func CaseRange(records []domain.CaseRecord) string {
	if len(records) == 0 {
		return ""
	}
	return fmt.Sprintf("%s to %s", records[0].CaseNumber, records[len(records)-1].CaseNumber)
}

var presets = map[string]func() Preset{
	PresetSample: func() Preset {
		return Preset{
			Name:       PresetSample,
			OutputPath: "SAMPLE_CASES.xlsx",
			Layout:     sampleLayout,
			Records:    sampleRecords(),
			summary: func(path string, records []domain.CaseRecord) []string {
				return []string{
					fmt.Sprintf("✅ Excel file created successfully: %s", path),
					fmt.Sprintf("📊 Sample data includes %d test cases (%s)", len(records), CaseRange(records)),
					"📌 Ready to upload to the system!",
				}
			},
		}
	},
	PresetDemo: func() Preset {
		return Preset{
			Name:       PresetDemo,
			OutputPath: "DEMO_CASES.xlsx",
			Layout:     demoLayout,
			Records:    demoRecords(),
			summary: func(path string, records []domain.CaseRecord) []string {
				return []string{
					fmt.Sprintf("✅ Demo Excel file created successfully: %s", path),
					fmt.Sprintf("📊 Contains %d demo cases (%s)", len(records), CaseRange(records)),
					"📍 Covers multiple states and cities across India",
					"📌 Ready to upload for testing!",
				}
			},
		}
	},
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (Preset, error) {
	build, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

// Names lists the registered presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
