package service

import (
	"context"
	"fmt"

	"github.com/locvowork/case_upload_template/internal/casetemplate"
	"github.com/locvowork/case_upload_template/internal/logger"
	"github.com/locvowork/case_upload_template/pkg/simpleexcel"
	"github.com/xuri/excelize/v2"
)

type TemplateService interface {
	// Build renders the preset into a new workbook. The caller must Close it.
	Build(ctx context.Context, preset string) (*excelize.File, error)
	// Generate writes the preset to path, replacing any existing file.
	Generate(ctx context.Context, preset, path string) error
	// Bytes renders the preset as xlsx bytes.
	Bytes(ctx context.Context, preset string) ([]byte, error)
}

type templateService struct{}

func NewTemplateService() TemplateService {
	return &templateService{}
}

// exporter returns a fresh exporter for the preset with its records bound.
func (s *templateService) exporter(ctx context.Context, name string) (*simpleexcel.DataExporter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := casetemplate.Lookup(name)
	if err != nil {
		return nil, err
	}
	exporter, err := simpleexcel.NewDataExporterFromYamlConfig(p.Layout)
	if err != nil {
		return nil, fmt.Errorf("parse %s layout: %w", p.Name, err)
	}
	exporter.BindSectionData(casetemplate.SectionID, p.Records)
	logger.DebugLog(ctx, "bound %d records to preset %s", len(p.Records), p.Name)
	return exporter, nil
}

func (s *templateService) Build(ctx context.Context, preset string) (*excelize.File, error) {
	exporter, err := s.exporter(ctx, preset)
	if err != nil {
		return nil, err
	}
	f, err := exporter.BuildExcel()
	if err != nil {
		return nil, fmt.Errorf("build %s template: %w", preset, err)
	}
	return f, nil
}

func (s *templateService) Generate(ctx context.Context, preset, path string) error {
	exporter, err := s.exporter(ctx, preset)
	if err != nil {
		return err
	}
	if err := exporter.ExportToExcel(ctx, path); err != nil {
		return fmt.Errorf("generate %s template: %w", preset, err)
	}
	logger.DebugLog(ctx, "wrote %s template to %s", preset, path)
	return nil
}

func (s *templateService) Bytes(ctx context.Context, preset string) ([]byte, error) {
	exporter, err := s.exporter(ctx, preset)
	if err != nil {
		return nil, err
	}
	b, err := exporter.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("render %s template: %w", preset, err)
	}
	return b, nil
}
