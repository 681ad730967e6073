package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kleyver/kleyver-app/internal/model"
)

//go:embed seed.yaml
var seedYAML []byte

// DecodeRecords parses a YAML list of media records
func DecodeRecords(data []byte) ([]model.MediaRecord, error) {
	var records []model.MediaRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode media records: %w", err)
	}
	for i := range records {
		if records[i].Kind == "" {
			records[i].Kind = model.KindPhoto
		}
	}
	return records, nil
}

// SeedRecords returns the built-in gallery in display order
func SeedRecords() ([]model.MediaRecord, error) {
	return DecodeRecords(seedYAML)
}
