package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReportSettings holds the fixed text and font files used by the PDF reports.
type ReportSettings struct {
	Institution string       `yaml:"institution"`
	Title       string       `yaml:"title"`
	Fonts       FontSettings `yaml:"fonts"`
	Signature   Signature    `yaml:"signature"`
}

type FontSettings struct {
	Dir     string `yaml:"dir"`
	Family  string `yaml:"family"`
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

type Signature struct {
	SignLabel     string `yaml:"sign_label"`
	NameLabel     string `yaml:"name_label"`
	PositionLabel string `yaml:"position_label"`
}

func DefaultReportSettings() ReportSettings {
	return ReportSettings{
		Institution: "สำนักงานแนะแนวการศึกษา มหาวิทยาลัย",
		Title:       "รายงานสรุปกิจกรรมแนะแนว",
		Fonts: FontSettings{
			Dir:     "fonts",
			Family:  "THSarabunNew",
			Regular: "THSarabunNew.ttf",
			Bold:    "THSarabunNew Bold.ttf",
		},
		Signature: Signature{
			SignLabel:     "ลงชื่อ ........................................",
			NameLabel:     "( ........................................ )",
			PositionLabel: "ตำแหน่ง ........................................",
		},
	}
}

// LoadReportSettings reads the YAML file at path over the defaults.
// An empty path or a missing file yields the defaults.
func LoadReportSettings(path string) (ReportSettings, error) {
	out := DefaultReportSettings()
	path = strings.TrimSpace(path)
	if path == "" {
		return out, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return out, fmt.Errorf("read report settings: %w", err)
	}

	var file ReportSettings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return out, fmt.Errorf("parse report settings %s: %w", path, err)
	}

	mergeString(&out.Institution, file.Institution)
	mergeString(&out.Title, file.Title)
	mergeString(&out.Fonts.Dir, file.Fonts.Dir)
	mergeString(&out.Fonts.Family, file.Fonts.Family)
	mergeString(&out.Fonts.Regular, file.Fonts.Regular)
	mergeString(&out.Fonts.Bold, file.Fonts.Bold)
	mergeString(&out.Signature.SignLabel, file.Signature.SignLabel)
	mergeString(&out.Signature.NameLabel, file.Signature.NameLabel)
	mergeString(&out.Signature.PositionLabel, file.Signature.PositionLabel)
	return out, nil
}

func mergeString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
