package ingest

import (
	"path/filepath"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
)

// LoadAll loads the three datasets per the data config. Per-dataset dirs
// default to <data.dir>/enrolment, <data.dir>/biometric, <data.dir>/demographic.
func LoadAll(cfg config.DataConfig) (*Datasets, error) {
	enrolDir := cfg.EnrolmentDir
	if enrolDir == "" {
		enrolDir = filepath.Join(cfg.Dir, "enrolment")
	}
	bioDir := cfg.BiometricDir
	if bioDir == "" {
		bioDir = filepath.Join(cfg.Dir, "biometric")
	}
	demoDir := cfg.DemographicDir
	if demoDir == "" {
		demoDir = filepath.Join(cfg.Dir, "demographic")
	}

	enrolment, err := LoadEnrolment(enrolDir)
	if err != nil {
		return nil, err
	}
	biometric, err := LoadBiometric(bioDir)
	if err != nil {
		return nil, err
	}
	demographic, err := LoadDemographic(demoDir)
	if err != nil {
		return nil, err
	}

	return &Datasets{
		Enrolment:   enrolment,
		Biometric:   biometric,
		Demographic: demographic,
	}, nil
}
