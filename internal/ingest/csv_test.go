package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/config"
)

// writeCSV drops a CSV file into dir.
func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadEnrolment(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "enrol.csv",
		"date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n"+
			"01-03-2025,kerala,ernakulam,682001,10,20,30\n"+
			"15-03-2025,KERALA,ernakulam,682002,1,2,3\n")

	records, err := LoadEnrolment(dir)
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, "Kerala", r.State)
	assert.Equal(t, "Ernakulam", r.District)
	assert.Equal(t, "682001", r.Pincode)
	assert.Equal(t, int64(10), r.Age0to5)
	assert.Equal(t, int64(20), r.Age5to17)
	assert.Equal(t, int64(30), r.Age18Up)
	assert.Equal(t, int64(60), r.Total())

	// Case variants normalize to the same label.
	assert.Equal(t, "Kerala", records[1].State)
}

func TestLoadBiometricAndDemographic(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "bio.csv",
		"date,state,district,pincode,bio_age_5_17,bio_age_17_\n"+
			"02-01-2025,bihar,patna,800001,5,50\n")

	bio, err := LoadBiometric(dir)
	require.NoError(t, err)
	require.Len(t, bio, 1)
	assert.Equal(t, "Bihar", bio[0].State)
	assert.Equal(t, int64(5), bio[0].Age5to17)
	assert.Equal(t, int64(50), bio[0].Age17Up)

	demoDir := t.TempDir()
	writeCSV(t, demoDir, "demo.csv",
		"date,state,district,pincode,demo_age_5_17,demo_age_17_\n"+
			"02-01-2025,bihar,patna,800001,7,70\n")

	demo, err := LoadDemographic(demoDir)
	require.NoError(t, err)
	require.Len(t, demo, 1)
	assert.Equal(t, int64(77), demo[0].Total())
}

func TestLoadConcatenatesFilesSorted(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "b_second.csv",
		"date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n"+
			"01-01-2025,goa,north goa,403001,2,0,0\n")
	writeCSV(t, dir, "a_first.csv",
		"date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n"+
			"01-01-2025,kerala,kollam,691001,1,0,0\n")

	records, err := LoadEnrolment(dir)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Kerala", records[0].State)
	assert.Equal(t, "Goa", records[1].State)
}

func TestLoadHeaderCaseAndSpacing(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "enrol.csv",
		"Date, State ,DISTRICT,Pincode,Age_0_5,age_5_17,AGE_18_GREATER\n"+
			"01-01-2025,kerala,kollam,691001,1,2,3\n")

	records, err := LoadEnrolment(dir)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestLoadErrors(t *testing.T) {
	header := "date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n"

	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			"missing column",
			"date,state,district,pincode,age_0_5,age_5_17\n01-01-2025,kerala,kollam,691001,1,2\n",
			`missing column "age_18_greater"`,
		},
		{
			"bad date",
			header + "2025-01-01,kerala,kollam,691001,1,2,3\n",
			"bad date",
		},
		{
			"bad count",
			header + "01-01-2025,kerala,kollam,691001,1,x,3\n",
			"bad count",
		},
		{
			"negative count",
			header + "01-01-2025,kerala,kollam,691001,1,-2,3\n",
			"negative count",
		},
		{
			"short row",
			header + "01-01-2025,kerala,kollam\n",
			"has 3 fields",
		},
		{
			"empty file",
			"",
			"empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeCSV(t, dir, "enrol.csv", tt.content)

			_, err := LoadEnrolment(dir)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrDataFormat), "want ErrDataFormat, got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadErrorReportsRowNumber(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "enrol.csv",
		"date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n"+
			"01-01-2025,kerala,kollam,691001,1,2,3\n"+
			"01-01-2025,kerala,kollam,691001,1,bad,3\n")

	_, err := LoadEnrolment(dir)
	require.Error(t, err)
	// Header is line 1, so the second data row is line 3.
	assert.Contains(t, err.Error(), "row 3")
}

func TestLoadEmptyDir(t *testing.T) {
	_, err := LoadEnrolment(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CSV files")
}

func TestLoadAll(t *testing.T) {
	root := t.TempDir()
	for sub, content := range map[string]string{
		"enrolment":   "date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n01-01-2025,kerala,kollam,691001,1,2,3\n",
		"biometric":   "date,state,district,pincode,bio_age_5_17,bio_age_17_\n01-01-2025,kerala,kollam,691001,4,5\n",
		"demographic": "date,state,district,pincode,demo_age_5_17,demo_age_17_\n01-01-2025,kerala,kollam,691001,6,7\n",
	} {
		dir := filepath.Join(root, sub)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		writeCSV(t, dir, "data.csv", content)
	}

	ds, err := LoadAll(config.DataConfig{Dir: root})
	require.NoError(t, err)
	assert.Len(t, ds.Enrolment, 1)
	assert.Len(t, ds.Biometric, 1)
	assert.Len(t, ds.Demographic, 1)
}

func TestLoadAllExplicitDirs(t *testing.T) {
	enrolDir := t.TempDir()
	bioDir := t.TempDir()
	demoDir := t.TempDir()
	writeCSV(t, enrolDir, "e.csv", "date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n01-01-2025,kerala,kollam,691001,1,2,3\n")
	writeCSV(t, bioDir, "b.csv", "date,state,district,pincode,bio_age_5_17,bio_age_17_\n01-01-2025,kerala,kollam,691001,4,5\n")
	writeCSV(t, demoDir, "d.csv", "date,state,district,pincode,demo_age_5_17,demo_age_17_\n01-01-2025,kerala,kollam,691001,6,7\n")

	ds, err := LoadAll(config.DataConfig{
		EnrolmentDir:   enrolDir,
		BiometricDir:   bioDir,
		DemographicDir: demoDir,
	})
	require.NoError(t, err)
	assert.Len(t, ds.Enrolment, 1)
	assert.Len(t, ds.Biometric, 1)
	assert.Len(t, ds.Demographic, 1)
}
