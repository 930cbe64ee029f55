package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billsense/internal/classifier"
	"billsense/internal/domain"
)

const billText = "Patient Statement\nAmount Due $450.32\nDr. Smith Family Clinic\nCPT 99214\nDate of Service 2024-03-01"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--defaults"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestClassify_Stdin(t *testing.T) {
	out, err := execute(t, billText)
	require.NoError(t, err)

	var res classifier.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.DocumentTypeMedicalBill, res.Type)
	assert.Equal(t, 77, res.Confidence)
	assert.True(t, res.CanAnalyze)
	require.NotNil(t, res.Debug)
	assert.Equal(t, 74, res.Debug.BillScore)
}

func TestClassify_FileWithHeader(t *testing.T) {
	dir := t.TempDir()
	body := filepath.Join(dir, "body.txt")
	header := filepath.Join(dir, "header.txt")
	require.NoError(t, os.WriteFile(body, []byte(billText), 0o600))
	require.NoError(t, os.WriteFile(header, []byte("THIS IS NOT A BILL"), 0o600))

	out, err := execute(t, "", "--header", header, "--no-debug", body)
	require.NoError(t, err)

	assert.Contains(t, out, `"type": "EOB"`)
	assert.NotContains(t, out, "_debug")
}

func TestClassify_Matrix(t *testing.T) {
	out, err := execute(t, billText, "--matrix")
	require.NoError(t, err)

	var m classifier.Matrix
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, domain.DocumentTypeMedicalBill, m.FinalType)
	assert.Equal(t, 74, m.BillScore.Total)
	assert.Len(t, m.RequiredCategories, 4)
	assert.Len(t, m.Trace, 4)
}

func TestClassify_EmptyInput(t *testing.T) {
	_, err := execute(t, "")
	assert.ErrorIs(t, err, domain.ErrEmptyText)
}

func TestClassify_WhitespaceIsInvalid(t *testing.T) {
	out, err := execute(t, "  \n ")
	require.NoError(t, err)

	var res classifier.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.DocumentTypeInvalid, res.Type)
	assert.Equal(t, 80, res.Confidence)
}

func TestClassify_HeaderWithEmptyBody(t *testing.T) {
	header := filepath.Join(t.TempDir(), "header.txt")
	require.NoError(t, os.WriteFile(header, []byte(billText), 0o600))

	out, err := execute(t, "", "--header", header)
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "MEDICAL_BILL"`)
}

func TestClassify_FailInvalid(t *testing.T) {
	out, err := execute(t, "Construction estimate from a licensed contractor", "--fail-invalid")
	assert.Error(t, err)
	assert.Contains(t, out, `"can_analyze": false`)

	_, err = execute(t, billText, "--fail-invalid")
	assert.NoError(t, err)
}
