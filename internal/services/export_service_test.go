package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSheet() sheet {
	return sheet{
		Title:   "Comissões",
		Headers: []string{"Contrato", "Corretor", "Parcelas", "Líquido"},
		Widths:  []float64{24, 32, 14, 24},
		Rows: [][]any{
			{"CONT-2025-00001", "Ana; Corretora", 150, dec("15000.5")},
			{"CONT-2025-00002", "Bruno", 80, dec("0")},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	out, err := writeCSV(testSheet())
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, []byte("\ufeff")))
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(out), "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Contrato;Corretor;Parcelas;Líquido", lines[0])
	assert.Equal(t, `CONT-2025-00001;"Ana; Corretora";150;15000.50`, lines[1])
	assert.Equal(t, "CONT-2025-00002;Bruno;80;0.00", lines[2])
}

func TestWriteXLSX(t *testing.T) {
	out, err := writeXLSX(testSheet())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Comissões"}, f.GetSheetList())
	header, err := f.GetCellValue("Comissões", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Corretor", header)
	name, err := f.GetCellValue("Comissões", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ana; Corretora", name)
}

func TestWritePDF(t *testing.T) {
	out, err := writePDF(testSheet(), time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExportService_Write(t *testing.T) {
	svc := &ExportService{now: func() time.Time { return time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC) }}

	export, err := svc.write(testSheet(), "comissoes", "")
	require.NoError(t, err)
	assert.Equal(t, "comissoes_2025-05-02.csv", export.Filename)
	assert.Equal(t, ContentTypes[FormatCSV], export.ContentType)

	export, err = svc.write(testSheet(), "comissoes", FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "comissoes_2025-05-02.xlsx", export.Filename)

	_, err = svc.write(testSheet(), "comissoes", "docx")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCommissionStatusLabels(t *testing.T) {
	assert.Equal(t, "Paga", commissionStatusLabels[models.CommissionStatusPaid])
	assert.Equal(t, "R$ 15.000,50", text(dec("15000.5")))
	assert.Equal(t, "150", text(150))
}
