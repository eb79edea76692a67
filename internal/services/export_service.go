package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/currency"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ContentTypes maps each export format to its MIME type
var ContentTypes = map[string]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
}

// MaxExportRows caps one export
const MaxExportRows = 5000

// Export is a generated listing file
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

// sheet is a format-independent table. Cells are strings, decimals or ints.
type sheet struct {
	Title   string
	Headers []string
	Widths  []float64
	Rows    [][]any
}

// ExportService writes scoped listings as CSV, XLSX or PDF
type ExportService struct {
	proposals   *ProposalService
	contracts   *ContractService
	commissions *CommissionService
	now         func() time.Time
}

func NewExportService(proposals *ProposalService, contracts *ContractService, commissions *CommissionService) *ExportService {
	return &ExportService{proposals: proposals, contracts: contracts, commissions: commissions, now: time.Now}
}

func exportQuery(q *repository.ListQuery) *repository.ListQuery {
	if q == nil {
		q = repository.NewListQuery()
	}
	q.Page = 1
	q.PerPage = MaxExportRows
	return q
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// Proposals exports the proposals visible to policy
func (s *ExportService) Proposals(ctx context.Context, policy access.Policy, query *repository.ProposalQuery, format string) (*Export, error) {
	query.ListQuery = exportQuery(query.ListQuery)
	proposals, _, err := s.proposals.List(ctx, policy, query)
	if err != nil {
		return nil, err
	}

	sh := sheet{
		Title:   "Propostas",
		Headers: []string{"Número", "Data", "Status", "Cliente", "CPF", "Empreendimento", "Unidade", "Corretor", "Valor do imóvel", "Total aprovado", "Parcelas", "Valor da parcela"},
		Widths:  []float64{24, 18, 18, 36, 26, 32, 16, 30, 26, 26, 14, 24},
	}
	for _, p := range proposals {
		sh.Rows = append(sh.Rows, []any{
			p.Number,
			p.CreatedAt.Format("02/01/2006"),
			proposalStatusLabels[p.Status],
			p.Client.FullName,
			p.Client.CPF,
			p.Development.Name,
			p.Unit.Label(),
			p.Agent.FullName,
			p.PropertyValue,
			p.TotalApproval,
			p.InstallmentCount,
			p.ClientInstallment,
		})
	}
	return s.write(sh, "propostas", format)
}

// Contracts exports the contracts visible to policy
func (s *ExportService) Contracts(ctx context.Context, policy access.Policy, query *repository.ContractQuery, format string) (*Export, error) {
	query.ListQuery = exportQuery(query.ListQuery)
	contracts, _, err := s.contracts.List(ctx, policy, query)
	if err != nil {
		return nil, err
	}

	sh := sheet{
		Title:   "Contratos",
		Headers: []string{"Número", "Assinatura", "Vencimento", "Status", "Cliente", "Empreendimento", "Unidade", "Corretor", "Valor do imóvel", "Financiamento", "Total aprovado"},
		Widths:  []float64{24, 20, 20, 26, 36, 32, 16, 30, 26, 26, 26},
	}
	for _, c := range contracts {
		sh.Rows = append(sh.Rows, []any{
			c.Number,
			c.SignatureDate.Format("02/01/2006"),
			c.DueDate.Format("02/01/2006"),
			c.StatusLabel(),
			c.Client.FullName,
			c.Development.Name,
			c.Unit.Label(),
			c.Agent.FullName,
			c.PropertyValue,
			c.FinancingAmount,
			c.TotalApproval,
		})
	}
	return s.write(sh, "contratos", format)
}

var commissionStatusLabels = map[string]string{
	models.CommissionStatusPending:   "Pendente",
	models.CommissionStatusApproved:  "Aprovada",
	models.CommissionStatusPaid:      "Paga",
	models.CommissionStatusCancelled: "Cancelada",
}

// Commissions exports the commissions visible to policy
func (s *ExportService) Commissions(ctx context.Context, policy access.Policy, query *repository.CommissionQuery, format string) (*Export, error) {
	query.ListQuery = exportQuery(query.ListQuery)
	commissions, _, err := s.commissions.List(ctx, policy, query)
	if err != nil {
		return nil, err
	}

	sh := sheet{
		Title:   "Comissões",
		Headers: []string{"Contrato", "Corretor", "Status", "Base", "Percentual", "Bruto", "Descontos", "Líquido", "Previsão", "Pagamento"},
		Widths:  []float64{24, 32, 18, 26, 18, 24, 22, 24, 20, 20},
	}
	for _, c := range commissions {
		number := ""
		if c.Contract != nil {
			number = c.Contract.Number
		}
		sh.Rows = append(sh.Rows, []any{
			number,
			c.Agent.FullName,
			commissionStatusLabels[c.Status],
			c.BaseValue,
			currency.Percent(c.Percentage),
			c.GrossAmount,
			c.Deductions,
			c.NetAmount,
			dateOrEmpty(c.ExpectedPaymentDate),
			dateOrEmpty(c.PaymentDate),
		})
	}
	return s.write(sh, "comissoes", format)
}

func (s *ExportService) write(sh sheet, name, format string) (*Export, error) {
	var (
		content []byte
		err     error
	)
	switch format {
	case "", FormatCSV:
		format = FormatCSV
		content, err = writeCSV(sh)
	case FormatXLSX:
		content, err = writeXLSX(sh)
	case FormatPDF:
		content, err = writePDF(sh, s.now())
	default:
		return nil, validationError("formato de exportação inválido: %s", format)
	}
	if err != nil {
		return nil, err
	}
	return &Export{
		Filename:    fmt.Sprintf("%s_%s.%s", name, s.now().Format("2006-01-02"), format),
		ContentType: ContentTypes[format],
		Content:     content,
	}, nil
}

// text renders a cell for CSV and PDF. Money uses the Brazilian format.
func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case decimal.Decimal:
		return currency.Format(x)
	default:
		return fmt.Sprint(x)
	}
}

func writeCSV(sh sheet) ([]byte, error) {
	buf := new(bytes.Buffer)
	// BOM so spreadsheet tools detect UTF-8
	buf.WriteString("\ufeff")
	w := csv.NewWriter(buf)
	w.Comma = ';'

	if err := w.Write(sh.Headers); err != nil {
		return nil, err
	}
	record := make([]string, len(sh.Headers))
	for _, row := range sh.Rows {
		for i, v := range row {
			if d, ok := v.(decimal.Decimal); ok {
				record[i] = d.StringFixed(2)
				continue
			}
			record[i] = text(v)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeXLSX(sh sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := sh.Title
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	moneyFormat := `"R$" #,##0.00`
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat})
	if err != nil {
		return nil, err
	}

	for i, h := range sh.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(name, cell, h)
		col, _ := excelize.ColumnNumberToName(i + 1)
		if i < len(sh.Widths) {
			_ = f.SetColWidth(name, col, col, sh.Widths[i]/1.5)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(sh.Headers), 1)
	_ = f.SetCellStyle(name, "A1", last, headerStyle)

	for r, row := range sh.Rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if d, ok := v.(decimal.Decimal); ok {
				_ = f.SetCellValue(name, cell, d.InexactFloat64())
				_ = f.SetCellStyle(name, cell, cell, moneyStyle)
				continue
			}
			_ = f.SetCellValue(name, cell, v)
		}
	}
	_ = f.SetPanes(name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePDF(sh sheet, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(8, 10, 8)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(sh.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Gerado em %s · %d registro(s)", now.Format("02/01/2006 15:04"), len(sh.Rows))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// scale widths to the printable area
	total := 0.0
	for _, w := range sh.Widths {
		total += w
	}
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	scale := (pageW - left - right) / total

	header := func() {
		pdf.SetFont("Arial", "B", 7)
		pdf.SetFillColor(30, 58, 138)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range sh.Headers {
			pdf.CellFormat(sh.Widths[i]*scale, 6, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 7)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageH := pdf.GetPageSize()
	for r, row := range sh.Rows {
		if pdf.GetY()+5 > pageH-10 {
			pdf.AddPage()
			header()
		}
		fill := r%2 == 1
		pdf.SetFillColor(243, 244, 246)
		for i, v := range row {
			align := "L"
			if _, ok := v.(decimal.Decimal); ok {
				align = "R"
			}
			pdf.CellFormat(sh.Widths[i]*scale, 5, tr(text(v)), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
