package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/currency"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/resilience"
	"github.com/sjperalta/contratus-api/pkg/logger"
	"github.com/sony/gobreaker"
)

// Document kinds, also used as metric labels
const (
	DocumentProposal = "proposal"
	DocumentContract = "contract"
)

//go:embed templates/documents/*.html
var documentTemplates embed.FS

var documentFuncs = template.FuncMap{
	"money":   currency.Format,
	"percent": currency.Percent,
}

// PDFRenderer turns a rendered HTML page into a PDF
type PDFRenderer interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// WkhtmltopdfRenderer shells out to the wkhtmltopdf binary
type WkhtmltopdfRenderer struct {
	timeout time.Duration
}

func NewWkhtmltopdfRenderer(timeout time.Duration) *WkhtmltopdfRenderer {
	return &WkhtmltopdfRenderer{timeout: timeout}
}

func (r *WkhtmltopdfRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.MarginTop.Set(15)
	pdfg.MarginBottom.Set(15)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	page.EnableLocalFileAccess.Set(true)
	page.Encoding.Set("UTF-8")
	pdfg.AddPage(page)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if err := pdfg.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Bytes(), nil
}

// breakerRenderer stops calling a failing renderer until it recovers
type breakerRenderer struct {
	next PDFRenderer
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerRenderer wraps next in a circuit breaker reporting state changes to metrics
func NewBreakerRenderer(next PDFRenderer, openTimeout time.Duration, metrics *observability.Metrics) PDFRenderer {
	return &breakerRenderer{
		next: next,
		cb:   resilience.NewCircuitBreaker("wkhtmltopdf", openTimeout, metrics.BreakerStateChanged),
	}
}

func (r *breakerRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	out, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Render(ctx, html)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, unavailableError("o gerador de documentos está indisponível, tente novamente em instantes")
	}
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

// Document is a generated PDF and where it was stored
type Document struct {
	Filename string
	Path     string
	Content  []byte
}

// DocumentService renders proposal and contract PDFs
type DocumentService struct {
	proposals *ProposalService
	contracts *ContractService
	repos     *repository.Repositories
	settings  SettingsSource
	files     FileStore
	renderer  PDFRenderer
	metrics   *observability.Metrics
	templates *template.Template
	assetsDir string
	now       func() time.Time
}

// NewDocumentService parses the embedded templates. assetsDir is where
// uploaded images (the agency logo) live on disk.
func NewDocumentService(
	proposals *ProposalService,
	contracts *ContractService,
	repos *repository.Repositories,
	settings SettingsSource,
	files FileStore,
	renderer PDFRenderer,
	metrics *observability.Metrics,
	assetsDir string,
) *DocumentService {
	return &DocumentService{
		proposals: proposals,
		contracts: contracts,
		repos:     repos,
		settings:  settings,
		files:     files,
		renderer:  renderer,
		metrics:   metrics,
		templates: template.Must(template.New("documents").Funcs(documentFuncs).ParseFS(documentTemplates, "templates/documents/*.html")),
		assetsDir: assetsDir,
		now:       time.Now,
	}
}

// ProposalPDF renders the proposal, stores it and records its path
func (s *DocumentService) ProposalPDF(ctx context.Context, policy access.Policy, id uint) (*Document, error) {
	proposal, err := s.proposals.FindByID(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.generate(ctx, DocumentProposal, "proposal.html", s.proposalData(proposal, settings),
		fmt.Sprintf("Proposta_%s.pdf", proposal.Number), "documents/proposals")
	if err != nil {
		return nil, err
	}
	if err := s.repos.Proposal.SetDocumentPath(ctx, id, doc.Path); err != nil {
		return nil, err
	}
	return doc, nil
}

// ContractPDF renders the contract, stores it and records its path
func (s *DocumentService) ContractPDF(ctx context.Context, policy access.Policy, id uint) (*Document, error) {
	contract, err := s.contracts.FindByID(ctx, policy, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.generate(ctx, DocumentContract, "contract.html", s.contractData(contract, settings),
		fmt.Sprintf("Contrato_%s.pdf", contract.Number), "documents/contracts")
	if err != nil {
		return nil, err
	}
	if err := s.repos.Contract.SetDocumentPath(ctx, id, "document_path", doc.Path); err != nil {
		return nil, err
	}
	return doc, nil
}

// HTML executes a document template without converting it
func (s *DocumentService) HTML(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (s *DocumentService) generate(ctx context.Context, kind, tmpl string, data any, filename, subDir string) (doc *Document, err error) {
	defer func() { s.metrics.IncDocument(kind, err) }()

	html, err := s.HTML(tmpl, data)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.Render(ctx, html)
	if err != nil {
		logger.Error("[Documents] render failed", "kind", kind, "file", filename, "error", err)
		return nil, err
	}
	path, err := s.files.UploadFromBytes(pdf, filename, subDir)
	if err != nil {
		return nil, err
	}
	return &Document{Filename: filename, Path: path, Content: pdf}, nil
}

// branding is the agency header shared by every document
type branding struct {
	AgencyName string
	CNPJ       string
	Address    string
	Phone      string
	Email      string
	Website    string
	Instagram  string
	LogoURL    string
}

func (s *DocumentService) branding(settings models.Settings) branding {
	b := branding{
		AgencyName: settings.AgencyName,
		CNPJ:       settings.CNPJ,
		Address:    settings.Address,
		Phone:      settings.Phone,
		Email:      settings.Email,
		Website:    settings.Website,
		Instagram:  settings.Instagram,
	}
	if settings.LogoPath != nil && *settings.LogoPath != "" {
		rel := strings.TrimPrefix(*settings.LogoPath, "/uploads/")
		if abs, err := filepath.Abs(filepath.Join(s.assetsDir, filepath.FromSlash(rel))); err == nil {
			b.LogoURL = "file://" + filepath.ToSlash(abs)
		}
	}
	return b
}

// amountLine is one labelled row of a values table
type amountLine struct {
	Label  string
	Amount decimal.Decimal
}

func nonZero(lines ...amountLine) []amountLine {
	out := lines[:0]
	for _, l := range lines {
		if !l.Amount.IsZero() {
			out = append(out, l)
		}
	}
	return out
}

type proposalDocument struct {
	Branding          branding
	Number            string
	IssuedOn          string
	ValidUntil        string
	StatusLabel       string
	ClientName        string
	ClientCPF         string
	ClientPhone       string
	ClientEmail       string
	ClientAddress     string
	CompanyName       string
	DevelopmentName   string
	DevelopmentAddr   string
	UnitLabel         string
	UnitTypeName      string
	UnitSummary       string
	AgentName         string
	AgentCRECI        string
	Funding           []amountLine
	PropertyValue     decimal.Decimal
	BasePrice         decimal.Decimal
	MarkedUpTotal     decimal.Decimal
	ClientInstallment decimal.Decimal
	InstallmentCount  int
	TotalApproval     decimal.Decimal
	Notes             string
}

var proposalStatusLabels = map[string]string{
	models.ProposalStatusDraft:     "Rascunho",
	models.ProposalStatusSent:      "Enviada",
	models.ProposalStatusApproved:  "Aprovada",
	models.ProposalStatusRejected:  "Rejeitada",
	models.ProposalStatusExpired:   "Expirada",
	models.ProposalStatusCancelled: "Cancelada",
}

func (s *DocumentService) proposalData(p *models.Proposal, settings models.Settings) proposalDocument {
	issued := s.now()
	validUntil := issued.AddDate(0, 0, p.ValidityDays)
	if expires := p.ExpiresAt(); expires != nil {
		validUntil = *expires
	}

	doc := proposalDocument{
		Branding:          s.branding(settings),
		Number:            p.Number,
		IssuedOn:          issued.Format("02/01/2006"),
		ValidUntil:        validUntil.Format("02/01/2006"),
		StatusLabel:       proposalStatusLabels[p.Status],
		ClientName:        p.Client.FullName,
		ClientCPF:         p.Client.CPF,
		ClientPhone:       p.Client.Phone,
		ClientEmail:       p.Client.Email,
		ClientAddress:     p.Client.Address.Full(),
		CompanyName:       p.Development.ConstructionCompany.DisplayName(),
		DevelopmentName:   p.Development.Name,
		DevelopmentAddr:   p.Development.Address.Full(),
		UnitLabel:         p.Unit.Label(),
		AgentName:         p.Agent.FullName,
		AgentCRECI:        p.Agent.CRECI,
		PropertyValue:     p.PropertyValue,
		BasePrice:         p.BasePrice,
		MarkedUpTotal:     p.MarkedUpTotal,
		ClientInstallment: p.ClientInstallment,
		InstallmentCount:  p.InstallmentCount,
		TotalApproval:     p.TotalApproval,
		Notes:             p.Notes,
		Funding: nonZero(
			amountLine{"Financiamento", p.FinancingAmount},
			amountLine{"Subsídio", p.SubsidyAmount},
			amountLine{"FGTS", p.FGTSAmount},
			amountLine{"Sinal", p.SignalAmount},
			amountLine{"Entrada", p.DownPayment},
		),
	}
	if p.UnitType != nil {
		doc.UnitTypeName = p.UnitType.Name
		doc.UnitSummary = p.UnitType.Summary()
	}
	return doc
}

type witness struct {
	Name string
	CPF  string
}

type contractDocument struct {
	Branding             branding
	Number               string
	ProposalNumber       string
	City                 string
	SignedOnLong         string
	SignatureDate        string
	DueDate              string
	ExtendedDueDate      string
	ValidityDays         int
	ExtensionDays        int
	StatusLabel          string
	ClientName           string
	ClientCPF            string
	ClientRG             string
	ClientMaritalStatus  string
	ClientAddress        string
	CompanyLegalName     string
	CompanyCNPJ          string
	CompanyAddress       string
	CompanyRepresentant  string
	DevelopmentName      string
	DevelopmentAddr      string
	UnitLabel            string
	UnitSummary          string
	AgentName            string
	AgentCRECI           string
	PropertyValue        decimal.Decimal
	PropertyValueInWords string
	Funding              []amountLine
	MarkedUpTotal        decimal.Decimal
	ClientInstallment    decimal.Decimal
	InstallmentCount     int
	Witnesses            []witness
	Notes                string
}

func (s *DocumentService) contractData(c *models.Contract, settings models.Settings) contractDocument {
	company := c.Development.ConstructionCompany
	doc := contractDocument{
		Branding:             s.branding(settings),
		Number:               c.Number,
		City:                 c.Development.Address.City,
		SignedOnLong:         strings.ToUpper(longDate(c.SignatureDate)),
		SignatureDate:        c.SignatureDate.Format("02/01/2006"),
		DueDate:              c.DueDate.Format("02/01/2006"),
		ExtendedDueDate:      c.ExtendedDueDate().Format("02/01/2006"),
		ValidityDays:         c.ValidityDays,
		ExtensionDays:        c.ExtensionDays,
		StatusLabel:          c.StatusLabel(),
		ClientName:           c.Client.FullName,
		ClientCPF:            c.Client.CPF,
		ClientRG:             c.Client.RG,
		ClientMaritalStatus:  c.Client.MaritalStatus,
		ClientAddress:        c.Client.Address.Full(),
		CompanyLegalName:     company.LegalName,
		CompanyCNPJ:          company.CNPJ,
		CompanyAddress:       company.Address.Full(),
		CompanyRepresentant:  company.LegalRepresentative,
		DevelopmentName:      c.Development.Name,
		DevelopmentAddr:      c.Development.Address.Full(),
		UnitLabel:            c.Unit.Label(),
		AgentName:            c.Agent.FullName,
		AgentCRECI:           c.Agent.CRECI,
		PropertyValue:        c.PropertyValue,
		PropertyValueInWords: c.AmountInWords(),
		MarkedUpTotal:        c.MarkedUpTotal,
		ClientInstallment:    c.ClientInstallment,
		InstallmentCount:     c.InstallmentCount,
		Notes:                c.Notes,
		Funding: nonZero(
			amountLine{"Financiamento", c.FinancingAmount},
			amountLine{"Subsídio", c.SubsidyAmount},
			amountLine{"FGTS", c.FGTSAmount},
			amountLine{"Sinal", c.SignalAmount},
			amountLine{"Entrada", c.DownPayment},
		),
	}
	if c.Proposal != nil {
		doc.ProposalNumber = c.Proposal.Number
	}
	if c.Unit.UnitType != nil {
		doc.UnitSummary = c.Unit.UnitType.Summary()
	}
	if c.Witness1Name != "" {
		doc.Witnesses = append(doc.Witnesses, witness{c.Witness1Name, c.Witness1CPF})
	}
	if c.Witness2Name != "" {
		doc.Witnesses = append(doc.Witnesses, witness{c.Witness2Name, c.Witness2CPF})
	}
	return doc
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// longDate renders t as "10 de janeiro de 2025"
func longDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
