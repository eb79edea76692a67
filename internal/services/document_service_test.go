package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	html  []byte
	calls int
	err   error
}

func (r *fakeRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	r.calls++
	r.html = html
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeFileStore struct {
	saved map[string][]byte
}

func (f *fakeFileStore) Upload(file multipart.File, header *multipart.FileHeader, subDir string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeFileStore) UploadFromBytes(data []byte, filename string, subDir string) (string, error) {
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	path := fmt.Sprintf("%s/%s", subDir, filename)
	f.saved[path] = data
	return path, nil
}

func newTestDocumentService(s *memStore, renderer PDFRenderer, files FileStore) *DocumentService {
	proposals := newTestProposalService(s, &queuedJobs{})
	contracts := newTestContractService(s, &queuedJobs{})
	svc := NewDocumentService(proposals, contracts, s.repos(), testSettings(), files, renderer, nil, "")
	svc.now = func() time.Time { return time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestDocumentService_ProposalPDF(t *testing.T) {
	s := seedStore()
	renderer, files := &fakeRenderer{}, &fakeFileStore{}
	svc := newTestDocumentService(s, renderer, files)

	p, err := newTestProposalService(s, &queuedJobs{}).Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	doc, err := svc.ProposalPDF(context.Background(), access.ForUser(&testAgent), p.ID)
	require.NoError(t, err)

	assert.Equal(t, "Proposta_PROP-2025-00001.pdf", doc.Filename)
	assert.Equal(t, "documents/proposals/Proposta_PROP-2025-00001.pdf", doc.Path)
	assert.Equal(t, "%PDF-1.4 fake", string(files.saved[doc.Path]))
	require.NotNil(t, s.proposals[p.ID].DocumentPath)
	assert.Equal(t, doc.Path, *s.proposals[p.ID].DocumentPath)

	html := string(renderer.html)
	assert.Contains(t, html, "Proposta de compra PROP-2025-00001")
	assert.Contains(t, html, "Contratus Imóveis")
	assert.Contains(t, html, "Carla Cliente")
	assert.Contains(t, html, "R$ 300.000,00")
	assert.Contains(t, html, "Financiamento")
	assert.Contains(t, html, "150 parcelas de")
	assert.NotContains(t, html, "Sinal", "zero amounts are left out")
}

func TestDocumentService_ProposalPDF_OutOfScope(t *testing.T) {
	s := seedStore()
	renderer := &fakeRenderer{}
	svc := newTestDocumentService(s, renderer, &fakeFileStore{})

	p, err := newTestProposalService(s, &queuedJobs{}).Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	_, err = svc.ProposalPDF(context.Background(), access.ForUser(&otherUser), p.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, renderer.calls)
}

func TestDocumentService_ContractPDF(t *testing.T) {
	s := seedStore()
	renderer, files := &fakeRenderer{}, &fakeFileStore{}
	svc := newTestDocumentService(s, renderer, files)
	p := approvedProposal(t, s)

	signed := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)
	c, _, err := newTestContractService(s, &queuedJobs{}).CreateFromProposal(context.Background(), access.ForUser(&testAgent), p.ID, DeriveContractInput{
		SignatureDate: &signed,
		Witnesses:     Witnesses{Witness1Name: "Davi Testemunha", Witness1CPF: "529.982.247-25"},
	})
	require.NoError(t, err)

	doc, err := svc.ContractPDF(context.Background(), access.ForUser(&testAgent), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "documents/contracts/Contrato_CONT-2025-00001.pdf", doc.Path)
	require.NotNil(t, s.contracts[c.ID].DocumentPath)

	html := string(renderer.html)
	assert.Contains(t, html, "CONT-2025-00001")
	assert.Contains(t, html, "12 DE MAIO DE 2025")
	assert.Contains(t, html, "12/05/2025")
	assert.Contains(t, html, "08/11/2025")
	assert.Contains(t, html, "Davi Testemunha")
	assert.Contains(t, html, "529.982.247-25")
}

func TestDocumentService_RenderFailure(t *testing.T) {
	s := seedStore()
	renderer, files := &fakeRenderer{err: errors.New("wkhtmltopdf: exit status 1")}, &fakeFileStore{}
	svc := newTestDocumentService(s, renderer, files)

	p, err := newTestProposalService(s, &queuedJobs{}).Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	_, err = svc.ProposalPDF(context.Background(), access.ForUser(&testAgent), p.ID)
	require.Error(t, err)
	assert.Empty(t, files.saved)
	assert.Nil(t, s.proposals[p.ID].DocumentPath)
}

func TestBreakerRenderer_OpensAfterFailures(t *testing.T) {
	inner := &fakeRenderer{err: errors.New("boom")}
	renderer := NewBreakerRenderer(inner, time.Minute, nil)

	for i := 0; i < 5; i++ {
		_, err := renderer.Render(context.Background(), []byte("<html></html>"))
		require.EqualError(t, err, "boom")
	}

	_, err := renderer.Render(context.Background(), []byte("<html></html>"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 5, inner.calls)
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "1 de março de 2025", longDate(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Rejeitada", proposalStatusLabels[models.ProposalStatusRejected])
}
