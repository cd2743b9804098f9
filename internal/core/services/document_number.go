package services

import (
	"context"
	"fmt"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_app/internal/utils/numbering"
)

// documentNumberGenerator allocates sequential document numbers from the
// per-type database sequence. Sequence values survive document deletion, so
// numbers are monotonic and never reused.
type documentNumberGenerator struct {
	seq portsrepo.DocumentSequencer
}

func newDocumentNumberGenerator(seq portsrepo.DocumentSequencer) *documentNumberGenerator {
	return &documentNumberGenerator{seq: seq}
}

// Next returns the next formatted number for the given document type,
// e.g. INV-00042 or EST-00007.
func (g *documentNumberGenerator) Next(ctx context.Context, docType domain.DocumentType) (string, error) {
	n, err := g.seq.NextDocumentSequence(ctx, docType)
	if err != nil {
		return "", fmt.Errorf("failed to allocate next %s number: %w", docType, err)
	}
	return numbering.Format(docType, n), nil
}
