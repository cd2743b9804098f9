package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// suffixWidth is the minimum zero-padded width of the numeric suffix.
// Sequences past 99999 simply grow wider.
const suffixWidth = 5

// Prefix returns the fixed document number prefix for a document type.
func Prefix(docType domain.DocumentType) string {
	if docType == domain.Invoice {
		return "INV-"
	}
	return "EST-"
}

// Format renders a sequence value as a document number, e.g. (INVOICE, 7)
// -> "INV-00007".
func Format(docType domain.DocumentType, seq int64) string {
	return fmt.Sprintf("%s%0*d", Prefix(docType), suffixWidth, seq)
}

// Parse extracts the numeric suffix from a stored document number. A missing
// prefix or non-numeric suffix means the stored data is corrupt and yields
// ErrDataIntegrity rather than a silently wrong sequence.
func Parse(docType domain.DocumentType, number string) (int64, error) {
	prefix := Prefix(docType)
	suffix, ok := strings.CutPrefix(number, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: document number %q lacks prefix %q", apperrors.ErrDataIntegrity, number, prefix)
	}
	seq, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("%w: document number %q has a non-numeric suffix", apperrors.ErrDataIntegrity, number)
	}
	return seq, nil
}
