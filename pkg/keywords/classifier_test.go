// Test Type: Unit Test
// Description: Tests for keyword classification - ordered case-insensitive substring matching

package keywords_test

import (
	"testing"

	"github.com/arthur-debert/sortie/pkg/keywords"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := keywords.NewClassifier(types.KeywordMap{
		{Keyword: "invoice", Dest: "/fin/invoices"},
		{Keyword: "Receipt", Dest: "/fin/receipts"},
	})

	tests := []struct {
		file   string
		dest   string
		wantOK bool
	}{
		{"/in/INVOICE_2024.pdf", "/fin/invoices", true},
		{"/in/receipt-jan.png", "/fin/receipts", true},
		{"/in/invoice_receipt.pdf", "/fin/invoices", true},
		{"/in/holiday.jpg", "", false},
		{"/invoice/holiday.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			dest, ok := c.Classify(tt.file)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.dest, dest)
		})
	}
}

func TestClassifier_DeclarationOrderBeatsSpecificity(t *testing.T) {
	c := keywords.NewClassifier(types.KeywordMap{
		{Keyword: "report", Dest: "/general"},
		{Keyword: "annual_report", Dest: "/annual"},
	})

	dest, ok := c.Classify("annual_report_2023.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/general", dest)
}

func TestClassifier_Empty(t *testing.T) {
	c := keywords.NewClassifier(nil)
	_, ok := c.Classify("invoice.pdf")
	assert.False(t, ok)
	assert.Empty(t, c.Entries())
}
