// Package importer ingests bank statements into the ledger. OFX/QFX is
// the supported format; debits become expenses with a keyword-derived
// category and credits become incomes.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"

	"github.com/pennywise-app/pennywise/internal/categorize"
	"github.com/pennywise-app/pennywise/internal/model"
)

// Entry is one statement line, normalized. Amount is always positive;
// Debit tells expense from income.
type Entry struct {
	Date        time.Time
	FitID       string
	Description string
	Category    model.Category
	Amount      float64
	Debit       bool
}

// Parser implements OFX/QFX statement parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// severity values and unclosed SGML tags are the two malformations
// banks produce most often.
var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX statement and returns normalized entries.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []Entry
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				entries = append(entries, convert(tx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				entries = append(entries, convert(tx))
			}
		}
	}

	slog.Info("Parsed OFX file", "entries", len(entries))
	return entries, nil
}

func convert(tx ofxgo.Transaction) Entry {
	// OFX uses negative amounts for debits.
	amount, _ := tx.TrnAmt.Float64()
	debit := amount < 0
	if debit {
		amount = -amount
	}

	description := cleanDescription(tx)

	entry := Entry{
		FitID:       string(tx.FiTID),
		Date:        tx.DtPosted.Time,
		Description: description,
		Amount:      amount,
		Debit:       debit,
	}
	if debit {
		entry.Category = categorize.Local(description)
	}
	return entry
}

var descriptionPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

func cleanDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := strings.TrimSpace(string(tx.Name))
	if name == "" && tx.Memo != "" {
		name = strings.TrimSpace(string(tx.Memo))
	}

	upper := strings.ToUpper(name)
	for _, prefix := range descriptionPrefixes {
		if strings.HasPrefix(upper, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}
	return name
}
