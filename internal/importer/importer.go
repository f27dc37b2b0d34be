// Package importer reads bank statements and turns them into income and
// expense previews that can be reviewed before they are created.
package importer

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/importer/helpers"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoTransactions = errors.New("the statement does not contain any transactions")

// Preview is a statement line converted to an income or an expense.
type Preview struct {
	Type         models.CategoryType `json:"type" example:"expense"`                                        // "income" for credits, "expense" for debits
	Description  string              `json:"description" example:"Albert Heijn 1234"`                       // Payee, name or memo of the statement line
	Amount       decimal.Decimal     `json:"amount" example:"25.5"`                                         // Always positive
	Date         types.Date          `json:"date" example:"2024-01-15" swaggertype:"string"`                // Date the transaction was posted
	Category     string              `json:"category" example:"groceries"`                                  // Category set by a match rule, "other" otherwise
	ImportHash   string              `json:"importHash" example:"9c1185a5c5e9fc54612808977ee8f548b2258d31"` // Hash identifying the statement line
	MatchRuleID  uuid.UUID           `json:"matchRuleId" example:"042d101d-f1de-4403-9295-59dc0ea58677"`    // ID of the match rule that set the category
	DuplicateIDs []uuid.UUID         `json:"duplicateIds"`                                                  // IDs of entries that were imported from the same line before
}

var (
	severity    = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	unclosedTag = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// normalize fixes formatting problems of statements exported by some banks.
func normalize(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severity.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTag.ReplaceAllString(content, "$1>")
}

// ParseOFX parses an OFX or QFX statement. Bank and credit card statements
// are supported.
func ParseOFX(r io.Reader) ([]Preview, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(normalize(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var previews []Preview
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			p, err := convert(string(stmt.BankAcctFrom.AcctID), stmt.BankTranList.Transactions)
			if err != nil {
				return nil, err
			}
			previews = append(previews, p...)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			p, err := convert(string(stmt.CCAcctFrom.AcctID), stmt.BankTranList.Transactions)
			if err != nil {
				return nil, err
			}
			previews = append(previews, p...)
		}
	}

	if len(previews) == 0 {
		return nil, ErrNoTransactions
	}

	return previews, nil
}

func convert(account string, transactions []ofxgo.Transaction) ([]Preview, error) {
	previews := make([]Preview, 0, len(transactions))

	for _, t := range transactions {
		amount, err := decimal.NewFromString(t.TrnAmt.FloatString(8))
		if err != nil {
			return nil, fmt.Errorf("amount of transaction %s could not be parsed: %w", t.FiTID, err)
		}

		// Zero amount lines carry no money, e.g. balance notes
		if amount.IsZero() {
			continue
		}

		p := Preview{
			Type:         models.CategoryTypeIncome,
			Description:  description(t),
			Amount:       amount.Abs(),
			Date:         types.DateOf(t.DtPosted.Time),
			Category:     models.CategoryOther,
			DuplicateIDs: make([]uuid.UUID, 0),
		}

		if amount.IsNegative() {
			p.Type = models.CategoryTypeExpense
		}

		if t.FiTID != "" {
			p.ImportHash = helpers.ImportHash(account, string(t.FiTID))
		} else {
			p.ImportHash = helpers.ImportHash(account, p.Date.String(), amount.String(), p.Description)
		}

		previews = append(previews, p)
	}

	return previews, nil
}

// description prefers the payee over the name. The memo is used when
// neither is set.
func description(t ofxgo.Transaction) string {
	if t.Payee != nil && t.Payee.Name != "" {
		return strings.TrimSpace(string(t.Payee.Name))
	}

	if t.Name != "" {
		return strings.TrimSpace(string(t.Name))
	}

	return strings.TrimSpace(string(t.Memo))
}
