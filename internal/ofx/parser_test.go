package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Whole Foods Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240131120000[0:GMT]
<TRNAMT>2500.00
<FITID>2024013101
<NAME>ACME CORP PAYROLL
<MEMO>January salary
</STMTTRN>
<STMTTRN>
<TRNTYPE>CHECK
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-500.00
<FITID>2024012501
<CHECKNUM>1234
<NAME>CHECK #1234
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2024011501
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

var otherCategory = model.Category{ID: "other", Name: "Other", Icon: "ellipsis", Color: "#607D8B"}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{name: "valid bank statement", ofxData: sampleBankOFX, expectedCount: 4},
		{name: "valid credit card statement", ofxData: sampleCreditCardOFX, expectedCount: 2},
		{name: "invalid OFX data", ofxData: "not valid OFX", expectedError: true},
		{name: "empty OFX", ofxData: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(otherCategory)

			transactions, err := parser.ParseFile(context.Background(), strings.NewReader(tt.ofxData))

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, transactions, tt.expectedCount)
		})
	}
}

func TestParseBankTransactions(t *testing.T) {
	parser := NewParser(otherCategory)

	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 4)

	tx1 := transactions[0]
	assert.Equal(t, ImportID("1234567890", "2024011501"), tx1.ID)
	assert.Equal(t, "STARBUCKS STORE #1234", tx1.Description)
	assert.True(t, tx1.Amount.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, model.TransactionTypeExpense, tx1.Type)
	assert.Equal(t, "other", tx1.Category.ID)
	assert.Equal(t, 2024, tx1.Date.Year())
	assert.Equal(t, time.January, tx1.Date.Month())
	assert.Equal(t, 15, tx1.Date.Day())

	tx2 := transactions[1]
	assert.Equal(t, "Whole Foods Market", tx2.Description)
	assert.True(t, tx2.Amount.Equal(decimal.NewFromInt(125)))

	payroll := transactions[2]
	assert.Equal(t, model.TransactionTypeIncome, payroll.Type)
	assert.True(t, payroll.Amount.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, "ACME CORP PAYROLL", payroll.Description)
	assert.Equal(t, "January salary", payroll.Note)

	check := transactions[3]
	assert.Equal(t, "CHECK #1234", check.Description)
	assert.Equal(t, "Check #1234", check.Note)
	assert.True(t, check.Amount.Equal(decimal.NewFromInt(500)))

	for _, txn := range transactions {
		assert.False(t, txn.Amount.IsNegative(), "amounts are unsigned")
	}
}

func TestParseCreditCardTransactions(t *testing.T) {
	parser := NewParser(otherCategory)

	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, ImportID("4111111111111111", "CC2024011001"), transactions[0].ID)
	assert.Equal(t, "AMAZON.COM*RT4Y7HG2", transactions[0].Description)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("45.99")))
	assert.Equal(t, "NETFLIX.COM", transactions[1].Description)
	assert.Equal(t, model.TransactionTypeExpense, transactions[1].Type)
}

func TestParseKeepsSubCentAmounts(t *testing.T) {
	ofxData := strings.Replace(sampleCreditCardOFX, "<TRNAMT>-45.99", "<TRNAMT>-1.005", 1)
	ofxData = strings.Replace(ofxData, "<TRNAMT>-15.00", "<TRNAMT>0.0049", 1)

	transactions, err := NewParser(otherCategory).ParseFile(context.Background(), strings.NewReader(ofxData))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("1.005")), "got %s", transactions[0].Amount)
	assert.Equal(t, model.TransactionTypeExpense, transactions[0].Type)
	assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("0.0049")), "got %s", transactions[1].Amount)
	assert.Equal(t, model.TransactionTypeIncome, transactions[1].Type)
}

func TestExtractMerchantName(t *testing.T) {
	parser := NewParser(otherCategory)

	tests := []struct {
		name     string
		input    string
		memo     string
		expected string
	}{
		{name: "remove POS prefix", input: "POS PURCHASE STARBUCKS", expected: "STARBUCKS"},
		{name: "remove DEBIT CARD prefix", input: "DEBIT CARD PURCHASE WHOLE FOODS", expected: "WHOLE FOODS"},
		{name: "keep clean name", input: "NETFLIX.COM", expected: "NETFLIX.COM"},
		{name: "trim whitespace", input: "  AMAZON.COM  ", expected: "AMAZON.COM"},
		{name: "strip leading date", input: "01/15 CORNER DELI", expected: "CORNER DELI"},
		{name: "generic name uses memo", input: "DEBIT", memo: "CITY PARKING", expected: "CITY PARKING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ofxgo.Transaction{
				Name: ofxgo.String(tt.input),
				Memo: ofxgo.String(tt.memo),
			}
			assert.Equal(t, tt.expected, parser.extractMerchantName(tx))
		})
	}
}

func TestImportIDAndNewOnly(t *testing.T) {
	assert.Equal(t, ImportID("acct", "1"), ImportID("acct", "1"))
	assert.NotEqual(t, ImportID("acct", "1"), ImportID("acct", "2"))
	assert.NotEqual(t, ImportID("acct", "1"), ImportID("other", "1"))

	parser := NewParser(otherCategory)
	first, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	again, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	assert.Empty(t, NewOnly(first, again), "re-importing a statement adds nothing")
	assert.Len(t, NewOnly(first[:1], again), 3)
	assert.Len(t, NewOnly(nil, append(again, again...)), 4, "duplicates within one import collapse")
}

func TestGetAccounts(t *testing.T) {
	parser := NewParser(otherCategory)

	accounts, err := parser.GetAccounts(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890"}, accounts)

	accounts, err = parser.GetAccounts(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	assert.Equal(t, []string{"4111111111111111"}, accounts)
}
