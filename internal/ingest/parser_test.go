package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_BasicStatement(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"2024-01-15,Client payment,100.00\n" +
		"2024-01-16,Office rent,-40.00\n" +
		"not-a-date,Mystery,10.00\n"

	rows, skipped, err := ReadAll(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, skipped)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "Client payment", rows[0].Description)
	assert.Equal(t, int64(10000), rows[0].AmountCents)

	assert.Equal(t, "Office rent", rows[1].Description)
	assert.Equal(t, int64(-4000), rows[1].AmountCents)
}

func TestParser_HeaderAliases(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"canonical", "Date,Description,Amount"},
		{"bank export", "Transaction Date,Memo,Value"},
		{"underscores", "transaction_date,Narrative,Transaction Amount"},
		{"mixed case", "POSTED DATE,Payee,AMOUNT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			csv := tc.header + "\n2024-03-01,Something,12.34\n"
			rows, skipped, err := ReadAll(strings.NewReader(csv))
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, 0, skipped)
			assert.Equal(t, int64(1234), rows[0].AmountCents)
			assert.Equal(t, "Something", rows[0].Description)
		})
	}
}

func TestParser_MissingDescriptionColumn(t *testing.T) {
	csv := "Date,Amount\n2024-03-01,5.00\n"
	rows, _, err := ReadAll(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Description)
}

func TestParser_MissingRequiredColumns(t *testing.T) {
	var parseErr *ParseError

	_, _, err := ReadAll(strings.NewReader("Description,Amount\nfoo,1.00\n"))
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "date")

	_, _, err = ReadAll(strings.NewReader("Date,Description\n2024-01-01,foo\n"))
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "amount")

	_, _, err = ReadAll(strings.NewReader(""))
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Reason, "empty")
}

func TestParser_SkipsBadRowsNotStatement(t *testing.T) {
	csv := "Date,Description,Amount\n" +
		"2024-01-01,ok,1.00\n" +
		"garbage,bad date,2.00\n" +
		"2024-01-02,bad amount,two dollars\n" +
		"2024-01-03\n" + // short record
		"2024-01-04,ok again,3.00\n"

	rows, skipped, err := ReadAll(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 3, skipped)
}

func TestParser_DateLayouts(t *testing.T) {
	for _, raw := range []string{"2024-02-03", "2024/02/03", "02/03/2024", "03 Feb 2024", `"Feb 3, 2024"`} {
		rows, _, err := ReadAll(strings.NewReader("Date,Amount\n" + raw + ",1.00\n"))
		require.NoError(t, err, raw)
		require.Len(t, rows, 1, raw)
		assert.Equal(t, time.February, rows[0].Date.Month(), raw)
		assert.Equal(t, 3, rows[0].Date.Day(), raw)
	}
}

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"100.00", 10000, true},
		{"-40.00", -4000, true},
		{"0", 0, true},
		{"1,234.56", 123456, true},
		{"$99.99", 9999, true},
		{"€10", 1000, true},
		{"(25.00)", -2500, true},
		{"12.345", 1234, true}, // bankers rounding, half to even
		{"12.355", 1236, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseAmountCents(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.raw)
		}
	}
}
