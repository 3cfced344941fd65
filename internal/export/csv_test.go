package export

import (
	"encoding/csv"
	"testing"
	"time"

	"github.com/horizonbank/horizon/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsCSVWritesHeaderAndRows(t *testing.T) {
	exporter := NewExporter(afero.NewMemMapFs(), "/spool")

	account := domain.Account{Name: "Plaid Checking", Mask: "0000"}
	transactions := []domain.Transaction{
		{
			ID:             "txn_1",
			Name:           "Uber",
			Amount:         5.4,
			Date:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Type:           "debit",
			PaymentChannel: "online",
			Category:       "Travel",
		},
		{ID: "txn_2", Name: "Payroll", Amount: 2500, Type: "credit"},
	}

	path, filename, err := exporter.TransactionsCSV(account, transactions)
	require.NoError(t, err)
	assert.Equal(t, "transactions-0000.csv", filename)

	f, err := exporter.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "amount", "date", "type", "channel", "category"}, records[0])
	assert.Equal(t, []string{"txn_1", "Uber", "5.40", "2024-03-01", "debit", "online", "Travel"}, records[1])
	assert.Equal(t, "2500.00", records[2][2])
}

func TestTransactionsCSVHandlesEmptyLedger(t *testing.T) {
	exporter := NewExporter(afero.NewMemMapFs(), "/spool")

	path, _, err := exporter.TransactionsCSV(domain.Account{Mask: "1111"}, nil)
	require.NoError(t, err)

	f, err := exporter.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "only the header row")
}

func TestRemoveDeletesSpoolFile(t *testing.T) {
	exporter := NewExporter(afero.NewMemMapFs(), "/spool")

	path, _, err := exporter.TransactionsCSV(domain.Account{Mask: "2222"}, nil)
	require.NoError(t, err)
	require.NoError(t, exporter.Remove(path))

	_, err = exporter.Open(path)
	assert.Error(t, err, "spool file should be gone")
}
