// Package export assembles downloadable statements from fetched account
// data. Files are spooled through an afero filesystem: the OS filesystem in
// production, an in-memory one in tests.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/horizonbank/horizon/internal/domain"
	"github.com/spf13/afero"
)

var csvHeader = []string{"id", "name", "amount", "date", "type", "channel", "category"}

// Exporter writes transaction statements as CSV files.
type Exporter struct {
	fs  afero.Fs
	dir string
}

// NewExporter creates an exporter spooling into dir on the given filesystem.
func NewExporter(fs afero.Fs, dir string) *Exporter {
	return &Exporter{fs: fs, dir: dir}
}

// TransactionsCSV writes the full transaction list for an account to a
// spool file and returns its path along with a download filename derived
// from the account mask.
func (e *Exporter) TransactionsCSV(account domain.Account, transactions []domain.Transaction) (path, filename string, err error) {
	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return "", "", err
	}

	path = filepath.Join(e.dir, uuid.NewString()+".csv")
	f, err := e.fs.Create(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", "", err
	}
	for _, t := range transactions {
		record := []string{
			t.ID,
			t.Name,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Date.Format("2006-01-02"),
			t.Type,
			t.PaymentChannel,
			t.Category,
		}
		if err := w.Write(record); err != nil {
			return "", "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", "", err
	}

	filename = fmt.Sprintf("transactions-%s.csv", account.Mask)
	return path, filename, nil
}

// Open returns a reader over a previously written spool file.
func (e *Exporter) Open(path string) (io.ReadCloser, error) {
	return e.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Remove deletes a spool file once it has been served.
func (e *Exporter) Remove(path string) error {
	return e.fs.Remove(path)
}
