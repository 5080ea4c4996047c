package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budget-buzz/internal/model"
)

func TestImportOFX(t *testing.T) {
	kv := setupCLI(t)

	out := mustRun(t, "import", "ofx", "--dry-run", "testdata/card.ofx")
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "NETFLIX.COM")
	assert.Empty(t, storedTransactions(t, kv))

	out = mustRun(t, "import", "ofx", "testdata/*.ofx")
	assert.Contains(t, out, "Imported 2 transactions from 1 files (0 already imported)")

	txns := storedTransactions(t, kv)
	require.Len(t, txns, 2)
	categories := map[string]string{}
	for _, txn := range txns {
		categories[txn.Description] = txn.Category.Name
		assert.Equal(t, model.TransactionTypeExpense, txn.Type)
		assert.False(t, txn.Amount.IsNegative())
	}
	assert.Equal(t, "Shopping", categories["AMAZON.COM*RT4Y7HG2"])
	assert.Equal(t, "Entertainment", categories["NETFLIX.COM"])

	out = mustRun(t, "import", "ofx", "testdata/card.ofx")
	assert.Contains(t, out, "No new transactions (2 already imported)")
	assert.Len(t, storedTransactions(t, kv), 2)
}

func TestImportOFXInteractive(t *testing.T) {
	kv := setupCLI(t)

	out, err := runBuzz(t, "Shopping\n\n", "import", "ofx", "--interactive", "--suggest=false", "--category", "Entertainment", "testdata/card.ofx")
	require.NoError(t, err, out)

	txns := storedTransactions(t, kv)
	require.Len(t, txns, 2)
	byDescription := map[string]string{}
	for _, txn := range txns {
		byDescription[txn.Description] = txn.Category.Name
	}
	assert.Equal(t, "Shopping", byDescription["AMAZON.COM*RT4Y7HG2"])
	assert.Equal(t, "Entertainment", byDescription["NETFLIX.COM"])
}

func TestImportOFXInteractiveStopsWhenInputEnds(t *testing.T) {
	kv := setupCLI(t)

	_, err := runBuzz(t, "Shopping\n", "import", "ofx", "--interactive", "--suggest=false", "testdata/card.ofx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Import interrupted, nothing was saved")
	assert.Empty(t, storedTransactions(t, kv))
}

func TestImportOFXInteractiveCancelledMidPrompt(t *testing.T) {
	kv := setupCLI(t)

	stdin, answers := io.Pipe()
	defer func() { _ = answers.Close() }()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(stdin)
	cmd.SetArgs([]string{"import", "ofx", "--interactive", "--suggest=false", "testdata/card.ofx"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- cmd.ExecuteContext(ctx) }()

	// Categorize the first line, then interrupt while the second is on screen.
	_, err := answers.Write([]byte("Shopping\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Import interrupted, nothing was saved")
	case <-time.After(5 * time.Second):
		t.Fatal("import kept waiting for input after cancellation")
	}
	assert.Empty(t, storedTransactions(t, kv))
}

func TestImportOFXWithoutSuggestions(t *testing.T) {
	kv := setupCLI(t)

	mustRun(t, "import", "ofx", "--suggest=false", "--category", "other", "testdata/card.ofx")

	txns := storedTransactions(t, kv)
	require.Len(t, txns, 2)
	for _, txn := range txns {
		assert.Equal(t, "Other", txn.Category.Name)
	}
}

func TestImportOFXErrors(t *testing.T) {
	kv := setupCLI(t)

	_, err := runBuzz(t, "", "import", "ofx", filepath.Join(t.TempDir(), "missing-*.qfx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No files found")

	_, err = runBuzz(t, "", "import", "ofx", "--category", "Treats", "testdata/card.ofx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Category "Treats" not found`)

	broken := filepath.Join(t.TempDir(), "broken.ofx")
	require.NoError(t, os.WriteFile(broken, []byte("not an ofx file"), 0o600))
	out := mustRun(t, "import", "ofx", broken)
	assert.Contains(t, out, "No new transactions")
	assert.Empty(t, storedTransactions(t, kv))
}
