package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldopshq/fieldops/internal/config"
	"github.com/fieldopshq/fieldops/internal/logging"
)

func testDeps(t *testing.T) *deps {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Log.Enabled = false
	d := newDeps(cfg, logging.Noop())
	t.Cleanup(d.Close)
	return d
}

func execute(t *testing.T, d *deps, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(d)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, testDeps(t), "version")

	require.NoError(t, err)
	assert.Contains(t, out, "fieldops v")
}

func TestRequestsAddAndList(t *testing.T) {
	d := testDeps(t)

	_, err := execute(t, d, "requests", "add", "--client", "Amy Santos", "--title", "Spring cleanup")
	require.NoError(t, err)
	_, err = execute(t, d, "requests", "add", "--client", "Bob Lee", "--title", "Gutter repair")
	require.NoError(t, err)

	out, err := execute(t, d, "requests", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Spring cleanup")
	assert.Contains(t, out, "Gutter repair")
	assert.Contains(t, out, "new:2")
}

func TestRequestsListStatusFilter(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "requests", "add", "--client", "Amy", "--title", "Spring cleanup")
	require.NoError(t, err)
	_, err = execute(t, d, "requests", "set-status", "1", "declined")
	require.NoError(t, err)

	out, err := execute(t, d, "requests", "list", "--status", "new")
	require.NoError(t, err)
	assert.NotContains(t, out, "Spring cleanup")
	assert.Contains(t, out, "declined:1")
}

func TestRequestsListSearch(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "requests", "add", "--client", "Amy", "--title", "Spring cleanup")
	require.NoError(t, err)
	_, err = execute(t, d, "requests", "add", "--client", "Bob", "--title", "Gutter repair")
	require.NoError(t, err)

	out, err := execute(t, d, "requests", "list", "--search", "GUTTER")
	require.NoError(t, err)
	assert.Contains(t, out, "Gutter repair")
	assert.NotContains(t, out, "Spring cleanup")
}

func TestRequestsSetStatusRejectsUnknown(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "requests", "add", "--client", "Amy", "--title", "Spring cleanup")
	require.NoError(t, err)

	_, err = execute(t, d, "requests", "set-status", "1", "bogus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request status")
}

func TestParseIDRejectsGarbage(t *testing.T) {
	d := testDeps(t)

	_, err := execute(t, d, "requests", "set-status", "abc", "new")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestTasksCompleteFlow(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "tasks", "add", "--title", "Mow the lawn", "--priority", "high")
	require.NoError(t, err)

	out, err := execute(t, d, "tasks", "complete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "task 1 completed")

	out, err = execute(t, d, "tasks", "list", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "Mow the lawn")
}

func TestOfflineQueueThenSync(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "requests", "add", "--client", "Amy", "--title", "Spring cleanup")
	require.NoError(t, err)

	d.cfg.Offline = true
	out, err := execute(t, d, "requests", "set-status", "1", "accepted")
	require.NoError(t, err)
	assert.Contains(t, out, "queued")

	// The change is not visible until a sync runs.
	out, err = execute(t, d, "requests", "list", "--status", "accepted")
	require.NoError(t, err)
	assert.Contains(t, out, "No requests found")

	d.cfg.Offline = false
	out, err = execute(t, d, "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "applied 1 queued change(s)")

	out, err = execute(t, d, "requests", "list", "--status", "accepted")
	require.NoError(t, err)
	assert.Contains(t, out, "Spring cleanup")
}

func TestClientsShow(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "clients", "add", "--name", "Amy Santos", "--email", "amy@example.com")
	require.NoError(t, err)

	out, err := execute(t, d, "clients", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Amy Santos")
	assert.Contains(t, out, "amy@example.com")

	_, err = execute(t, d, "clients", "show", "99")
	require.Error(t, err)
}

func TestSyncWithEmptyOutbox(t *testing.T) {
	out, err := execute(t, testDeps(t), "sync")

	require.NoError(t, err)
	assert.Contains(t, out, "nothing to sync")
}

func TestInvoicesTableFormat(t *testing.T) {
	d := testDeps(t)
	_, err := execute(t, d, "invoices", "add", "--client", "Amy", "--number", "INV-0001", "--total-cents", "123456")
	require.NoError(t, err)

	out, err := execute(t, d, "invoices", "list", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "NUMBER")
	assert.Contains(t, out, "$1234.56")
}

func TestNoticesKindFilterUsesKinds(t *testing.T) {
	d := testDeps(t)

	_, err := execute(t, d, "notices", "list", "--status", "payment")
	require.NoError(t, err)

	_, err = execute(t, d, "notices", "list", "--status", "bogus")
	require.Error(t, err)
}
