package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"invtrack/internal/app/client"
	"invtrack/internal/app/client/config"
	"invtrack/internal/domain/inventory"
	"invtrack/internal/utils/logger"
)

// stubBackend отдает фиксированный отчет и принимает любой вход
type stubBackend struct {
	report inventory.Report
}

func (b *stubBackend) Report(context.Context) (inventory.Report, error) { return b.report, nil }

func (b *stubBackend) Login(_ context.Context, username, _ string) (string, error) {
	return username, nil
}

func (b *stubBackend) Create(context.Context, client.Kind, any) error      { return nil }
func (b *stubBackend) Update(context.Context, client.Kind, int, any) error { return nil }
func (b *stubBackend) Delete(context.Context, client.Kind, int) error      { return nil }

func (b *stubBackend) ImportExcel(context.Context, string, io.Reader) (string, error) {
	return "Imported 0 items", nil
}

func (b *stubBackend) ExportExcel(context.Context, string) (client.File, error) {
	return client.File{}, nil
}

func (b *stubBackend) ExportQRPDF(context.Context, []int) (client.File, error) {
	return client.File{}, nil
}

func (b *stubBackend) Backup(context.Context) (client.File, error) {
	return client.File{Name: "backup.json", Data: []byte("{}")}, nil
}

func (b *stubBackend) HealthCheck(context.Context) error { return nil }

func useTestApp(t *testing.T) *client.App {
	t.Helper()

	backend := &stubBackend{report: inventory.Report{
		Rooms: []inventory.Room{{
			ID: 1, Name: "101", RoomName: "101",
			Devices: []inventory.Device{
				{ID: 1, Name: "Laptop", Status: inventory.StatusWorking, RoomID: 1},
				{ID: 2, Name: "Printer", Status: inventory.StatusBroken, RoomID: 1},
				{ID: 3, Name: "Switch", Status: inventory.StatusInStock, RoomID: 1},
			},
		}},
	}}

	cfg = &config.Config{AdminSecret: "admin123", PublicURL: "http://h", PageSize: 10, Lang: "ru"}
	log = logger.NewText(io.Discard, slog.LevelError)
	app = client.NewWithBackend(cfg, log, backend, client.NewMemoryStorage())

	t.Cleanup(func() {
		resetFlags(rootCmd)
		app, cfg, log = nil, nil, nil
	})
	return app
}

func TestOpenThenLoginShowsDevices(t *testing.T) {
	a := useTestApp(t)
	var out bytes.Buffer

	require.NoError(t, runShell(rootCmd, strings.NewReader("open http://h/?qr_id=3\n"), &out))
	assert.NotContains(t, out.String(), "Ошибка")
	assert.False(t, a.View().CardMode)

	require.NoError(t, a.Login(context.Background(), "user", "user123"))
	require.NoError(t, runShell(rootCmd, strings.NewReader("devices list --status all\n"), &out))
	assert.NotContains(t, out.String(), "Ошибка")

	p := a.View()
	assert.False(t, p.CardMode)
	assert.Equal(t, client.PageDashboard, p.Nav)
	assert.Equal(t, 3, p.Page.Total)
	assert.Len(t, p.Page.Items, 3)
	assert.Equal(t, 3, p.Stats.Total)
}

func TestListRequiresLogin(t *testing.T) {
	useTestApp(t)
	var out bytes.Buffer

	require.NoError(t, runShell(rootCmd, strings.NewReader("devices list\n"), &out))
	assert.Contains(t, out.String(), client.ErrNotAuthenticated.Error())
}

func TestReferencesNavigation(t *testing.T) {
	a := useTestApp(t)
	var out bytes.Buffer

	require.NoError(t, a.Login(context.Background(), "user", "user123"))
	require.NoError(t, runShell(rootCmd, strings.NewReader("rooms list --secret admin123\n"), &out))
	assert.NotContains(t, out.String(), "Ошибка")
	assert.Equal(t, client.PageReferences, a.View().Nav)
	assert.True(t, a.View().AdminControls)

	require.NoError(t, runShell(rootCmd, strings.NewReader("auth demote\n"), &out))
	assert.Equal(t, client.PageDashboard, a.View().Nav)

	require.NoError(t, runShell(rootCmd, strings.NewReader("rooms list --secret wrong\n"), &out))
	assert.Contains(t, out.String(), "Ошибка")
	assert.Equal(t, client.PageDashboard, a.View().Nav)
}
