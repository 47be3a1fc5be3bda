package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/store"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TRIPCRAFT_PATH", dir)
	t.Setenv("TRIPCRAFT_CONFIG_PATH", t.TempDir())
	t.Setenv("TRIPCRAFT_LOG_LEVEL", "error")
	chdir(t, t.TempDir())
	return dir
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func stored(t *testing.T, dir string) *itinerary.Itinerary {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: dir})
	require.NoError(t, err)
	it, err := p.Load(context.Background())
	require.NoError(t, err)
	return it
}

func TestDayAndActivityCommands(t *testing.T) {
	dir := setup(t)

	require.NoError(t, run(t, "title", "Portugal", "2026"))
	require.NoError(t, run(t, "day", "add", "Lisbon"))
	require.NoError(t, run(t, "day", "add", "Porto"))
	require.NoError(t, run(t, "activity", "add", "1", "Tram", "28", "--time", "09:00"))
	require.NoError(t, run(t, "activity", "add", "2", "Port", "cellar", "--time", "09:00", "--notes", "Gaia"))

	it := stored(t, dir)
	assert.Equal(t, "Portugal 2026", it.Title)
	require.Len(t, it.Days, 2)
	assert.Equal(t, "Tram 28", it.Days[0].Activities[0].Name)

	require.NoError(t, run(t, "activity", "move", "1.1", "2"))
	it = stored(t, dir)
	assert.Empty(t, it.Days[0].Activities)
	require.Len(t, it.Days[1].Activities, 2)
	assert.Equal(t, "09:30", it.Days[1].Activities[1].Time)

	require.NoError(t, run(t, "activity", "edit", "2.1", "--time", "11:00"))
	it = stored(t, dir)
	assert.Equal(t, "11:00", it.Days[1].Activities[0].Time)
	assert.Equal(t, "Gaia", it.Days[1].Activities[0].Notes)

	require.NoError(t, run(t, "activity", "reorder", "2", "2", "1"))
	require.NoError(t, run(t, "day", "reorder", "2", "1"))
	require.NoError(t, run(t, "day", "rename", "1", "Douro"))
	it = stored(t, dir)
	assert.Equal(t, "Douro", it.Days[0].Name)
	assert.Equal(t, "Tram 28", it.Days[0].Activities[0].Name)

	require.NoError(t, run(t, "day", "delete", "2"))
	it = stored(t, dir)
	assert.Len(t, it.Days, 1)
}

func TestTimelineCommands(t *testing.T) {
	dir := setup(t)
	require.NoError(t, run(t, "day", "add", "Sintra"))
	require.NoError(t, run(t, "activity", "add", "1", "Pena", "--time", "09:00"))
	require.NoError(t, run(t, "activity", "add", "1", "Regaleira"))

	require.NoError(t, run(t, "timeline", "drag", "1", "1", "--by", "37"))
	it := stored(t, dir)
	assert.Equal(t, "09:30", it.Days[0].Activities[0].Time)
	assert.Equal(t, "Duration: ~1 hour(s)", it.Days[0].Activities[0].Notes)
	assert.Equal(t, "09:00", it.Days[0].Activities[1].Time)

	require.NoError(t, run(t, "timeline", "resize", "1", "2", "--duration", "3h"))
	it = stored(t, dir)
	assert.Equal(t, "Duration: ~1 hour(s) | Duration: ~3 hour(s)", it.Days[0].Activities[1].Notes)

	require.NoError(t, run(t, "timeline", "show", "1"))
	assert.Error(t, run(t, "timeline", "drag", "1", "9", "--by", "10"))
}

func TestValidationErrors(t *testing.T) {
	setup(t)
	assert.Error(t, run(t, "day", "add", " "))
	assert.Error(t, run(t, "activity", "add", "1", "x", "--time", "9am"))
	assert.Error(t, run(t, "day", "rename", "3", "Nowhere"))
}

func TestJSONErrorsAreReported(t *testing.T) {
	setup(t)
	assert.NoError(t, run(t, "--json", "day", "add", " "))
}

func TestReadCommands(t *testing.T) {
	setup(t)
	require.NoError(t, run(t, "day", "add", "Evora"))
	require.NoError(t, run(t, "show"))
	require.NoError(t, run(t, "show", "--report"))
	require.NoError(t, run(t, "show", "--day", "1"))
	assert.Error(t, run(t, "show", "--day", "4"))
	require.NoError(t, run(t, "day", "list", "--show-id"))
	require.NoError(t, run(t, "info"))
	require.NoError(t, run(t, "export", "--file", t.TempDir()+"/trip.json"))
	assert.Error(t, run(t, "export", "--format", "pdf"))

	out := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, run(t, "export", "--format", "yaml", "--file", out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Evora")
}

func TestSQLiteBackend(t *testing.T) {
	dir := setup(t)
	t.Setenv("TRIPCRAFT_BACKEND", "sqlite")

	require.NoError(t, run(t, "day", "add", "Sintra"))
	require.NoError(t, run(t, "activity", "add", "1", "Pena", "--time", "10:00"))

	p, err := store.Load(store.StaticConfig{Path: dir, Driver: store.BackendSQLite})
	require.NoError(t, err)
	defer p.(io.Closer).Close()
	it, err := p.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, it.Days, 1)
	assert.Equal(t, "Pena", it.Days[0].Activities[0].Name)

	_, err = os.Stat(filepath.Join(dir, store.SQLiteFile))
	assert.NoError(t, err)
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
