package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

func sample() *itinerary.Itinerary {
	return &itinerary.Itinerary{
		Title: "Alps",
		Days: []itinerary.Day{
			{ID: "day-1", Name: "Zermatt", Activities: []itinerary.Activity{
				{ID: "a1", Name: "Gondola", Time: "08:30", Notes: "early"},
				{ID: "a2", Name: "Fondue"},
			}},
		},
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	p, err := Load(StaticConfig{Path: t.TempDir()})
	require.NoError(t, err)

	_, err = p.Load(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, p.Save(ctx, sample()))
	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	next := sample().WithTitle("Dolomites")
	require.NoError(t, p.Save(ctx, next))
	got, err = p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dolomites", got.Title)
}

func TestPersistenceBlobLayout(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	require.NoError(t, p.Save(context.Background(), sample()))

	_, err = os.Stat(filepath.Join(base, "tripcraft", "itinerary", "v2"))
	assert.NoError(t, err)
}

func TestPersistenceCorrupt(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "tripcraft", "itinerary")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v2"), []byte("{nope"), 0o644))

	p, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	_, err = p.Load(context.Background())
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestLoadRequiresPath(t *testing.T) {
	_, err := Load(StaticConfig{})
	assert.Error(t, err)
}

func TestKeyTransforms(t *testing.T) {
	pk := keyToPathTransform(Key)
	assert.Equal(t, []string{"tripcraft", "itinerary"}, pk.Path)
	assert.Equal(t, "v2", pk.FileName)
	assert.Equal(t, Key, pathToKeyTransform(pk))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(nil)
	_, err := m.Load(ctx)
	assert.True(t, errors.Is(err, ErrNotFound))

	in := sample()
	require.NoError(t, m.Save(ctx, in))
	in.Days[0].Activities[0].Name = "mutated"

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Gondola", got.Days[0].Activities[0].Name)
	assert.Equal(t, 1, m.Saves())
}

func TestMemoryWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMemory(sample())
	ch, err := m.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, m.Save(context.Background(), sample()))
	ev := <-ch
	assert.Equal(t, EventItineraryChanged, ev.Type)

	cancel()
	for range ch {
	}
}
