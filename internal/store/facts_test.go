// ABOUTME: Tests for the file-backed fact store
// ABOUTME: Covers normalization, duplicate adds, cap eviction, and lenient reads

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactStore(t *testing.T) *FactStore {
	t.Helper()
	return NewFactStore(filepath.Join(t.TempDir(), "persona_facts.json"))
}

func TestFactStore_Snapshot_MissingFile(t *testing.T) {
	s := newTestFactStore(t)

	doc := s.Snapshot(context.Background())
	assert.Equal(t, 1, doc.Version)
	assert.Empty(t, doc.UpdatedAt)
	assert.Empty(t, doc.Facts)
	assert.NotNil(t, doc.Facts)
}

func TestFactStore_Snapshot_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona_facts.json")
	require.NoError(t, os.WriteFile(path, []byte("][garbage"), 0o644))

	s := NewFactStore(path)
	doc := s.Snapshot(context.Background())
	assert.Equal(t, 1, doc.Version)
	assert.Empty(t, doc.Facts)
}

func TestFactStore_Replace_Normalizes(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	doc, err := s.Replace(ctx, []string{"  likes chess  ", "", "   ", "likes chess", "from Toronto"})
	require.NoError(t, err)

	assert.Equal(t, []string{"likes chess", "from Toronto"}, doc.Facts)
	assert.NotEmpty(t, doc.UpdatedAt)
}

func TestFactStore_Add_PrependsNewest(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "first")
	require.NoError(t, err)
	doc, err := s.Add(ctx, "second")
	require.NoError(t, err)

	assert.Equal(t, []string{"second", "first"}, doc.Facts)
}

func TestFactStore_Add_DuplicateKeepsOrder(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	_, err := s.Replace(ctx, []string{"b", "a"})
	require.NoError(t, err)

	doc, err := s.Add(ctx, "  a  ")
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, doc.Facts, "duplicate add should leave order unchanged")
}

func TestFactStore_Add_EmptyIsNoOp(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	before, err := s.Replace(ctx, []string{"a"})
	require.NoError(t, err)

	after, err := s.Add(ctx, "   ")
	require.NoError(t, err)
	assert.Equal(t, before.Facts, after.Facts)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt, "no-op must not restamp the document")
}

func TestFactStore_Add_AtCap_EvictsTail(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	full := make([]string, MaxFacts)
	for i := range full {
		full[i] = fmt.Sprintf("fact-%03d", i)
	}
	_, err := s.Replace(ctx, full)
	require.NoError(t, err)

	doc, err := s.Add(ctx, "newest")
	require.NoError(t, err)

	require.Len(t, doc.Facts, MaxFacts)
	assert.Equal(t, "newest", doc.Facts[0])
	assert.Equal(t, "fact-098", doc.Facts[MaxFacts-1])
	assert.NotContains(t, doc.Facts, "fact-099", "oldest-positioned entry should be evicted")
}

func TestFactStore_Remove(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	_, err := s.Replace(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)

	doc, err := s.Remove(ctx, " b ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, doc.Facts)
}

func TestFactStore_Remove_Absent(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	_, err := s.Replace(ctx, []string{"a"})
	require.NoError(t, err)

	doc, err := s.Remove(ctx, "zzz")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, doc.Facts)
}

func TestFactStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persona_facts.json")
	ctx := context.Background()

	s1 := NewFactStore(path)
	_, err := s1.Add(ctx, "durable")
	require.NoError(t, err)

	s2 := NewFactStore(path)
	doc := s2.Snapshot(ctx)
	assert.Equal(t, []string{"durable"}, doc.Facts)
}

func TestFactStore_MutationInvariants(t *testing.T) {
	s := newTestFactStore(t)
	ctx := context.Background()

	input := make([]string, 0, 150)
	for i := 0; i < 150; i++ {
		input = append(input, fmt.Sprintf("  fact-%d  ", i%120))
	}
	doc, err := s.Replace(ctx, input)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(doc.Facts), MaxFacts)
	seen := make(map[string]bool)
	for _, f := range doc.Facts {
		assert.NotEmpty(t, f)
		assert.False(t, seen[f], "duplicate fact %q", f)
		seen[f] = true
	}
}
