package lspadapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madskristensen/toon/pkg/toon"
)

func TestNewServer_InitializesCacheAndDocs(t *testing.T) {
	s := NewServer(toon.DefaultOptions())
	require.NotNil(t, s.cache)
	require.NotNil(t, s.docs)
	assert.Equal(t, toon.DefaultOptions(), s.opts)
}

func TestServer_SetDocStoresText(t *testing.T) {
	s := NewServer(toon.DefaultOptions())
	s.setDoc("file:///a.toon", "name: Alice\n")

	s.mu.Lock()
	text := s.docs["file:///a.toon"]
	s.mu.Unlock()

	assert.Equal(t, "name: Alice\n", text)
}

func TestServer_PublishDiagnosticsParsesThroughCache(t *testing.T) {
	s := NewServer(toon.DefaultOptions())
	s.setDoc("file:///a.toon", "name: Alice\n")

	// No client attached (headless test); publishDiagnostics should
	// still parse via the cache without panicking.
	s.publishDiagnostics(context.Background(), "file:///a.toon")

	assert.Equal(t, 1, s.cache.Len())
}

func TestServer_ForgettingDocAndInvalidatingSourceEmptiesCache(t *testing.T) {
	s := NewServer(toon.DefaultOptions())
	uri := "file:///a.toon"
	s.setDoc(uri, "name: Alice\n")
	s.publishDiagnostics(context.Background(), uri)
	require.Equal(t, 1, s.cache.Len())

	s.mu.Lock()
	source := s.docs[uri]
	delete(s.docs, uri)
	s.mu.Unlock()
	s.cache.Invalidate(source)

	assert.Equal(t, 0, s.cache.Len())
	s.mu.Lock()
	_, present := s.docs[uri]
	s.mu.Unlock()
	assert.False(t, present)
}
