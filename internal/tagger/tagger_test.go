package tagger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/agent"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/artifact"
)

// fakeConverter records calls and returns a fixed PNG payload.
type fakeConverter struct {
	calls int
	out   []byte
	err   error
}

func (f *fakeConverter) FirstPagePNG(_ []byte) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

// fakeLabeler returns canned labels or a canned error.
type fakeLabeler struct {
	labels []string
	err    error
	got    []byte
}

func (f *fakeLabeler) Labels(_ context.Context, data []byte) ([]string, error) {
	f.got = data
	if f.err != nil {
		return nil, f.err
	}
	return f.labels, nil
}

// countingStore wraps a Store and counts Save calls.
type countingStore struct {
	artifact.Store
	saves int
}

func (c *countingStore) Save(ctx context.Context, sessionID uuid.UUID, key, mimeType string, data []byte) (int, error) {
	c.saves++
	return c.Store.Save(ctx, sessionID, key, mimeType, data)
}

func newToolset(t *testing.T, store artifact.Store, conv *fakeConverter, lab *fakeLabeler) *Toolset {
	t.Helper()
	ts, err := New(store, conv, lab, nil)
	require.NoError(t, err)
	return ts
}

func uploadTurn(mimeType string, data []byte) *agent.CallbackContext {
	return &agent.CallbackContext{
		SessionID: uuid.New(),
		UserContent: &ai.Message{
			Role: ai.RoleUser,
			Content: []*ai.Part{
				ai.NewTextPart("here is my file"),
				agent.NewDataPart(mimeType, data),
			},
		},
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	t.Parallel()

	store := artifact.NewMemory(nil)
	conv := &fakeConverter{}
	lab := &fakeLabeler{}

	_, err := New(nil, conv, lab, nil)
	assert.Error(t, err)
	_, err = New(store, nil, lab, nil)
	assert.Error(t, err)
	_, err = New(store, conv, nil, nil)
	assert.Error(t, err)
	_, err = New(store, conv, lab, nil)
	assert.NoError(t, err)
}

func TestGetUserFile_NoAttachment(t *testing.T) {
	t.Parallel()

	ts := newToolset(t, artifact.NewMemory(nil), &fakeConverter{}, &fakeLabeler{})

	cb := &agent.CallbackContext{
		SessionID:   uuid.New(),
		UserContent: &ai.Message{Role: ai.RoleUser, Content: []*ai.Part{ai.NewTextPart("hello")}},
	}
	assert.Equal(t, "Did not find file data in the user context.", ts.GetUserFile(context.Background(), cb))

	// no user content at all behaves the same
	empty := &agent.CallbackContext{SessionID: uuid.New()}
	assert.Equal(t, "Did not find file data in the user context.", ts.GetUserFile(context.Background(), empty))
}

func TestGetUserFile_RejectsUnsupportedTypeBeforeStore(t *testing.T) {
	t.Parallel()

	store := &countingStore{Store: artifact.NewMemory(nil)}
	conv := &fakeConverter{}
	ts := newToolset(t, store, conv, &fakeLabeler{})

	got := ts.GetUserFile(context.Background(), uploadTurn("text/plain", []byte("just text")))

	assert.Contains(t, got, "Unsupported file type")
	assert.Contains(t, got, "text/plain")
	assert.Zero(t, store.saves, "rejected upload must not reach the store")
	assert.Zero(t, conv.calls, "rejected upload must not reach the converter")
}

func TestGetUserFile_SavesPNGDirectly(t *testing.T) {
	t.Parallel()

	store := artifact.NewMemory(nil)
	conv := &fakeConverter{}
	ts := newToolset(t, store, conv, &fakeLabeler{})

	cb := uploadTurn(artifact.MIMETypePNG, []byte{0x89, 'P', 'N', 'G'})
	got := ts.GetUserFile(context.Background(), cb)

	assert.Contains(t, got, "'user_uploaded_file'")
	assert.Contains(t, got, "version: 1")
	assert.Zero(t, conv.calls, "PNG uploads bypass conversion")

	art, err := store.Load(context.Background(), cb.SessionID, artifact.UserUploadKey)
	require.NoError(t, err)
	assert.Equal(t, artifact.MIMETypePNG, art.MIMEType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, art.Data)
}

func TestGetUserFile_ConvertsPDFBeforeStore(t *testing.T) {
	t.Parallel()

	store := artifact.NewMemory(nil)
	conv := &fakeConverter{out: []byte("png-bytes")}
	ts := newToolset(t, store, conv, &fakeLabeler{})

	cb := uploadTurn(artifact.MIMETypePDF, []byte("%PDF-1.7 ..."))
	got := ts.GetUserFile(context.Background(), cb)

	assert.Contains(t, got, "version: 1")
	assert.Equal(t, 1, conv.calls)

	// the raw PDF must never be stored, only the converted PNG
	art, err := store.Load(context.Background(), cb.SessionID, artifact.UserUploadKey)
	require.NoError(t, err)
	assert.Equal(t, artifact.MIMETypePNG, art.MIMEType)
	assert.Equal(t, []byte("png-bytes"), art.Data)
}

func TestGetUserFile_ConversionFailure(t *testing.T) {
	t.Parallel()

	store := &countingStore{Store: artifact.NewMemory(nil)}
	conv := &fakeConverter{err: errors.New("mupdf: cannot open document")}
	ts := newToolset(t, store, conv, &fakeLabeler{})

	got := ts.GetUserFile(context.Background(), uploadTurn(artifact.MIMETypePDF, []byte("broken")))

	assert.Contains(t, got, "Error converting PDF to PNG")
	assert.Contains(t, got, "mupdf: cannot open document")
	assert.Zero(t, store.saves)
}

func TestGetUserFile_VersionsIncrease(t *testing.T) {
	t.Parallel()

	store := artifact.NewMemory(nil)
	ts := newToolset(t, store, &fakeConverter{}, &fakeLabeler{})

	cb := uploadTurn(artifact.MIMETypePNG, []byte("one"))
	first := ts.GetUserFile(context.Background(), cb)
	assert.Contains(t, first, "version: 1")

	cb.UserContent.Content[1] = agent.NewDataPart(artifact.MIMETypePNG, []byte("two"))
	second := ts.GetUserFile(context.Background(), cb)
	assert.Contains(t, second, "version: 2")

	// latest load sees the second upload
	art, err := store.Load(context.Background(), cb.SessionID, artifact.UserUploadKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), art.Data)
}

func TestGetUserFile_LastAttachmentWins(t *testing.T) {
	t.Parallel()

	store := artifact.NewMemory(nil)
	ts := newToolset(t, store, &fakeConverter{}, &fakeLabeler{})

	cb := &agent.CallbackContext{
		SessionID: uuid.New(),
		UserContent: &ai.Message{
			Role: ai.RoleUser,
			Content: []*ai.Part{
				agent.NewDataPart(artifact.MIMETypePNG, []byte("older")),
				agent.NewDataPart(artifact.MIMETypePNG, []byte("newer")),
			},
		},
	}
	ts.GetUserFile(context.Background(), cb)

	art, err := store.Load(context.Background(), cb.SessionID, artifact.UserUploadKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("newer"), art.Data)
}

func TestImageEntityExtraction(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, store artifact.Store) *agent.CallbackContext {
		t.Helper()
		cb := &agent.CallbackContext{SessionID: uuid.New()}
		_, err := store.Save(context.Background(), cb.SessionID, artifact.UserUploadKey, artifact.MIMETypePNG, []byte("image-bytes"))
		require.NoError(t, err)
		return cb
	}

	t.Run("labels joined in service order", func(t *testing.T) {
		t.Parallel()
		store := artifact.NewMemory(nil)
		lab := &fakeLabeler{labels: []string{"Skyline", "Tower", "Night"}}
		ts := newToolset(t, store, &fakeConverter{}, lab)
		cb := seed(t, store)

		got := ts.ImageEntityExtraction(context.Background(), cb, artifact.UserUploadKey)
		assert.Equal(t, "Extracted labels: Skyline, Tower, Night", got)
		assert.Equal(t, []byte("image-bytes"), lab.got, "labeler receives the stored bytes")
	})

	t.Run("zero labels", func(t *testing.T) {
		t.Parallel()
		store := artifact.NewMemory(nil)
		ts := newToolset(t, store, &fakeConverter{}, &fakeLabeler{})
		cb := seed(t, store)

		got := ts.ImageEntityExtraction(context.Background(), cb, artifact.UserUploadKey)
		assert.Equal(t, "No labels were extracted from the image.", got)
	})

	t.Run("missing artifact names the key", func(t *testing.T) {
		t.Parallel()
		ts := newToolset(t, artifact.NewMemory(nil), &fakeConverter{}, &fakeLabeler{})
		cb := &agent.CallbackContext{SessionID: uuid.New()}

		got := ts.ImageEntityExtraction(context.Background(), cb, "missing_key")
		assert.Contains(t, got, "'missing_key'")
		assert.Contains(t, got, "not found")
	})

	t.Run("service failure becomes a string", func(t *testing.T) {
		t.Parallel()
		store := artifact.NewMemory(nil)
		lab := &fakeLabeler{err: fmt.Errorf("vision: %w", errors.New("deadline exceeded"))}
		ts := newToolset(t, store, &fakeConverter{}, lab)
		cb := seed(t, store)

		got := ts.ImageEntityExtraction(context.Background(), cb, artifact.UserUploadKey)
		assert.True(t, strings.HasPrefix(got, "An error occurred during label extraction for artifact 'user_uploaded_file'"), got)
		assert.Contains(t, got, "deadline exceeded")
	})
}

func TestDefinition(t *testing.T) {
	t.Parallel()

	ts := newToolset(t, artifact.NewMemory(nil), &fakeConverter{}, &fakeLabeler{})
	def := ts.Definition("vertexai/gemini-2.5-flash")

	assert.Equal(t, "image_analysis_agent", def.Name)
	assert.Equal(t, "vertexai/gemini-2.5-flash", def.Model)
	assert.Equal(t, []string{ToolGetUserFile, ToolImageEntityExtraction}, def.Tools)
	assert.Contains(t, def.Instruction, "get_user_file")
	assert.Contains(t, def.Instruction, "image_entity_extraction")
}
