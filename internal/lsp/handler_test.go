package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"minipy/internal/lsp"
)

const docURI = "file:///tmp/example.py"

// recorder captures notifications sent through a glsp.Context.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "Expected a diagnostics notification")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.MinipyHandler, ctx *glsp.Context, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: docURI, LanguageID: "minipy", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewMinipyHandler()

	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	opts, ok := init.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, opts.Legend.TokenTypes)
	assert.NotNil(t, init.Capabilities.CompletionProvider)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	h := lsp.NewMinipyHandler()
	rec := &recorder{}

	open(t, h, rec.context(), "x = 1 @\ndef f(a):\n    a\n")

	params := rec.last(t)
	assert.Equal(t, docURI, params.URI)
	require.Len(t, params.Diagnostics, 2)

	scan := params.Diagnostics[0]
	assert.Equal(t, "minipy-scanner", *scan.Source)
	assert.Equal(t, "E0101", scan.Code.Value)
	assert.Equal(t, protocol.Position{Line: 0, Character: 6}, scan.Range.Start)
	assert.Equal(t, protocol.Position{Line: 0, Character: 7}, scan.Range.End)

	syntax := params.Diagnostics[1]
	assert.Equal(t, "minipy-parser", *syntax.Source)
	assert.Equal(t, "E0102", syntax.Code.Value)
	assert.Contains(t, syntax.Message, "unexpected token ')' (RPAREN) at line 2")
	assert.Contains(t, syntax.Message, "exactly two parameters")
	assert.Equal(t, protocol.Position{Line: 1, Character: 7}, syntax.Range.Start)
}

func TestDidChangeAndClose(t *testing.T) {
	h := lsp.NewMinipyHandler()
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "x = (1\n")
	require.Len(t, rec.last(t).Diagnostics, 1)
	assert.Equal(t, "E0102", rec.last(t).Diagnostics[0].Code.Value)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "x = (1)\n"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)

	// An incremental edit replacing "1" with "2 +".
	err = h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			Version:                3,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 5},
					End:   protocol.Position{Line: 0, Character: 6},
				},
				Text: "2 +",
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, rec.last(t).Diagnostics, 1)
	assert.Contains(t, rec.last(t).Diagnostics[0].Message, "unexpected token ')' (RPAREN)")

	err = h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})
	require.NoError(t, err)
	assert.Empty(t, rec.last(t).Diagnostics)
}

func TestCompletion(t *testing.T) {
	h := lsp.NewMinipyHandler()
	open(t, h, &glsp.Context{}, "def add(a, b):\n    total = a + b\ncount = 0\n")

	result, err := h.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
		},
	})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok)

	labels := map[string]protocol.CompletionItem{}
	for _, item := range list.Items {
		labels[item.Label] = item
	}
	for _, want := range []string{"def", "print", "not", "add", "total", "count"} {
		assert.Contains(t, labels, want)
	}
	assert.Equal(t, protocol.CompletionItemKindFunction, *labels["print"].Kind)
	assert.Equal(t, protocol.CompletionItemKindKeyword, *labels["def"].Kind)
	require.NotNil(t, labels["add"].Detail)
	assert.Equal(t, "def add(a, b)", *labels["add"].Detail)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewMinipyHandler()
	open(t, h, &glsp.Context{}, "def add(a, b):\n    print(a + 1, 'x')\n")

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 9)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 3, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 9, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 1, 12, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[4], 2, 5, 5, "function", []string{"defaultLibrary"})
	assertToken(t, &decoded[5], 2, 11, 1, "variable", nil)
	assertToken(t, &decoded[6], 2, 13, 1, "operator", nil)
	assertToken(t, &decoded[7], 2, 15, 1, "number", nil)
	assertToken(t, &decoded[8], 2, 18, 3, "string", nil)
}

func TestSemanticTokensFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))
	uri := "file://" + filepath.ToSlash(path)

	h := lsp.NewMinipyHandler()
	rec := &recorder{}
	tokens, err := h.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assertToken(t, &decoded[0], 1, 1, 1, "variable", nil)
	assert.Empty(t, rec.last(t).Diagnostics)

	_, err = h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.py"},
	})
	assert.Error(t, err)
}

type decodedToken struct {
	Line      uint32 // 1-based
	Column    uint32 // 1-based
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(data []uint32) ([]decodedToken, error) {
	if len(data)%5 != 0 {
		return nil, fmt.Errorf("token data length %d is not a multiple of 5", len(data))
	}

	var out []decodedToken
	var line, start uint32
	for i := 0; i < len(data); i += 5 {
		deltaLine, deltaStart := data[i], data[i+1]
		if deltaLine == 0 {
			start += deltaStart
		} else {
			line += deltaLine
			start = deltaStart
		}

		var mods []string
		for bit, name := range lsp.SemanticTokenModifiers {
			if data[i+4]&(1<<uint(bit)) != 0 {
				mods = append(mods, name)
			}
		}

		out = append(out, decodedToken{
			Line:      line + 1,
			Column:    start + 1,
			Length:    data[i+2],
			Type:      lsp.SemanticTokenTypes[data[i+3]],
			Modifiers: mods,
		})
	}
	return out, nil
}

func assertToken(t *testing.T, tok *decodedToken, line, column, length uint32, tokenType string, modifiers []string) {
	t.Helper()
	assert.Equal(t, line, tok.Line, "line")
	assert.Equal(t, column, tok.Column, "column")
	assert.Equal(t, length, tok.Length, "length")
	assert.Equal(t, tokenType, tok.Type, "type")
	assert.Equal(t, modifiers, tok.Modifiers, "modifiers")
}
