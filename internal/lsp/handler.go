package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"minipy/internal/ast"
	"minipy/internal/parser"
	"minipy/token"
)

var log = commonlog.GetLogger("minipy.lsp")

// SemanticTokenTypes is the legend advertised to clients. Order matters:
// tokens refer to entries by index.
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"keyword",
	"number",
	"string",
	"operator",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"defaultLibrary",
}

// document is the last known state of an open file
type document struct {
	text    string
	program *ast.Program // nil while the text does not parse
}

// MinipyHandler implements the LSP server handlers
type MinipyHandler struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
}

func NewMinipyHandler() *MinipyHandler {
	return &MinipyHandler{
		docs: make(map[protocol.DocumentUri]*document),
	}
}

// Initialize advertises full-text sync, completion and semantic tokens
func (h *MinipyHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

func (h *MinipyHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (h *MinipyHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	return nil
}

func (h *MinipyHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened text and publishes its diagnostics
func (h *MinipyHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("opened %s", uri)

	diagnostics := h.update(uri, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, uri, diagnostics)
	return nil
}

// TextDocumentDidChange applies the edits in order and re-parses
func (h *MinipyHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s (version %d)", uri, params.TextDocument.Version)

	text, _ := h.text(uri)
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
			} else {
				text = applyEdit(text, *c.Range, c.Text)
			}
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	diagnostics := h.update(uri, text)
	sendDiagnosticNotification(ctx, uri, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *MinipyHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("closed %s", uri)

	h.mu.Lock()
	delete(h.docs, uri)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentCompletion offers the reserved words and the functions and
// variables defined in the document
func (h *MinipyHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := []protocol.CompletionItem{}

	for _, kw := range token.Keywords() {
		kind := protocol.CompletionItemKindKeyword
		if token.LookupIdent(kw).IsBuiltin() {
			kind = protocol.CompletionItemKindFunction
		}
		items = append(items, protocol.CompletionItem{
			Label: kw,
			Kind:  &kind,
		})
	}

	h.mu.RLock()
	doc, ok := h.docs[params.TextDocument.URI]
	h.mu.RUnlock()

	if ok && doc.program != nil {
		items = append(items, definedNames(doc.program)...)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull classifies every token of the document
func (h *MinipyHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	uri := params.TextDocument.URI
	log.Debugf("semantic tokens for %s", uri)

	text, ok := h.text(uri)
	if !ok {
		// Not opened by the client; fall back to the file on disk.
		path, err := uriToPath(uri)
		if err != nil {
			return nil, err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(content)
		sendDiagnosticNotification(ctx, uri, h.update(uri, text))
	}

	tokens, _ := parser.Tokenize(text)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(tokens)),
	}, nil
}

// update stores text for uri and returns its diagnostics
func (h *MinipyHandler) update(uri protocol.DocumentUri, text string) []protocol.Diagnostic {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	program, parseErrors, scanErrors := parser.ParseSource(path, text)

	h.mu.Lock()
	h.docs[uri] = &document{text: text, program: program}
	h.mu.Unlock()

	diagnostics := append(ConvertScanErrors(scanErrors), ConvertParseErrors(parseErrors)...)
	log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	return diagnostics
}

func (h *MinipyHandler) text(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.docs[uri]
	if !ok {
		return "", false
	}
	return doc.text, true
}

func definedNames(program *ast.Program) []protocol.CompletionItem {
	functions := map[string]string{}
	variables := map[string]string{}

	ast.Inspect(program, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FunctionDef:
			functions[v.Name.Value] = fmt.Sprintf("def %s(%s, %s)", v.Name.Value, v.Params[0].Value, v.Params[1].Value)
		case *ast.AssignStmt:
			variables[v.Target.Value] = v.Target.Value
		}
		return true
	})

	var items []protocol.CompletionItem
	for _, name := range sortedKeys(functions) {
		kind := protocol.CompletionItemKindFunction
		detail := functions[name]
		items = append(items, protocol.CompletionItem{Label: name, Kind: &kind, Detail: &detail})
	}
	for _, name := range sortedKeys(variables) {
		if _, isFunction := functions[name]; isFunction {
			continue
		}
		kind := protocol.CompletionItemKindVariable
		items = append(items, protocol.CompletionItem{Label: name, Kind: &kind})
	}
	return items
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyEdit replaces the text covered by r. Characters are counted in runes.
func applyEdit(text string, r protocol.Range, newText string) string {
	start := offsetOf(text, r.Start)
	end := offsetOf(text, r.End)
	if end < start {
		start, end = end, start
	}
	return text[:start] + newText + text[end:]
}

func offsetOf(text string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return len(text)
		}
		offset += i + 1
	}

	col := uint32(0)
	for i, r := range text[offset:] {
		if col == pos.Character || r == '\n' {
			return offset + i
		}
		col++
	}
	return len(text)
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) to get C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
