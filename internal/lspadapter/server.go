// Package lspadapter implements a minimal Language Server Protocol
// server exposing the TOON parser's diagnostics to an editor: open,
// change, and save notifications re-parse the document and publish its
// current Diagnostics; a close notification forgets the document and
// drops its cached parse. It follows the same
// jsonrpc2/protocol/zap wiring the teacher's own LSP server uses.
package lspadapter

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/madskristensen/toon/internal/toon/doccache"
	"github.com/madskristensen/toon/pkg/toon"
)

// Server is a TOON language server: it tracks open documents' text and
// publishes parse diagnostics on open/change/save.
type Server struct {
	logger *log.Logger
	conn   jsonrpc2.Conn
	client protocol.Client
	opts   toon.Options
	cache  *doccache.Cache

	mu   sync.Mutex
	docs map[string]string // uri -> source text

	cancel context.CancelFunc
}

// NewServer creates an LSP server using the given parse options. Every
// document re-parse goes through a content-hash cache, so rapid
// keystroke-driven didChange notifications that end up back at a
// previously-seen text (undo, retype) are a cache hit instead of a
// re-lex/re-parse.
func NewServer(opts toon.Options) *Server {
	return &Server{
		logger: log.New(os.Stderr, "[toon-lsp] ", log.LstdFlags),
		opts:   opts,
		cache:  doccache.New(),
		docs:   make(map[string]string),
	}
}

// Run starts the server, speaking LSP over stdin/stdout until ctx is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Println("starting toon language server")

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		s.logger.Printf("warning: failed to create zap logger: %v", err)
		zapLogger = zap.NewNop()
	}
	s.client = protocol.ClientDispatcher(conn, zapLogger)

	conn.Go(ctx, s.handler())

	<-ctx.Done()
	s.logger.Println("shutting down toon language server")
	return conn.Close()
}

func (s *Server) handler() jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.logger.Printf("received: %s", req.Method())

		switch req.Method() {
		case protocol.MethodInitialize:
			return s.handleInitialize(ctx, reply, req)
		case protocol.MethodInitialized:
			return reply(ctx, nil, nil)
		case protocol.MethodShutdown:
			return reply(ctx, nil, nil)
		case protocol.MethodExit:
			if s.cancel != nil {
				s.cancel()
			}
			return reply(ctx, nil, nil)
		case protocol.MethodTextDocumentDidOpen:
			return s.handleDidOpen(ctx, reply, req)
		case protocol.MethodTextDocumentDidChange:
			return s.handleDidChange(ctx, reply, req)
		case protocol.MethodTextDocumentDidClose:
			return s.handleDidClose(ctx, reply, req)
		case protocol.MethodTextDocumentDidSave:
			return s.handleDidSave(ctx, reply, req)
		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	result := protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
		},
	}
	return reply(ctx, result, nil)
}

func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyErr(ctx, reply, "failed to parse didOpen params")
	}
	uri := string(params.TextDocument.URI)
	s.setDoc(uri, params.TextDocument.Text)
	s.publishDiagnostics(ctx, uri)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyErr(ctx, reply, "failed to parse didChange params")
	}
	if len(params.ContentChanges) == 0 {
		return reply(ctx, nil, nil)
	}
	uri := string(params.TextDocument.URI)
	// Full document sync: the last change carries the whole text.
	s.setDoc(uri, params.ContentChanges[len(params.ContentChanges)-1].Text)
	s.publishDiagnostics(ctx, uri)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyErr(ctx, reply, "failed to parse didClose params")
	}
	uri := string(params.TextDocument.URI)
	s.mu.Lock()
	source := s.docs[uri]
	delete(s.docs, uri)
	s.mu.Unlock()
	s.cache.Invalidate(source)
	return reply(ctx, nil, nil)
}

func (s *Server) handleDidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return s.replyErr(ctx, reply, "failed to parse didSave params")
	}
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return reply(ctx, nil, nil)
}

func (s *Server) setDoc(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	s.mu.Lock()
	source := s.docs[uri]
	s.mu.Unlock()

	result := s.cache.Parse(source, s.opts)

	lspDiags := make([]protocol.Diagnostic, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		line := uint32(0)
		if d.Pos.Line > 0 {
			line = uint32(d.Pos.Line - 1)
		}
		col := uint32(0)
		if d.Pos.Column > 0 {
			col = uint32(d.Pos.Column - 1)
		}
		end := col + 1
		if d.Pos.Length > 0 {
			end = col + uint32(d.Pos.Length)
		}
		lspDiags = append(lspDiags, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: col},
				End:   protocol.Position{Line: line, Character: end},
			},
			Severity: protocol.DiagnosticSeverityError,
			Code:     string(d.Code),
			Source:   "toon",
			Message:  d.Message,
		})
	}

	if s.client == nil {
		return
	}
	if err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: lspDiags,
	}); err != nil {
		s.logger.Printf("error publishing diagnostics: %v", err)
	}
}

func (s *Server) replyErr(ctx context.Context, reply jsonrpc2.Replier, message string) error {
	return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: message})
}

// stdrwc implements io.ReadWriteCloser over stdin/stdout.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
