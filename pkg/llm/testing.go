package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedProvider replays canned turns in order, repeating the last one,
// and records every request it receives. It backs engine tests that must
// not reach a real LLM.
type ScriptedProvider struct {
	tag string

	mu       sync.Mutex
	turns    []scriptedTurn
	requests []Request
}

type scriptedTurn struct {
	resp *Response
	err  error
}

// NewScriptedProvider creates a provider answering to the given tag
func NewScriptedProvider(tag string) *ScriptedProvider {
	return &ScriptedProvider{tag: tag}
}

// Respond appends a canned response turn
func (p *ScriptedProvider) Respond(resp *Response) *ScriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.turns = append(p.turns, scriptedTurn{resp: resp})
	return p
}

// RespondText appends an end_turn response with a single text block
func (p *ScriptedProvider) RespondText(text string, inputTokens, outputTokens int) *ScriptedProvider {
	return p.Respond(&Response{
		Blocks:     []ContentBlock{{Type: BlockText, Text: text}},
		StopReason: StopEndTurn,
		Usage:      Usage{InputTokens: inputTokens, OutputTokens: outputTokens},
	})
}

// RespondError appends a failing turn
func (p *ScriptedProvider) RespondError(err error) *ScriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.turns = append(p.turns, scriptedTurn{err: err})
	return p
}

// Requests returns the recorded requests in order
func (p *ScriptedProvider) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	requests := make([]Request, len(p.requests))
	copy(requests, p.requests)
	return requests
}

func (p *ScriptedProvider) Name() string { return p.tag }

func (p *ScriptedProvider) Complete(_ context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	turn := len(p.requests)
	p.requests = append(p.requests, req)

	if len(p.turns) == 0 {
		return nil, fmt.Errorf("provider %s has no scripted turns", p.tag)
	}
	if turn >= len(p.turns) {
		turn = len(p.turns) - 1
	}
	scripted := p.turns[turn]
	if scripted.err != nil {
		return nil, scripted.err
	}
	return scripted.resp, nil
}
