package parser

// Context is the mutable state of one script being split. It is owned by a
// single Splitter and never shared.
type Context struct {
	delimiter   Delimiter
	kind        Kind
	parensDepth int
	initiators  []string // innermost open block last
	lastClosed  string

	// wrappedBaseline is the block depth at which a wrapped unit was first
	// classified, or -1. It survives statement boundaries.
	wrappedBaseline int
}

func NewContext() *Context {
	return &Context{
		delimiter:       Semicolon,
		kind:            Plain,
		wrappedBaseline: -1,
	}
}

func (c *Context) Delimiter() Delimiter     { return c.delimiter }
func (c *Context) SetDelimiter(d Delimiter) { c.delimiter = d }

func (c *Context) Kind() Kind     { return c.kind }
func (c *Context) SetKind(k Kind) { c.kind = k }

func (c *Context) ParensDepth() int { return c.parensDepth }

func (c *Context) increaseParensDepth() { c.parensDepth++ }

func (c *Context) decreaseParensDepth() { c.parensDepth-- }

func (c *Context) BlockDepth() int { return len(c.initiators) }

func (c *Context) IncreaseBlockDepth(initiator string) {
	c.initiators = append(c.initiators, initiator)
}

// DecreaseBlockDepth closes the innermost block. It is a no-op at depth 0.
func (c *Context) DecreaseBlockDepth() {
	if len(c.initiators) == 0 {
		return
	}
	c.lastClosed = c.initiators[len(c.initiators)-1]
	c.initiators = c.initiators[:len(c.initiators)-1]
}

// BlockInitiator is the text that opened the innermost open block.
func (c *Context) BlockInitiator() string {
	if len(c.initiators) == 0 {
		return ""
	}
	return c.initiators[len(c.initiators)-1]
}

// LastClosedBlockInitiator is the text that opened the most recently closed block.
func (c *Context) LastClosedBlockInitiator() string { return c.lastClosed }
