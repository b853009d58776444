package value

// Scope binds the implicit current item ("it") and named variables visible
// during one block evaluation. A scope is built fresh for each evaluation and
// never mutated while one is in progress.
type Scope struct {
	It   Value
	vars *Dict
}

// NewScope creates a scope with the given current item and no variables.
func NewScope(it Value) *Scope {
	return &Scope{It: it, vars: NewDict()}
}

// EmptyScope creates a scope whose current item is nothing.
func EmptyScope() *Scope {
	return NewScope(Nothing().IntoUntaggedValue())
}

// WithVar returns a new scope with one more variable bound. The receiver is
// left untouched.
func (s *Scope) WithVar(name string, v Value) *Scope {
	next := &Scope{It: s.It, vars: s.vars.Clone()}
	next.vars.Set(name, v)
	return next
}

// Var returns the value bound to a variable name.
func (s *Scope) Var(name string) (Value, bool) {
	return s.vars.Get(name)
}

// VarNames returns the bound variable names in insertion order.
func (s *Scope) VarNames() []string {
	return s.vars.Keys()
}

// BlockKind identifies the variant of an evaluable block. The set is closed:
// dispatch is a plain switch, not an open registration mechanism.
type BlockKind int

const (
	// BlockLiteral evaluates to a captured value regardless of scope.
	BlockLiteral BlockKind = iota
	// BlockItVariable evaluates to the scope's current item.
	BlockItVariable
	// BlockVariable evaluates to a named scope variable.
	BlockVariable
	// BlockFieldPath walks a column path through the scope's current item.
	BlockFieldPath
)

// Block is a pure evaluable unit: given a scope it produces a value, with no
// I/O of its own. Blocks are duplicable so composite values containing them
// remain independently copyable.
type Block struct {
	Kind    BlockKind
	Literal Value      // BlockLiteral
	VarName string     // BlockVariable
	Path    ColumnPath // BlockFieldPath
}

// LiteralBlock captures a fixed value.
func LiteralBlock(v Value) *Block {
	return &Block{Kind: BlockLiteral, Literal: v}
}

// ItBlock evaluates to the current item.
func ItBlock() *Block {
	return &Block{Kind: BlockItVariable}
}

// VarBlock evaluates to a named variable.
func VarBlock(name string) *Block {
	return &Block{Kind: BlockVariable, VarName: name}
}

// FieldPathBlock walks a column path through the current item.
func FieldPathBlock(path ColumnPath) *Block {
	return &Block{Kind: BlockFieldPath, Path: path}
}

// Evaluate produces the block's value against a scope. Failures surface as
// error values, never as panics, so they travel the pipeline like any value.
func (b *Block) Evaluate(scope *Scope) Value {
	switch b.Kind {
	case BlockLiteral:
		return b.Literal.Clone()
	case BlockItVariable:
		return scope.It.Clone()
	case BlockVariable:
		if v, ok := scope.Var(b.VarName); ok {
			return v.Clone()
		}
		return Nothing().IntoUntaggedValue()
	case BlockFieldPath:
		v, err := GetPath(scope.It, b.Path, "")
		if err != nil {
			return Error(err).IntoUntaggedValue()
		}
		return v
	default:
		return Nothing().IntoUntaggedValue()
	}
}

// Clone duplicates the block.
func (b *Block) Clone() *Block {
	out := *b
	if b.Kind == BlockLiteral {
		out.Literal = b.Literal.Clone()
	}
	return &out
}
