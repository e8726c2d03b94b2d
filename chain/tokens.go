package chain

import "github.com/go-stp/stp/stpalg"

// Kind tags the payload a Token carries.
type Kind int

const (
	// KindVar is a 2×1 symbolic variable column; Rank holds the
	// variable's ordinal under the target order (1..n, MSB-first).
	KindVar Kind = iota
	// KindOp is a concrete structural matrix.
	KindOp
	// KindSpecial is one of the fixed auxiliary matrices: Swap2,
	// IdentityPow2, or PowerReduce2.
	KindSpecial
)

// SpecialKind tags which auxiliary matrix a KindSpecial token denotes.
type SpecialKind int

const (
	// SpecialSwap2 denotes W(2,2), realizing x⊗y ↦ y⊗x.
	SpecialSwap2 SpecialKind = iota
	// SpecialIdentityPow2 denotes I_{2^c}; Dim carries the dimension
	// 2^c directly (not c).
	SpecialIdentityPow2
	// SpecialPowerReduce2 denotes Mr(2), realizing x ↦ x⊗x.
	SpecialPowerReduce2
)

// Token is a single element of a Chain: a tagged union of a symbolic
// variable, a concrete operator matrix, or a special auxiliary matrix.
type Token struct {
	Kind    Kind
	Rank    int            // valid when Kind == KindVar
	Op      *stpalg.Matrix // valid when Kind == KindOp
	Special SpecialKind    // valid when Kind == KindSpecial
	Dim     int            // valid when Kind == KindSpecial && Special == SpecialIdentityPow2
}

// Chain is a finite ordered sequence of tokens.
type Chain []Token

// VarToken returns a symbolic variable token of the given target rank.
func VarToken(rank int) Token {
	return Token{Kind: KindVar, Rank: rank}
}

// OpToken wraps a concrete structural matrix as an operator token.
func OpToken(m *stpalg.Matrix) Token {
	return Token{Kind: KindOp, Op: m}
}

// Swap2Token is the Special(Swap2) token.
func Swap2Token() Token {
	return Token{Kind: KindSpecial, Special: SpecialSwap2}
}

// IdentityToken is the Special(IdentityPow2, dim) token; dim must be a
// power of two (2^c for some c ≥ 0).
func IdentityToken(dim int) Token {
	return Token{Kind: KindSpecial, Special: SpecialIdentityPow2, Dim: dim}
}

// PowerReduce2Token is the Special(PowerReduce2) token.
func PowerReduce2Token() Token {
	return Token{Kind: KindSpecial, Special: SpecialPowerReduce2}
}

// isVar reports whether t is a KindVar token.
func (t Token) isVar() bool { return t.Kind == KindVar }

// concreteMatrix materializes a non-identity, non-var token to its
// stpalg.Matrix form.
func (t Token) concreteMatrix() (*stpalg.Matrix, error) {
	switch t.Kind {
	case KindOp:
		return t.Op, nil
	case KindSpecial:
		switch t.Special {
		case SpecialSwap2:
			return stpalg.SwapMatrix2()
		case SpecialPowerReduce2:
			return stpalg.PowerReduceMatrix2()
		}
	}

	return nil, ErrNotFullyReduced
}
