package nester

// BlockLine groups the significant tokens of one physical line with the
// whitespace, comments, newlines, and error markers that surround them.
// Tokens and Insignificants are each expected to be sorted by Span().Start,
// and every element's Span points into the same source buffer.
type BlockLine struct {
	Tokens        []Token
	Insignificants []Insignificant
}

// ForEach visits every element of the block-line in source order, merging
// Tokens and Insignificants by comparing Span().Start — the Go analogue of
// the original implementation's two-iterator merge over its tagged-union
// vectors. Ties cannot occur given the disjointness invariant on inputs,
// but are broken token-first to match the original's iteration order.
func (bl BlockLine) ForEach(visit func(Element)) {
	ti, ii := 0, 0
	for ti < len(bl.Tokens) && ii < len(bl.Insignificants) {
		tv := bl.Tokens[ti].Span()
		iv := bl.Insignificants[ii].Span()
		if tv.Start < iv.Start {
			visit(bl.Tokens[ti])
			ti++
		} else {
			visit(bl.Insignificants[ii])
			ii++
		}
	}
	for ; ti < len(bl.Tokens); ti++ {
		visit(bl.Tokens[ti])
	}
	for ; ii < len(bl.Insignificants); ii++ {
		visit(bl.Insignificants[ii])
	}
}
