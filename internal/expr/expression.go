package expr

import (
	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// Expression is Component G: the block-by-block driver wrapping a single
// root Node, released by Builder.Release. It is immutable after release
// and owns every child node transitively.
type Expression struct {
	root      Node
	blockSize int
}

func newExpression(root Node, options engineopts.ExpressionOptions) *Expression {
	blockSize := options.BlockSize
	if blockSize <= 0 {
		blockSize = engineopts.DefaultExpressionOptions().BlockSize
	}
	return &Expression{root: root, blockSize: blockSize}
}

func (e *Expression) DataType() value.DataType { return e.root.DataType() }

// Filter operates on records[inputOffset:], writing kept records back in
// place starting at inputOffset+outputOffset and keeping at most
// outputLimit, then truncates records to the final length. Processes the
// input in chunks of blockSize.
func (e *Expression) Filter(records *record.Set, inputOffset, outputOffset, outputLimit int) error {
	if e.root.DataType() != value.BoolType {
		return grnxxerr.NewInvalidOperation("Expression.Filter", "filter requires a Bool-valued expression")
	}
	all := records.All()
	in := all[inputOffset:]
	writePos := inputOffset + outputOffset
	kept := 0

	for start := 0; start < len(in); start += e.blockSize {
		end := start + e.blockSize
		if end > len(in) {
			end = len(in)
		}
		block := in[start:end]
		scratch := make([]record.Record, len(block))
		copy(scratch, block)
		scratchSlice := record.SliceOf(scratch)
		n, err := e.root.Filter(block, &scratchSlice)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if outputLimit >= 0 && kept >= outputLimit {
				break
			}
			all[writePos+kept] = scratchSlice.At(i)
			kept++
		}
		if outputLimit >= 0 && kept >= outputLimit {
			break
		}
	}
	records.Resize(writePos + kept)
	return nil
}

// FilterSlice is the block-wise filter overload that reads from in and
// writes the selected records into out, shrinking out to the final count.
func (e *Expression) FilterSlice(in record.Slice, out *record.Slice) error {
	if e.root.DataType() != value.BoolType {
		return grnxxerr.NewInvalidOperation("Expression.Filter", "filter requires a Bool-valued expression")
	}
	total := 0
	for start := 0; start < in.Len(); start += e.blockSize {
		end := start + e.blockSize
		if end > in.Len() {
			end = in.Len()
		}
		block := make([]record.Record, end-start)
		for i := range block {
			block[i] = in.At(start + i)
		}
		scratchSlice := record.SliceOf(append([]record.Record(nil), block...))
		n, err := e.root.Filter(block, &scratchSlice)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			out.Set(total, scratchSlice.At(i))
			total++
		}
	}
	out.Shrink(total)
	return nil
}

// Adjust updates records[offset:]'s scores in place, block by block.
func (e *Expression) Adjust(records *record.Set, offset int) error {
	if e.root.DataType() != value.FloatType {
		return grnxxerr.NewInvalidOperation("Expression.Adjust", "adjust requires a Float-valued expression")
	}
	all := records.All()
	in := all[offset:]
	for start := 0; start < len(in); start += e.blockSize {
		end := start + e.blockSize
		if end > len(in) {
			end = len(in)
		}
		if err := e.root.Adjust(in[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// AdjustSlice is the block-wise in-place adjust overload over a Slice.
func (e *Expression) AdjustSlice(s record.Slice) error {
	if e.root.DataType() != value.FloatType {
		return grnxxerr.NewInvalidOperation("Expression.Adjust", "adjust requires a Float-valued expression")
	}
	raw := s.Raw()
	for start := 0; start < len(raw); start += e.blockSize {
		end := start + e.blockSize
		if end > len(raw) {
			end = len(raw)
		}
		if err := e.root.Adjust(raw[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate resizes out to records.Len() and fills it block by block. It
// does not check the expression's DataType; EvaluateTyped does, and
// reports a mismatch as TypeMismatch.
func (e *Expression) Evaluate(records *record.Set, out *[]value.Datum) error {
	recs := records.All()
	if len(*out) != len(recs) {
		*out = make([]value.Datum, len(recs))
	}
	for start := 0; start < len(recs); start += e.blockSize {
		end := start + e.blockSize
		if end > len(recs) {
			end = len(recs)
		}
		if err := e.root.Evaluate(recs[start:end], (*out)[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateTyped is a convenience wrapper enforcing that the expression's
// declared data type matches want, per spec.md §4.G's typed-overload
// mismatch contract.
func (e *Expression) EvaluateTyped(records *record.Set, want value.DataType) ([]value.Datum, error) {
	if e.root.DataType() != want {
		return nil, grnxxerr.NewTypeMismatch("Expression.Evaluate", "expression is "+e.root.DataType().String()+", output array is "+want.String())
	}
	var out []value.Datum
	if err := e.Evaluate(records, &out); err != nil {
		return nil, err
	}
	return out, nil
}
