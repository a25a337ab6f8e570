package lexgo

import "github.com/RoaringBitmap/roaring/v2"

type evalOptions struct {
	sentences *roaring.Bitmap
}

// EvalOption configures a single Evaluate or Query call.
type EvalOption func(*evalOptions)

// WithinSentences restricts the result to matches inside the given
// sentence indices. The sentence set is compiled into a roaring bitmap
// consulted at emission, so arbitrarily large selections stay cheap.
func WithinSentences(ks ...int) EvalOption {
	return func(eo *evalOptions) {
		if eo.sentences == nil {
			eo.sentences = roaring.New()
		}
		for _, k := range ks {
			if k >= 0 {
				eo.sentences.Add(uint32(k))
			}
		}
	}
}

func applyEvalOptions(optFns []EvalOption) evalOptions {
	var eo evalOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&eo)
		}
	}
	return eo
}
