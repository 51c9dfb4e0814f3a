package tokendiff

import "github.com/oxhq/zograscope/render"

// SpellingDiff holds everything internal/highlight needs to decide how to
// color one side of an Updated leaf's spelling.
type SpellingDiff struct {
	Moved bool
	// Surround marks identifier/type/function-name leaves, which get
	// wrapped in UpdatedSurroundings brackets and retokenized to
	// per-character when both sides reduce to one word, so a rename like
	// "oldName" -> "newName" highlights just the changed letters.
	Surround bool
	// PrintBrackets controls whether Surround leaves are actually
	// wrapped; callers rendering a reference list (no brackets wanted)
	// turn it off.
	PrintBrackets bool
}

// DiffSpelling renders one side of an Updated leaf's intra-token diff.
// original selects which side is being rendered: true renders l's view
// (Common/Delete visible, Insert suppressed), false renders r's view
// (Common/Insert visible, Delete suppressed). When the two spellings are
// too dissimilar to make a token-level diff meaningful (similarity below
// 0.2), the whole spelling comes back as one opaque Updated piece.
func DiffSpelling(original bool, l, r string, opts SpellingDiff) render.ColorCane {
	lWords := ToWords(l)
	rWords := ToWords(r)
	if opts.Surround && len(lWords) == 1 && len(rWords) == 1 {
		lWords = ToChars(l)
		rWords = ToChars(r)
	}

	edits := SES(len(lWords), len(rWords), func(i, j int) bool {
		return lWords[i].Text == rWords[j].Text
	})

	editDistance := 0
	for _, e := range edits {
		if e.Op != Common {
			editDistance++
		}
	}
	maxLen := len(lWords)
	if len(rWords) > maxLen {
		maxLen = len(rWords)
	}
	sim := 1.0
	if maxLen > 0 {
		sim = 1 - float64(editDistance)/float64(maxLen)
	}

	var cc render.ColorCane
	if sim < 0.2 {
		if original {
			cc.Append(l, nil, render.Updated)
		} else {
			cc.Append(r, nil, render.Updated)
		}
		return cc
	}

	def := render.None
	switch {
	case opts.Moved:
		def = render.Moved
	case opts.Surround:
		def = render.Updated
	}

	if opts.Surround && opts.PrintBrackets {
		cc.Append("[", nil, render.UpdatedSurroundings)
	}

	lastL, lastR := 0, 0
	for _, e := range edits {
		switch e.Op {
		case Common:
			lt, rt := lWords[e.I], rWords[e.J]
			if original {
				cc.Append(l[lastL:lt.Start], nil, def)
				cc.Append(lt.Text, nil, def)
				lastL = lt.End
			} else {
				cc.Append(r[lastR:rt.Start], nil, def)
				cc.Append(rt.Text, nil, def)
				lastR = rt.End
			}
		case Delete:
			if original {
				t := lWords[e.I]
				cc.Append(l[lastL:t.Start], nil, def)
				cc.Append(t.Text, nil, render.Deleted)
				lastL = t.End
			}
		case Insert:
			if !original {
				t := rWords[e.J]
				cc.Append(r[lastR:t.Start], nil, def)
				cc.Append(t.Text, nil, render.Inserted)
				lastR = t.End
			}
		}
	}

	// Trailing filler after the last matched/deleted/inserted token.
	// Expressed here as a plain slice (l[lastL:], r[lastR:]) rather than
	// a hand-rolled (lastL - end) length computation — the latter is
	// what produces a negative length when lastL has already advanced
	// past the final token boundary.
	if original {
		cc.Append(l[lastL:], nil, def)
	} else {
		cc.Append(r[lastR:], nil, def)
	}

	if opts.Surround && opts.PrintBrackets {
		cc.Append("]", nil, render.UpdatedSurroundings)
	}
	return cc
}
