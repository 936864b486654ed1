package ui

import "bytebeat/internal/expr"

// TextField is a single-line editable buffer with a caret. It accepts
// printable ASCII only, which is all the font atlas carries.
type TextField struct {
	text  []rune
	caret int
	limit int
}

func NewTextField(initial string) *TextField {
	f := &TextField{limit: expr.MaxSourceLen}
	f.Set(initial)
	return f
}

func (f *TextField) String() string { return string(f.text) }

// Caret is the insertion index in runes.
func (f *TextField) Caret() int { return f.caret }

// Set replaces the contents and moves the caret to the end.
func (f *TextField) Set(s string) {
	f.text = f.text[:0]
	f.caret = 0
	f.Insert(s)
}

// Insert types s at the caret. Newlines and tabs become spaces; anything
// else outside printable ASCII is dropped.
func (f *TextField) Insert(s string) {
	for _, r := range s {
		switch r {
		case '\n', '\r', '\t':
			r = ' '
		}
		if r < 32 || r > 126 {
			continue
		}
		if len(f.text) >= f.limit {
			return
		}
		f.text = append(f.text, 0)
		copy(f.text[f.caret+1:], f.text[f.caret:])
		f.text[f.caret] = r
		f.caret++
	}
}

// Backspace deletes the rune before the caret.
func (f *TextField) Backspace() {
	if f.caret == 0 {
		return
	}
	f.text = append(f.text[:f.caret-1], f.text[f.caret:]...)
	f.caret--
}

// Delete removes the rune under the caret.
func (f *TextField) Delete() {
	if f.caret >= len(f.text) {
		return
	}
	f.text = append(f.text[:f.caret], f.text[f.caret+1:]...)
}

// Move shifts the caret by n runes, staying inside the text.
func (f *TextField) Move(n int) { f.caret = clamp(f.caret+n, 0, len(f.text)) }

func (f *TextField) Home() { f.caret = 0 }
func (f *TextField) End()  { f.caret = len(f.text) }

// Window returns the slice of text that fits in cols columns with the caret
// visible, and the caret's column within it.
func (f *TextField) Window(cols int) (string, int) {
	if cols <= 0 {
		return "", 0
	}
	start := 0
	if f.caret >= cols {
		start = f.caret - cols + 1
	}
	end := min(start+cols, len(f.text))
	return string(f.text[start:end]), f.caret - start
}
