package ui

// Layout (framebuffer pixels).
const (
	Margin        = 16
	FieldHeight   = 32
	ButtonHeight  = 32
	ButtonGap     = 8
	StatusHeight  = 28
	WaveformInset = 4
)

// Font atlas layout (basicfont 7x13, 16 cols x 6 rows, ASCII 32-127).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontAscent = 11
	FontCols   = 16
	FontRows   = 6
	FontFirst  = 32
	FontAtlasW = FontCellW * FontCols // 112
	FontAtlasH = FontCellH * FontRows // 78
	TextScale  = 2.0
)
