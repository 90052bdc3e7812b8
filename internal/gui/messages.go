package gui

import (
	"image/color"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/chenwei791129/screader/pkg/superchat"
)

// MessageLayout holds the sizes used to lay out a message row
type MessageLayout struct {
	// MetaWidth is the width of the left block holding username and amount
	MetaWidth float32
	// UsernameWrap is the width the username wraps at
	UsernameWrap float32
	// ContentWrap is the width the message content wraps at
	ContentWrap float32
	// RowHeight is the minimum height of a row
	RowHeight float32
}

// DefaultMessageLayout returns 4cm / 12cm / 2cm at 96 dpi
func DefaultMessageLayout() MessageLayout {
	return MessageLayout{
		MetaWidth:    151,
		UsernameWrap: 151,
		ContentWrap:  454,
		RowHeight:    76,
	}
}

// MessageRow is the widget tree of one displayed message
type MessageRow struct {
	Message  superchat.Message
	Username *wrappedLabel
	Amount   *widget.Label
	Content  *wrappedLabel

	// Tint is the background of the content block, coloured by the message class
	Tint *canvas.Rectangle

	// Meta is the fixed width left block, Body the bordered content block
	Meta   fyne.CanvasObject
	Body   fyne.CanvasObject
	Object fyne.CanvasObject
}

// tintAlpha keeps the class colour light enough for the theme's text colour to stay readable
const tintAlpha = 0x40

// AddMessage appends a row for msg to list and returns it
func AddMessage(list *fyne.Container, layout MessageLayout, msg superchat.Message) *MessageRow {
	msg = msg.WithDefaults()

	username := newWrappedLabel(msg.Username, layout.UsernameWrap)
	username.Alignment = fyne.TextAlignCenter

	amount := widget.NewLabel(msg.Amount)
	amount.Alignment = fyne.TextAlignCenter
	amount.TextStyle = fyne.TextStyle{Bold: true}

	content := newWrappedLabel(msg.Content, layout.ContentWrap)

	meta := container.New(&fixedWidthLayout{width: layout.MetaWidth, center: true},
		container.NewVBox(
			container.New(&fixedWidthLayout{width: layout.UsernameWrap, center: true}, username),
			amount,
		),
	)

	tintColor := msg.Class.Color()
	tintColor.A = tintAlpha
	tint := canvas.NewRectangle(tintColor)
	tint.StrokeColor = theme.Color(theme.ColorNameForeground)
	tint.StrokeWidth = 1
	body := container.NewStack(
		tint,
		container.NewPadded(container.New(&fixedWidthLayout{width: layout.ContentWrap}, content)),
	)

	minHeight := canvas.NewRectangle(color.Transparent)
	minHeight.SetMinSize(fyne.NewSize(0, layout.RowHeight))

	row := &MessageRow{
		Message:  msg,
		Username: username,
		Amount:   amount,
		Content:  content,
		Tint:     tint,
		Meta:     meta,
		Body:     body,
		Object:   container.NewStack(minHeight, container.NewBorder(nil, nil, meta, nil, body)),
	}
	list.Add(row.Object)
	return row
}

// MessageList is an append-only vertical list of message rows
type MessageList struct {
	box    *fyne.Container
	layout MessageLayout
	rows   []*MessageRow
}

// NewMessageList creates an empty list
func NewMessageList(layout MessageLayout) *MessageList {
	return &MessageList{
		box:    container.NewVBox(),
		layout: layout,
	}
}

// Append adds msg below the existing rows
func (l *MessageList) Append(msg superchat.Message) *MessageRow {
	row := AddMessage(l.box, l.layout, msg)
	l.rows = append(l.rows, row)
	return row
}

// Rows returns the rows in insertion order
func (l *MessageList) Rows() []*MessageRow {
	return slices.Clone(l.rows)
}

// Len returns the number of rows
func (l *MessageList) Len() int {
	return len(l.rows)
}

// Object returns the container to place in a window
func (l *MessageList) Object() fyne.CanvasObject {
	return l.box
}

// fixedWidthLayout gives its children a fixed width and the tallest child's height
type fixedWidthLayout struct {
	width  float32
	center bool
}

func (l *fixedWidthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var height float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		height = max(height, o.MinSize().Height)
	}
	return fyne.NewSize(l.width, height)
}

func (l *fixedWidthLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var x float32
	if l.center && size.Width > l.width {
		x = (size.Width - l.width) / 2
	}
	for _, o := range objects {
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(l.width, size.Height))
	}
}

// wrappedLabel is a word wrapping label that always wraps at the same width.
// A plain wrapping label only knows its height after it has been resized,
// this one reports the wrapped height up front.
type wrappedLabel struct {
	widget.Label
	width float32
}

func newWrappedLabel(text string, width float32) *wrappedLabel {
	l := &wrappedLabel{width: width}
	l.Text = text
	l.Wrapping = fyne.TextWrapWord
	l.ExtendBaseWidget(l)
	return l
}

func (l *wrappedLabel) MinSize() fyne.Size {
	pad := theme.InnerPadding()
	textSize := theme.TextSize()
	measure := func(s string) float32 {
		return fyne.MeasureText(s, textSize, l.TextStyle).Width
	}

	lines := wrapLineCount(l.Text, l.width-2*pad, measure)
	lineHeight := fyne.MeasureText("M", textSize, l.TextStyle).Height
	height := float32(lines)*lineHeight + float32(lines-1)*theme.LineSpacing() + 2*pad
	return fyne.NewSize(l.width, height)
}

// wrapLineCount returns how many lines text takes when greedily word wrapped at width.
// Words wider than a line are broken across as many lines as they need.
func wrapLineCount(text string, width float32, measure func(string) float32) int {
	if width <= 0 {
		return 1
	}
	space := measure(" ")

	lines := 0
	for _, paragraph := range strings.Split(text, "\n") {
		lines++
		var used float32
		for i, word := range strings.Fields(paragraph) {
			w := measure(word)
			if i > 0 && used+space+w <= width {
				used += space + w
				continue
			}
			if i > 0 {
				lines++
			}
			used = w
			for used > width {
				lines++
				used -= width
			}
		}
	}
	return lines
}
