package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/bytevec/buffer"
	"github.com/iw2rmb/bytevec/textconv"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginTop(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func section(title string) {
	fmt.Println(titleStyle.Render(title))
}

func row(label string, format string, args ...any) {
	fmt.Println(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...)))
}

func main() {
	section("String building")
	b := buffer.New()
	b.Concat("a")
	b.Concat("bb")
	b.AppendFormat("%c%s%d", 'c', "cc", 12345)
	b.Concat("ddd")
	b.ConcatByte('d')
	b.Concat("eeeee")
	row("content", "%q", b.CStr())
	row("length/capacity", "%d/%d bytes", b.Len(), b.Cap())

	section("Growth and shrink")
	g := buffer.New()
	for _, n := range []int{1, 65, 129, 1000} {
		g.Reserve(n)
		row(fmt.Sprintf("reserve %d", n), "capacity %d", g.Cap())
	}
	g.Resize(100)
	g.ShrinkToFit()
	row("shrink at length 100", "capacity %d", g.Cap())

	section("Typed records")
	r := buffer.New()
	buffer.Push[byte](r, 0x11)
	buffer.Push[uint16](r, 0x2233)
	buffer.Push[uint32](r, 0x44556677)
	row("pushed 1+2+4 bytes", "% x", r.Bytes())
	row("last uint32", "%#x", *buffer.ViewOf[uint32](r).Back())

	section("Codepage conversion")
	raw, err := textconv.Encode("中文", textconv.GBK)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	row("GBK bytes", "% x", raw)
	back, err := textconv.Decode(raw, textconv.GBK)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode:", err)
		os.Exit(1)
	}
	row("decoded", "%q", back)

	w := buffer.FromWideString(back)
	row("wide units", "%d (incl. terminator)", buffer.ViewOf[uint16](w).Len())
	fmt.Println()
}
