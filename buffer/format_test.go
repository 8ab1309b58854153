package buffer

import "testing"

func TestFormat_RendersAndShrinks(t *testing.T) {
	b := Format("%d%s%d", 12345, "abcde", 67890)
	if got := b.CStr(); got != "12345abcde67890" {
		t.Fatalf("CStr=%q", got)
	}
	if b.Len() != 16 {
		t.Fatalf("len=%d, want 16", b.Len())
	}
	if b.Cap() >= 2*b.Len() {
		t.Fatalf("cap=%d not shrunk for len=%d", b.Cap(), b.Len())
	}
}

func TestFormat_Empty(t *testing.T) {
	b := Format("")
	if got := b.CStr(); got != "" || b.Len() != 1 {
		t.Fatalf("CStr=%q len=%d, want \"\"/1", got, b.Len())
	}
}

func TestFormat_LongOutput(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	b := Format("%s", long)
	if b.Len() != 1001 {
		t.Fatalf("len=%d, want 1001", b.Len())
	}
	if b.Cap() >= 2*b.Len() {
		t.Fatalf("cap=%d not shrunk for len=%d", b.Cap(), b.Len())
	}
}

func TestSetFormat_ReplacesContents(t *testing.T) {
	b := FromCString("hahaha")
	b.SetFormat("%d%s%d", 12345, "abcde", 67890)
	if got := b.CStr(); got != "12345abcde67890" {
		t.Fatalf("CStr=%q", got)
	}
	if b.Len() != 16 {
		t.Fatalf("len=%d, want 16", b.Len())
	}
}

func TestAppendFormat_Concats(t *testing.T) {
	b := Format("%d%s%d", 12345, "abcde", 67890)
	b.AppendFormat("%d%s%d", 54321, "EDCBA", 98765)
	if got := b.CStr(); got != "12345abcde6789054321EDCBA98765" {
		t.Fatalf("CStr=%q", got)
	}
	if b.Len() != 31 {
		t.Fatalf("len=%d, want 31", b.Len())
	}
}

func TestWideFormat_RendersAndShrinks(t *testing.T) {
	b := WideFormat("%d%s%d", 12345, "abcde", 67890)
	if got := b.WideStr(); got != "12345abcde67890" {
		t.Fatalf("WideStr=%q", got)
	}
	if wideLen(b) != 16 {
		t.Fatalf("elements=%d, want 16", wideLen(b))
	}
}

func TestSetWideFormat_ReplacesContents(t *testing.T) {
	b := FromWideString("hahaha")
	b.SetWideFormat("%d%s%d", 12345, "abcde", 67890)
	if got := b.WideStr(); got != "12345abcde67890" {
		t.Fatalf("WideStr=%q", got)
	}
}

func TestAppendWideFormat_Concats(t *testing.T) {
	b := WideFormat("%d%s%d", 12345, "abcde", 67890)
	b.AppendWideFormat("%d%s%d", 54321, "EDCBA", 98765)
	if got := b.WideStr(); got != "12345abcde6789054321EDCBA98765" {
		t.Fatalf("WideStr=%q", got)
	}
	if wideLen(b) != 31 {
		t.Fatalf("elements=%d, want 31", wideLen(b))
	}
}
