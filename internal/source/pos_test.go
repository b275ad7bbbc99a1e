package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPosString(t *testing.T) {
	tests := []struct {
		name string
		pos  Pos
		want string
	}{
		{name: "synthetic", pos: Synthetic, want: "<synthetic>"},
		{name: "file only", pos: Pos{File: "device/a.mk"}, want: "device/a.mk"},
		{name: "file and line", pos: Pos{File: "device/a.mk", Line: 12}, want: "device/a.mk:12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAt(t *testing.T) {
	if got := At("", 4); !got.IsSynthetic() {
		t.Fatalf("At(\"\", 4) = %v, want synthetic", got)
	}
	if got := At("a/./b.mk", 7); got != (Pos{File: "a/b.mk", Line: 7}) {
		t.Fatalf("At cleaned = %+v", got)
	}
	got := At("b.mk", -3)
	if got.HasLine() {
		t.Fatalf("negative line must degrade to NoLine, got %+v", got)
	}
	if got.IsSynthetic() {
		t.Fatalf("file must be kept, got %+v", got)
	}
}

func TestReadFileNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.toml")
	raw := []byte("\xEF\xBB\xBFa = 1\r\nb = 2\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	content, flags, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "a = 1\nb = 2\n" {
		t.Fatalf("content = %q", content)
	}
	if flags&FileHadBOM == 0 || flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF", flags)
	}
}

func TestDisplayPath(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work")
	inside := filepath.Join(base, "device", "a.mk")
	outside := filepath.Join(string(filepath.Separator), "other", "b.mk")

	if got := DisplayPath(inside, PathRelative, base); got != "device/a.mk" {
		t.Fatalf("relative inside = %q", got)
	}
	if got := DisplayPath(outside, PathRelative, base); got != outside {
		t.Fatalf("relative outside = %q, want %q", got, outside)
	}
	if got := DisplayPath(inside, PathBasename, ""); got != "a.mk" {
		t.Fatalf("basename = %q", got)
	}
	if got := DisplayPath("x/y.mk", PathAsIs, base); got != "x/y.mk" {
		t.Fatalf("as-is = %q", got)
	}
}
