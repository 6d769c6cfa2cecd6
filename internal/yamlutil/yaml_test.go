package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-bookmark/internal/yamlutil"
)

type testPage struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

type testBook struct {
	BookName string     `yaml:"bookname"`
	Workers  int        `yaml:"workers,omitempty"`
	Pages    []testPage `yaml:"pages"`
}

// ---------------------------------------------------------------------------
// TestDecode - YAML and JSON Configs
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    testBook
		wantErr error
		anyErr  bool
	}{
		{
			name: "yaml",
			data: "bookname: Guide\nworkers: 2\npages:\n  - title: Intro\n    path: README.md\n",
			want: testBook{BookName: "Guide", Workers: 2, Pages: []testPage{{"Intro", "README.md"}}},
		},
		{
			name: "json",
			data: `{"bookname": "Guide", "pages": [{"title": "Intro", "path": "README.md"}]}`,
			want: testBook{BookName: "Guide", Pages: []testPage{{"Intro", "README.md"}}},
		},
		{
			name: "unicode",
			data: "bookname: 日本語の本\n",
			want: testBook{BookName: "日本語の本"},
		},
		{
			name:   "unknown field",
			data:   "bookname: Guide\nchapters: []\n",
			anyErr: true,
		},
		{
			name:   "unknown nested field",
			data:   "bookname: Guide\npages:\n  - title: A\n    file: a.md\n",
			anyErr: true,
		},
		{
			name:   "malformed",
			data:   "bookname: [unclosed\n",
			anyErr: true,
		},
		{
			name:    "empty",
			data:    "",
			wantErr: yamlutil.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got testBook
			err := yamlutil.Decode([]byte(tt.data), &got)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("Decode() error = nil, want error")
				}
			case err != nil:
				t.Fatalf("Decode() error = %v", err)
			default:
				assertBook(t, got, tt.want)
			}
		})
	}
}

func TestDecode_Limits(t *testing.T) {
	t.Parallel()

	if err := yamlutil.Decode([]byte("bookname: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("nil destination: error = %v, want ErrNilDestination", err)
	}

	big := "bookname: " + strings.Repeat("a", yamlutil.MaxInputSize) + "\n"
	var got testBook
	if err := yamlutil.Decode([]byte(big), &got); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("oversized input: error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Round Trip per Format
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	book := testBook{BookName: "Guide", Pages: []testPage{{"Intro", "README.md"}}}

	tests := []struct {
		format  yamlutil.Format
		want    string // substring of the output
		notWant string
	}{
		{format: yamlutil.YAML, want: "bookname: Guide", notWant: "workers"},
		{format: yamlutil.JSON, want: `"bookname": "Guide"`, notWant: "workers"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			data, err := yamlutil.Encode(book, tt.format)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("Encode() = %s, want to contain %q", data, tt.want)
			}
			if strings.Contains(string(data), tt.notWant) {
				t.Errorf("Encode() = %s, omitempty field %q written", data, tt.notWant)
			}

			var back testBook
			if err := yamlutil.Decode(data, &back); err != nil {
				t.Fatalf("Decode(Encode()) error = %v", err)
			}
			assertBook(t, back, book)
		})
	}

	if _, err := yamlutil.Encode(book, "toml"); !errors.Is(err, yamlutil.ErrUnknownFormat) {
		t.Errorf("Encode(toml) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want yamlutil.Format
	}{
		{"book.yaml", yamlutil.YAML},
		{"dir/book.YML", yamlutil.YAML},
		{"book.json", yamlutil.JSON},
	}
	for _, tt := range tests {
		got, err := yamlutil.FormatOf(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
	if _, err := yamlutil.FormatOf("book.toml"); !errors.Is(err, yamlutil.ErrUnknownFormat) {
		t.Errorf("FormatOf(book.toml) error = %v, want ErrUnknownFormat", err)
	}
}

func assertBook(t *testing.T, got, want testBook) {
	t.Helper()
	if got.BookName != want.BookName || got.Workers != want.Workers {
		t.Errorf("book = %+v, want %+v", got, want)
	}
	if len(got.Pages) != len(want.Pages) {
		t.Fatalf("pages = %d, want %d", len(got.Pages), len(want.Pages))
	}
	for i := range want.Pages {
		if got.Pages[i] != want.Pages[i] {
			t.Errorf("pages[%d] = %+v, want %+v", i, got.Pages[i], want.Pages[i])
		}
	}
}
