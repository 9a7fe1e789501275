package mkbase

import (
	"io"
	"os"
)

func Example_prefixWriter() {
	pw := newPrefixWriterString(os.Stdout, "PRE:")
	io.WriteString(pw, "foo")
	io.WriteString(pw, "bar\n")
	io.WriteString(pw, "baz\nquux")
	// Output:
	// PRE:foobar
	// PRE:baz
	// PRE:quux
}
