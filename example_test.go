package filekit_test

import (
	"fmt"
	"io"
	"log"

	"github.com/hupe1980/filekit"
	"github.com/hupe1980/filekit/memfile"
)

// ExampleSearch demonstrates non-overlapping pattern search.
func ExampleSearch() {
	f := memfile.New([]byte("ababababab"))

	st := filekit.Search(f, []byte("abab"), func(_ filekit.File, offset int64) filekit.Status {
		fmt.Println("match at", offset)
		return filekit.StatusOK
	})
	if st != filekit.StatusOK {
		log.Fatal(f.Err())
	}
	// Output:
	// match at 0
	// match at 4
}

// ExampleMove shifts a region within the same handle, overlap-safe.
func ExampleMove() {
	f := memfile.New([]byte("--hello"))

	moved, st := filekit.Move(f, 2, 0, 5)
	if st != filekit.StatusOK {
		log.Fatal(f.Err())
	}
	fmt.Println(moved, string(f.Bytes()))
	// Output: 5 hellolo
}

// ExampleReadFully reads until the buffer is filled or EOF is reached.
func ExampleReadFully() {
	f := memfile.New([]byte("short"))
	if _, st := f.Seek(0, io.SeekStart); st != filekit.StatusOK {
		log.Fatal(f.Err())
	}

	buf := make([]byte, 16)
	n, st := filekit.ReadFully(f, buf)
	fmt.Println(n, st, string(buf[:n]))
	// Output: 5 ok short
}
