// Package filekit provides robust, retry-aware bulk operations on top of a
// minimal abstract file handle.
//
// A handle (the File interface) exposes only single-shot read, write, seek
// and error reporting, and any of those calls may return StatusRetry to
// ask for the identical call to be reissued. On top of that contract
// filekit implements:
//
//   - ReadFully / WriteFully — fully-buffered transfer that absorbs retry
//     signals and short transfers
//   - ReadDiscard — bulk discard-by-reading for handles that cannot seek
//   - Search — binary pattern search over a handle of unbounded size using
//     a bounded sliding window
//   - Move — overlap-safe copying of one region of a file onto another
//     region of the same file
//
// # Quick Start
//
//	f := memfile.New([]byte("ababababab"))
//
//	st := filekit.Search(f, []byte("abab"), func(f filekit.File, offset int64) filekit.Status {
//	    fmt.Println("match at", offset)
//	    return filekit.StatusOK
//	})
//	// match at 0
//	// match at 4  (matches never overlap)
//
// # Handles
//
// Concrete handles live in subpackages: memfile (in-memory), fdfile (Unix
// file descriptors), streamfile (io.Reader/io.Writer, including zstd and
// lz4 compressed streams), blobfile (ranged reads from S3 or MinIO) and
// billyfile (go-billy filesystems). Anything that implements the four
// File operations works.
//
// # Status Model
//
// Every operation returns a Status ordered by severity. Anything worse
// than StatusOK is a failure; StatusRetry is not an error and never
// escapes the bulk helpers. StatusWarn is context-dependent: the transfer
// helpers treat it as a failure, while a search callback returns it to
// stop the search early with Search still reporting StatusOK. A short
// transfer is reported as StatusOK with a smaller count, never as a
// failure; the structured diagnostic for a real failure is retrievable
// with File.Err.
//
// All operations are synchronous and keep no state between calls. Retry
// pacing or bounding, when wanted, is layered onto a handle with
// LimitRetries and a RetryPolicy.
package filekit
