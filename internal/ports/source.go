package ports

// RecordingSource provides ranged read access to one recording file.
// The three reads the pipeline performs (head scan, sample region, marker
// tail) each copy the needed bytes and leave the source untouched, so the
// file contents are effectively immutable for the run.
type RecordingSource interface {
	// Size returns the total length of the recording in bytes.
	Size() int64

	// ReadHead returns up to n leading bytes. Returns fewer when the
	// file is shorter than n.
	ReadHead(n int) ([]byte, error)

	// ReadTail returns up to n trailing bytes, or the whole file when it
	// is shorter than n. The caller compares against Size to notice the
	// degraded case.
	ReadTail(n int) ([]byte, error)

	// ReadFrom returns all bytes from offset to the end of the file.
	ReadFrom(offset int64) ([]byte, error)

	// Close releases the underlying file handle.
	Close() error
}
