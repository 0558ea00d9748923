package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/rickerevolte/eegsift/internal/domain"
)

// FileSource implements ports.RecordingSource on top of an os.File.
// Reads are ranged section reads; nothing is buffered beyond what the
// caller asked for.
type FileSource struct {
	f    *os.File
	size int64
}

// OpenFile opens a recording file for ranged reads. A file that cannot be
// opened or stat'd is the one fatal condition of the pipeline.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	return &FileSource{f: f, size: info.Size()}, nil
}

// Size returns the file length in bytes.
func (s *FileSource) Size() int64 {
	return s.size
}

// ReadHead returns up to n leading bytes.
func (s *FileSource) ReadHead(n int) ([]byte, error) {
	return s.readSection(0, clampLen(int64(n), s.size))
}

// ReadTail returns up to n trailing bytes, or the whole file when shorter.
func (s *FileSource) ReadTail(n int) ([]byte, error) {
	length := clampLen(int64(n), s.size)
	return s.readSection(s.size-length, length)
}

// ReadFrom returns all bytes from offset to end of file. An offset at or
// past the end yields an empty slice.
func (s *FileSource) ReadFrom(offset int64) ([]byte, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= s.size {
		return []byte{}, nil
	}
	return s.readSection(offset, s.size-offset)
}

// Close releases the file handle.
func (s *FileSource) Close() error {
	return s.f.Close()
}

// readSection reads [off, off+length) from the file.
func (s *FileSource) readSection(off, length int64) ([]byte, error) {
	sr := io.NewSectionReader(s.f, off, length)
	buf := make([]byte, length)
	if _, err := io.ReadFull(sr, buf); err != nil {
		return nil, fmt.Errorf("read recording section at %d: %w", off, err)
	}
	return buf, nil
}

func clampLen(n, size int64) int64 {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
