// Package pager owns the single file descriptor behind a table store and
// the fixed-size array of page buffers cached in front of it. Pages are
// materialized lazily on first access and written back in one pass on
// Close; there is no partial flush and no page eviction.
package pager

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// PageSize is the fixed size of one page, and therefore of one B+-tree node.
	PageSize = 4096

	// TableMaxPages bounds the pager's resident page-slot array. There is no
	// free list, so page numbers are only ever handed out by extending the file.
	TableMaxPages = 100
)

var (
	// ErrCorruptFile is returned by Open when the file length is not a
	// multiple of PageSize.
	ErrCorruptFile = errors.New("pager: file length is not a multiple of page size")

	// ErrPageOutOfBounds is returned by Get when asked for a page number at
	// or beyond TableMaxPages.
	ErrPageOutOfBounds = errors.New("pager: page number out of bounds")

	// ErrFlushEmptyPage is returned by Flush when the requested page was
	// never loaded into the cache.
	ErrFlushEmptyPage = errors.New("pager: tried to flush a page that was never loaded")

	// ErrIO wraps any open/seek/read/write/close failure against the
	// underlying file. It is fatal: there is no partial-write recovery.
	ErrIO = errors.New("pager: I/O failure")
)

// Page is one resident 4096-byte slot. Every node in the B+-tree is one Page.
type Page struct {
	Data [PageSize]byte
}

// Pager is the sole owner of the underlying file and of every resident page
// buffer. It is not safe for concurrent use, and no operation suspends.
type Pager struct {
	file     *os.File
	pages    [TableMaxPages]*Page
	NumPages uint32
}

// Open opens path for read+write, creating it with mode 0600 if absent.
// The file's length must already be a multiple of PageSize.
func Open(path string) (*Pager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("pager: open %s: %w: %w", path, ErrIO, err)
	}

	length, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pager: seek end of %s: %w: %w", path, ErrIO, err)
	}
	if length%PageSize != 0 {
		f.Close()
		return nil, ErrCorruptFile
	}

	return &Pager{file: f, NumPages: uint32(length / PageSize)}, nil
}

// Get returns the page slot for pageNum, reading it from disk on first
// access if the file already covers it, or handing back a zeroed buffer
// otherwise. Accessing a page beyond the current extent grows NumPages.
func (p *Pager) Get(pageNum uint32) (*Page, error) {
	if pageNum >= TableMaxPages {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrPageOutOfBounds, pageNum, TableMaxPages)
	}

	if p.pages[pageNum] == nil {
		pg := &Page{}
		if pageNum < p.NumPages {
			off := int64(pageNum) * PageSize
			if _, err := p.file.ReadAt(pg.Data[:], off); err != nil && err != io.EOF {
				return nil, fmt.Errorf("pager: read page %d: %w: %w", pageNum, ErrIO, err)
			}
		}
		p.pages[pageNum] = pg
		if pageNum >= p.NumPages {
			p.NumPages = pageNum + 1
		}
	}

	return p.pages[pageNum], nil
}

// Allocate hands out the next unused page number. It does not itself touch
// the cache or the file — the page is materialized the first time Get is
// called for it.
func (p *Pager) Allocate() uint32 {
	return p.NumPages
}

// Flush writes the resident page pageNum back to its offset in the file.
// It is fatal to flush a page that was never loaded into the cache.
func (p *Pager) Flush(pageNum uint32) error {
	pg := p.pages[pageNum]
	if pg == nil {
		return fmt.Errorf("%w: page %d", ErrFlushEmptyPage, pageNum)
	}
	off := int64(pageNum) * PageSize
	if _, err := p.file.WriteAt(pg.Data[:], off); err != nil {
		return fmt.Errorf("pager: write page %d: %w: %w", pageNum, ErrIO, err)
	}
	return nil
}

// Close flushes every resident page slot for pages 0..NumPages-1, in order,
// and closes the file. A failure here is fatal: there is no partial-write
// recovery.
func (p *Pager) Close() error {
	for i := uint32(0); i < p.NumPages; i++ {
		if p.pages[i] == nil {
			continue
		}
		if err := p.Flush(i); err != nil {
			return err
		}
	}
	if err := p.file.Close(); err != nil {
		return fmt.Errorf("pager: close: %w: %w", ErrIO, err)
	}
	return nil
}
