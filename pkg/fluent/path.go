package fluent

import (
	"errors"
	"io/fs"
	"os"

	"digital.vasic.fluent/pkg/assertion"
)

const metadataLabel = "to have readable metadata"

// PathAsserter adds filesystem assertions to a path.
type PathAsserter[P ~string] struct {
	*Asserter[P]
}

// ThatPath starts an assertion chain for a filesystem path.
func ThatPath[P ~string](t assertion.TestingT, path P) *PathAsserter[P] {
	return &PathAsserter[P]{newAsserter(t, path)}
}

func (p *PathAsserter[P]) And() *PathAsserter[P] {
	return p
}

// Exists asserts that the path, after following symlinks, names
// an existing entry.
func (p *PathAsserter[P]) Exists() *PathAsserter[P] {
	p.t.Helper()
	_, err := os.Stat(string(p.value))
	p.checkStat(err)
	p.check(err == nil, assertion.NoExpected(
		"to point at an existing entry in the filesystem", string(p.value),
	))
	return p
}

// NotExists asserts that the path, after following symlinks, names
// nothing.
func (p *PathAsserter[P]) NotExists() {
	p.t.Helper()
	_, err := os.Stat(string(p.value))
	p.checkStat(err)
	p.check(err != nil, assertion.NoExpected(
		"to point at no entry in the filesystem", string(p.value),
	))
}

// IsFile asserts that the path names a regular file. Symlinks are
// not followed.
func (p *PathAsserter[P]) IsFile() *PathAsserter[P] {
	p.t.Helper()
	info := p.lstat()
	p.check(info.Mode().IsRegular(),
		assertion.NoExpected("to be a regular file", string(p.value)).
			With("mode", info.Mode().String()),
	)
	return p
}

// IsDirectory asserts that the path names a directory. Symlinks
// are not followed.
func (p *PathAsserter[P]) IsDirectory() *PathAsserter[P] {
	p.t.Helper()
	info := p.lstat()
	p.check(info.IsDir(),
		assertion.NoExpected("to be a directory", string(p.value)).
			With("mode", info.Mode().String()),
	)
	return p
}

// IsSymlink asserts that the path names a symbolic link.
func (p *PathAsserter[P]) IsSymlink() *PathAsserter[P] {
	p.t.Helper()
	info := p.lstat()
	p.check(info.Mode()&fs.ModeSymlink != 0,
		assertion.NoExpected("to be a symbolic link", string(p.value)).
			With("mode", info.Mode().String()),
	)
	return p
}

func (p *PathAsserter[P]) lstat() fs.FileInfo {
	p.t.Helper()
	info, err := os.Lstat(string(p.value))
	p.check(!errors.Is(err, fs.ErrNotExist), assertion.NoExpected(
		"to point at an existing entry in the filesystem", string(p.value),
	))
	p.checkStat(err)
	return info
}

// checkStat fails on any stat error other than a missing entry.
func (p *PathAsserter[P]) checkStat(err error) {
	p.t.Helper()
	p.check(err == nil || errors.Is(err, fs.ErrNotExist),
		assertion.NoExpected(metadataLabel, string(p.value)).With("cause", err),
	)
}
