package fluent

import (
	"io/fs"
	"os"

	"digital.vasic.fluent/pkg/assertion"
)

// FileAsserter adds type assertions to an open file handle.
type FileAsserter struct {
	*Asserter[*os.File]
}

// ThatFile starts an assertion chain for an open file.
func ThatFile(t assertion.TestingT, f *os.File) *FileAsserter {
	return &FileAsserter{newAsserter(t, f)}
}

func (f *FileAsserter) And() *FileAsserter {
	return f
}

// IsFile asserts that the handle refers to a regular file.
func (f *FileAsserter) IsFile() *FileAsserter {
	f.t.Helper()
	info := f.stat()
	f.check(info.Mode().IsRegular(),
		assertion.NoExpected("to be a regular file", f.name()).
			With("mode", info.Mode().String()),
	)
	return f
}

// IsDirectory asserts that the handle refers to a directory.
func (f *FileAsserter) IsDirectory() *FileAsserter {
	f.t.Helper()
	info := f.stat()
	f.check(info.IsDir(),
		assertion.NoExpected("to be a directory", f.name()).
			With("mode", info.Mode().String()),
	)
	return f
}

func (f *FileAsserter) stat() fs.FileInfo {
	f.t.Helper()
	info, err := f.value.Stat()
	f.check(err == nil,
		assertion.NoExpected(metadataLabel, f.name()).With("cause", err),
	)
	return info
}

func (f *FileAsserter) name() assertion.Verbatim {
	if f.value == nil {
		return "nil"
	}
	return assertion.Verbatim(f.value.Name())
}
